package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/catalog-admin/internal/cfg"
	v1Grpc "github.com/DRSN-tech/catalog-admin/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/catalog-admin/internal/delivery/v1/http"
	"github.com/DRSN-tech/catalog-admin/internal/infrastructure/kafka"
	"github.com/DRSN-tech/catalog-admin/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/catalog-admin/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-admin/internal/repository/redis"
	redisConv "github.com/DRSN-tech/catalog-admin/internal/repository/redis/converter"
	"github.com/DRSN-tech/catalog-admin/internal/usecase"
	"github.com/DRSN-tech/catalog-admin/pkg/clients"
	"github.com/DRSN-tech/catalog-admin/pkg/closer"
	"github.com/DRSN-tech/catalog-admin/pkg/e"
	"github.com/DRSN-tech/catalog-admin/pkg/logger"
	"github.com/DRSN-tech/catalog-admin/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const ensureTopicTimeout = 10 * time.Second

// App владеет всеми ресурсами сервиса; закрываются они через closer в обратном порядке.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer

	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer
	worker  *kafka.OutboxWorker
}

// NewApp подключается к внешним системам и собирает граф зависимостей.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(0),
	}

	if err := a.init(); err != nil {
		// частично открытые ресурсы
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Http.ShutdownTimeout)
		defer cancel()
		if cerr := a.closer.Close(ctx); cerr != nil {
			log.Warnf("cleanup after failed init: %v", cerr)
		}

		return nil, err
	}

	return a, nil
}

func (a *App) init() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := initPGDB(ctx, a.logger, a.cfg)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.AddFunc("postgres", db.Close)

	redisClient := clients.NewRedisClient(a.cfg.Redis)
	a.closer.Add("redis", func(context.Context) error { return redisClient.Close() })
	if err := redisClient.Ping(ctx); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	producer := kafka.NewProducer(a.logger, a.cfg.Kafka)
	a.closer.Add("kafka producer", func(context.Context) error { return producer.Close() })
	if err := producer.EnsureTopic(ensureTopicTimeout); err != nil {
		a.logger.Warnf("Kafka topic check failed, relying on broker auto-creation: %v", err)
	}

	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, pgdbConv.NewOutboxEventConverterImpl(), a.cfg.Outbox.MaxAttempts)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, pgdbConv.NewCategoryConverterImpl(), outboxRepo, a.logger)
	gateway := redis.NewCachedCategoryGateway(
		categoryRepo,
		redisClient,
		redisConv.NewCategoryConverterImpl(),
		a.cfg.Redis,
		a.logger,
	)

	categoryUC := usecase.NewCategoryUC(gateway)

	a.worker = kafka.NewOutboxWorker(outboxRepo, a.logger, producer, a.cfg.Outbox, db.Dsn)

	a.grpcSrv = v1Grpc.NewGRPCServer(a.cfg.Grpc, a.logger)
	a.grpcSrv.RegisterServices(categoryUC)

	r := chi.NewRouter()
	v1Http.NewRouter(r, a.logger).Init(categoryUC)
	a.httpSrv = v1Http.NewServer(r, a.cfg.Http)

	return nil
}

// Run запускает серверы и worker и блокируется до сигнала остановки или фатальной ошибки.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.worker.Start(ctx)
	a.closer.AddFunc("outbox worker", a.worker.Stop)

	errCh := make(chan error, 2)

	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			errCh <- e.Wrap("gRPC server", err)
		}
	}()
	a.closer.Add("grpc server", a.grpcSrv.Stop)

	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil {
			errCh <- e.Wrap("HTTP server", err)
		}
	}()
	a.closer.Add("http server", a.httpSrv.Stop)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "server fatal error")
	case <-ctx.Done():
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Http.ShutdownTimeout)
	defer cancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown error")
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(ctx context.Context, logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(ctx, cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		db.Close()
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
