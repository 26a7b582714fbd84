package kafka

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/catalog-admin/internal/cfg"
	"github.com/DRSN-tech/catalog-admin/internal/usecase"
	"github.com/DRSN-tech/catalog-admin/pkg/e"
	"github.com/DRSN-tech/catalog-admin/pkg/jitter"
	"github.com/DRSN-tech/catalog-admin/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/segmentio/kafka-go"
)

const outboxChannel = "outbox_pending"

// OutboxWorker переносит события из outbox в Kafka. Новые события будят его через
// LISTEN/NOTIFY, а раз в ListenTimeout очередь проверяется и без уведомления.
type OutboxWorker struct {
	repo      usecase.OutboxRepository
	logger    logger.Logger
	producer  usecase.MessageProducer
	cfg       *cfg.OutboxCfg
	dbConnStr string

	cancel context.CancelFunc
	wg     sync.WaitGroup
	// sleep подменяется в тестах.
	sleep func(ctx context.Context, d time.Duration)
}

func NewOutboxWorker(
	repo usecase.OutboxRepository,
	logger logger.Logger,
	producer usecase.MessageProducer,
	cfg *cfg.OutboxCfg,
	dbConnStr string,
) *OutboxWorker {
	return &OutboxWorker{
		repo:      repo,
		logger:    logger,
		producer:  producer,
		cfg:       cfg,
		dbConnStr: dbConnStr,
		sleep:     sleepCtx,
	}
}

func (w *OutboxWorker) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)

	wakeup := make(chan struct{}, 1)

	w.wg.Add(2)
	go func() {
		defer w.wg.Done()
		w.run(ctx, wakeup)
	}()

	// Запускаем слушатель уведомлений
	go func() {
		defer w.wg.Done()
		w.listenOutboxNotifications(ctx, wakeup)
	}()
}

// Stop останавливает worker и дожидается завершения горутин.
func (w *OutboxWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}

func (w *OutboxWorker) run(ctx context.Context, wakeup <-chan struct{}) {
	// Обрабатываем "остатки" при старте
	w.logger.Infof("Draining pending outbox events on startup...")
	w.drain(ctx)

	ticker := time.NewTicker(w.cfg.ListenTimeout)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Infof("Outbox worker stopped")
			return
		case <-wakeup:
			w.logger.Debugf("Received outbox notification, draining outbox events")
			w.drain(ctx)
		case <-ticker.C:
			w.drain(ctx)
		}
	}
}

// drain обрабатывает пачки, пока очередь не опустеет или публикация не начнёт падать.
func (w *OutboxWorker) drain(ctx context.Context) {
	for ctx.Err() == nil {
		hasMore, err := w.processBatch(ctx)
		if err != nil {
			w.logger.Warnf("Batch processing failed: %v", err)
			return
		}
		if !hasMore {
			return
		}
	}
}

func (w *OutboxWorker) listenOutboxNotifications(ctx context.Context, wakeup chan<- struct{}) {
	var conn *pgx.Conn

	connect := func() error {
		var err error
		conn, err = pgx.Connect(ctx, w.dbConnStr)
		if err != nil {
			return e.Wrap("failed to connect for LISTEN", err)
		}

		if _, err = conn.Exec(ctx, "LISTEN "+outboxChannel); err != nil {
			conn.Close(ctx)
			conn = nil
			return e.Wrap("failed to LISTEN", err)
		}

		w.logger.Infof("Subscribed to '%s' channel", outboxChannel)
		return nil
	}

	defer func() {
		if conn != nil {
			conn.Close(context.Background())
		}
	}()

	for attempt := 0; ctx.Err() == nil; {
		if conn == nil {
			if err := connect(); err != nil {
				w.logger.Warnf("Connect for LISTEN failed: %v", err)
				w.sleep(ctx, jitter.ExponentialBackoff(w.cfg.BackoffBase, w.cfg.BackoffMax, attempt, jitter.DefaultJitter))
				attempt++
				continue
			}
			attempt = 0
		}

		waitCtx, cancel := context.WithTimeout(ctx, w.cfg.ListenTimeout)
		notif, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				continue
			}

			w.logger.Warnf("Connection lost: %v. Reconnecting...", err)
			conn.Close(ctx)
			conn = nil
			continue
		}

		if notif != nil && notif.Channel == outboxChannel {
			select {
			case wakeup <- struct{}{}:
			default: // сигнал уже ожидает обработки
			}
		}
	}
}

// processBatch публикует пачку событий по порядку. Временный сбой публикации
// засчитывается попыткой только упавшему событию: остаток пачки возвращается
// в pending без изменения attempts, а worker выжидает backoff. Событие с
// постоянной ошибкой помечается dead, и пачка обрабатывается дальше.
func (w *OutboxWorker) processBatch(ctx context.Context) (bool, error) {
	events, err := w.repo.GetAndMarkAsProcessing(ctx, w.cfg.BatchSize)
	if err != nil {
		return false, err
	}

	if len(events) == 0 {
		return false, nil
	}

	for i, event := range events {
		err := w.processEvent(ctx, event)
		if err == nil {
			if err := w.repo.MarkAsProcessed(ctx, event.ID); err != nil {
				w.logger.Warnf("mark processed failed: %v", err)
			}
			continue
		}

		if ctx.Err() != nil {
			// остановка worker'а: попытка не засчитывается
			w.release(context.WithoutCancel(ctx), events[i:])
			return false, err
		}

		if isPermanentError(err) {
			w.logger.Errorf(err, "Outbox event %s cannot be published and is marked dead", event.EventID)
			if err := w.repo.MarkAsDead(ctx, event.ID); err != nil {
				w.logger.Warnf("mark dead failed: %v", err)
			}
			continue
		}

		w.logger.Errorf(err, "Failed to publish outbox event %s (attempt %d)", event.EventID, event.Attempts+1)

		if err := w.repo.MarkAsFailed(ctx, event.ID); err != nil {
			w.logger.Warnf("mark failed failed: %v", err)
		}
		w.release(ctx, events[i+1:])

		if event.Attempts+1 >= w.cfg.MaxAttempts {
			w.logger.Warnf("Outbox event %s reached max attempts (%d) and will not be retried", event.EventID, w.cfg.MaxAttempts)
		}

		w.sleep(ctx, jitter.ExponentialBackoff(w.cfg.BackoffBase, w.cfg.BackoffMax, event.Attempts, jitter.DefaultJitter))
		return false, err
	}

	return len(events) == w.cfg.BatchSize, nil
}

// release возвращает в очередь события, публикация которых не начиналась.
func (w *OutboxWorker) release(ctx context.Context, events []*usecase.OutboxEvent) {
	if len(events) == 0 {
		return
	}

	ids := make([]int64, 0, len(events))
	for _, event := range events {
		ids = append(ids, event.ID)
	}

	if err := w.repo.Release(ctx, ids); err != nil {
		w.logger.Warnf("release failed: %v", err)
	}
}

func (w *OutboxWorker) processEvent(ctx context.Context, event *usecase.OutboxEvent) error {
	if err := w.producer.WriteRawMessage(ctx, usecase.NewWriteRawMessageReq(event)); err != nil {
		if isPermanentError(err) {
			return e.Wrap("Permanent Kafka failure", err)
		}
		return e.Wrap("Temporary Kafka failure, will retry", err)
	}
	return nil
}

// isPermanentError распознаёт ошибки, которые не исчезнут при повторе: сообщение
// больше лимита брокера или код Kafka без признака Temporary. Сетевые сбои и
// неизвестные ошибки считаются временными.
func isPermanentError(err error) bool {
	if err == nil || isRetryableError(err) {
		return false
	}

	var tooLarge kafka.MessageTooLargeError
	if errors.As(err, &tooLarge) {
		return true
	}

	var writeErrs kafka.WriteErrors
	if errors.As(err, &writeErrs) {
		permanent := false
		for _, werr := range writeErrs {
			if werr == nil {
				continue
			}
			if !isPermanentError(werr) {
				return false
			}
			permanent = true
		}
		return permanent
	}

	var kafkaErr kafka.Error
	if errors.As(err, &kafkaErr) {
		return !kafkaErr.Temporary()
	}

	return false
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	retryablePhrases := []string{
		"connection refused",
		"i/o timeout",
		"network is unreachable",
		"broker not available",
		"connection reset",
		"broken pipe",
		"no such host",
		"leader not available",
	}
	for _, phrase := range retryablePhrases {
		if strings.Contains(errStr, phrase) {
			return true
		}
	}
	return false
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
