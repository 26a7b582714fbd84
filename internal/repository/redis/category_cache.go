package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DRSN-tech/catalog-admin/internal/cfg"
	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/DRSN-tech/catalog-admin/internal/repository/redis/converter"
	"github.com/DRSN-tech/catalog-admin/internal/usecase"
	"github.com/DRSN-tech/catalog-admin/pkg/clients"
	"github.com/DRSN-tech/catalog-admin/pkg/e"
	"github.com/DRSN-tech/catalog-admin/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CachedCategoryGateway кэширует чтение категорий по ID поверх другого CategoryGateway.
// Ошибки Redis только логируются: источником истины остаётся обёрнутый шлюз.
type CachedCategoryGateway struct {
	next   usecase.CategoryGateway
	client *clients.RedisClient
	conv   converter.CategoryConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCachedCategoryGateway(
	next usecase.CategoryGateway,
	client *clients.RedisClient,
	conv converter.CategoryConverter,
	cfg *cfg.RedisCfg,
	logger logger.Logger,
) *CachedCategoryGateway {
	return &CachedCategoryGateway{
		next:   next,
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

func (g *CachedCategoryGateway) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	created, err := g.next.Create(ctx, category)
	if err != nil {
		return nil, err
	}

	g.set(ctx, created)
	return created, nil
}

func (g *CachedCategoryGateway) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	updated, err := g.next.Update(ctx, category)
	if err != nil {
		// запись могла частично пройти, старое значение лучше убрать
		g.delete(ctx, category.ID)
		return nil, err
	}

	g.set(ctx, updated)
	return updated, nil
}

func (g *CachedCategoryGateway) DeleteByID(ctx context.Context, id domain.CategoryID) error {
	if err := g.next.DeleteByID(ctx, id); err != nil {
		return err
	}

	g.delete(ctx, id)
	return nil
}

// FindByID сначала смотрит в кэш; промах и ошибки Redis ведут в обёрнутый шлюз.
func (g *CachedCategoryGateway) FindByID(ctx context.Context, id domain.CategoryID) (*domain.Category, error) {
	if cached := g.get(ctx, id); cached != nil {
		return cached, nil
	}

	category, err := g.next.FindByID(ctx, id)
	if err != nil || category == nil {
		return category, err
	}

	g.set(ctx, category)
	return category, nil
}

// FindAll не кэшируется: страницы инвалидируются любой записью.
func (g *CachedCategoryGateway) FindAll(ctx context.Context, query domain.CategorySearchQuery) (*domain.Pagination[*domain.Category], error) {
	return g.next.FindAll(ctx, query)
}

func (g *CachedCategoryGateway) get(ctx context.Context, id domain.CategoryID) *domain.Category {
	key := categoryKey(id)

	data, err := g.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, r.Nil) {
			g.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}

		return nil // cache miss
	}

	var model converter.CategoryRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		g.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		g.delete(ctx, id)
		return nil
	}

	category, err := g.conv.ToEntity(&model)
	if err != nil || category.ID != id {
		g.logger.Warnf("Cache ID mismatch: key_id: %s, model_id: %s", id, model.ID)
		g.delete(ctx, id)
		return nil
	}

	return category
}

func (g *CachedCategoryGateway) set(ctx context.Context, category *domain.Category) {
	data, err := json.Marshal(g.conv.ToRedisModel(category))
	if err != nil {
		g.logger.Warnf("Failed to marshal category for caching (Category ID: %s): %v", category.ID, e.Wrap(whereami.WhereAmI(), err))
		return
	}

	if err := g.client.Client.Set(ctx, categoryKey(category.ID), data, g.cfg.CategoryTTL).Err(); err != nil {
		g.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}
}

func (g *CachedCategoryGateway) delete(ctx context.Context, id domain.CategoryID) {
	if err := g.client.Client.Del(ctx, categoryKey(id)).Err(); err != nil {
		g.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}
}

// categoryKey возвращает Redis-ключ для одной категории
func categoryKey(id domain.CategoryID) string {
	return fmt.Sprintf("category:%s", id)
}
