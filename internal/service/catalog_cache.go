package service

import (
	"context"
	"errors"
	"time"

	"learn2drive/internal/cache"
	"learn2drive/internal/domain"
	"learn2drive/internal/logger"

	"go.uber.org/zap"
)

// cachedCatalog serves catalog reads from the cache. Items are immutable after
// seeding, so entries only expire by TTL or when a save in this process touches the kind.
// Cache failures are logged and fall through to the repository.
type cachedCatalog struct {
	domain.CatalogRepository
	cache domain.Cache
	ttl   time.Duration
}

// NewCachedCatalogRepository wraps repo with a read-through cache. A nil cache
// returns repo unchanged.
func NewCachedCatalogRepository(repo domain.CatalogRepository, c domain.Cache, ttl time.Duration) domain.CatalogRepository {
	if c == nil {
		logger.Get().Warn("Catalog cache disabled: no cache configured")
		return repo
	}
	return &cachedCatalog{CatalogRepository: repo, cache: c, ttl: ttl}
}

func readThrough[T any](ctx context.Context, c *cachedCatalog, key string, load func() (T, error)) (T, error) {
	cached, err := cache.GetJSON[T](ctx, c.cache, key)
	if err == nil {
		logger.Get().Debug("Catalog cache hit", zap.String("key", key))
		return cached, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logger.Get().Warn("Catalog cache read failed", zap.String("key", key), zap.Error(err))
	}

	value, err := load()
	if err != nil {
		return value, err
	}
	if err := cache.SetJSON(ctx, c.cache, key, value, c.ttl); err != nil {
		logger.Get().Warn("Catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
	return value, nil
}

func (c *cachedCatalog) ListItems(ctx context.Context, kind domain.AssessmentKind, groupKey string) ([]domain.AssessmentItem, error) {
	return readThrough(ctx, c, cache.CatalogItemsKey(string(kind), groupKey), func() ([]domain.AssessmentItem, error) {
		return c.CatalogRepository.ListItems(ctx, kind, groupKey)
	})
}

func (c *cachedCatalog) ListGroups(ctx context.Context, kind domain.AssessmentKind) ([]domain.ItemGroup, error) {
	return readThrough(ctx, c, cache.CatalogGroupsKey(string(kind)), func() ([]domain.ItemGroup, error) {
		return c.CatalogRepository.ListGroups(ctx, kind)
	})
}

func (c *cachedCatalog) SaveGroup(ctx context.Context, group *domain.ItemGroup) error {
	if err := c.CatalogRepository.SaveGroup(ctx, group); err != nil {
		return err
	}
	c.invalidate(ctx, group.Kind, group.Key)
	return nil
}

func (c *cachedCatalog) SaveItem(ctx context.Context, item *domain.AssessmentItem) error {
	if err := c.CatalogRepository.SaveItem(ctx, item); err != nil {
		return err
	}
	c.invalidate(ctx, item.Kind, item.GroupKey)
	return nil
}

func (c *cachedCatalog) invalidate(ctx context.Context, kind domain.AssessmentKind, groupKey string) {
	keys := []string{
		cache.CatalogItemsKey(string(kind), ""),
		cache.CatalogItemsKey(string(kind), groupKey),
		cache.CatalogGroupsKey(string(kind)),
	}
	for _, key := range keys {
		if err := c.cache.Delete(ctx, key); err != nil {
			logger.Get().Warn("Catalog cache invalidation failed", zap.String("key", key), zap.Error(err))
		}
	}
}
