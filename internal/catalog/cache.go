package catalog

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/kabachok/lootcase/internal/domain"
	"github.com/kabachok/lootcase/internal/repository"
)

// CachedCatalog is a read-through cache in front of a repository.Catalog.
// Misses are not cached, so a case added by a later sync shows up at once.
// Values are copied on the way out; callers may modify what they receive.
type CachedCatalog struct {
	next repository.Catalog

	cases  *expirable.LRU[int64, domain.Case]
	items  *expirable.LRU[int64, domain.Item]
	active *expirable.LRU[struct{}, []domain.Case]
}

var _ repository.Catalog = (*CachedCatalog)(nil)

// NewCachedCatalog wraps next with LRU caches of the given size and TTL.
// Non-positive values fall back to the defaults.
func NewCachedCatalog(next repository.Catalog, size int, ttl time.Duration) *CachedCatalog {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedCatalog{
		next:   next,
		cases:  expirable.NewLRU[int64, domain.Case](size, nil, ttl),
		items:  expirable.NewLRU[int64, domain.Item](size, nil, ttl),
		active: expirable.NewLRU[struct{}, []domain.Case](1, nil, ttl),
	}
}

func (c *CachedCatalog) GetCase(ctx context.Context, caseID int64) (*domain.Case, error) {
	if cached, ok := c.cases.Get(caseID); ok {
		out := cloneCase(cached)
		return &out, nil
	}

	found, err := c.next.GetCase(ctx, caseID)
	if err != nil || found == nil {
		return found, err
	}
	c.cases.Add(caseID, cloneCase(*found))
	return found, nil
}

func (c *CachedCatalog) ListActiveCases(ctx context.Context) ([]domain.Case, error) {
	if cached, ok := c.active.Get(struct{}{}); ok {
		return cloneCases(cached), nil
	}

	list, err := c.next.ListActiveCases(ctx)
	if err != nil {
		return nil, err
	}
	c.active.Add(struct{}{}, cloneCases(list))
	return list, nil
}

func (c *CachedCatalog) GetItem(ctx context.Context, itemID int64) (*domain.Item, error) {
	if cached, ok := c.items.Get(itemID); ok {
		return &cached, nil
	}

	found, err := c.next.GetItem(ctx, itemID)
	if err != nil || found == nil {
		return found, err
	}
	c.items.Add(itemID, *found)
	return found, nil
}

// Purge drops every cached entry. Call it after a catalog sync.
func (c *CachedCatalog) Purge() {
	c.cases.Purge()
	c.items.Purge()
	c.active.Purge()
}

func cloneCase(c domain.Case) domain.Case {
	c.Items = append([]domain.Item(nil), c.Items...)
	return c
}

func cloneCases(in []domain.Case) []domain.Case {
	out := make([]domain.Case, len(in))
	for i := range in {
		out[i] = cloneCase(in[i])
	}
	return out
}
