package geolocation

import (
	"context"
	"time"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/service"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cachingProvider reuses a successful fix for the same client until it is older than maxAge.
// Failures are never cached.
type cachingProvider struct {
	next  service.LocationProvider
	cache *expirable.LRU[string, entity.Position]
}

// NewCachingProvider wraps next with a bounded, expiring position cache keyed by client IP.
func NewCachingProvider(next service.LocationProvider, size int, maxAge time.Duration) service.LocationProvider {
	return &cachingProvider{
		next:  next,
		cache: expirable.NewLRU[string, entity.Position](size, nil, maxAge),
	}
}

func (p *cachingProvider) Acquire(ctx context.Context) (*entity.Position, error) {
	key := service.ClientIPFromContext(ctx)

	if pos, ok := p.cache.Get(key); ok {
		pos.Source = entity.PositionSourceCache

		return &pos, nil
	}

	pos, err := p.next.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	p.cache.Add(key, *pos)

	return pos, nil
}
