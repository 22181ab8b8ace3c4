// Package cache кэширует результаты count-запросов на короткое время.
package cache

import (
	"context"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"member-search-service/internal/search"
)

// CountCache хранит total по ключу фильтра. Записи живут ttl и сбрасываются целиком через Flush.
type CountCache struct {
	backend *gocache.Cache
	prefix  string
}

// NewCountCache создаёт кэш; cleanup по умолчанию равен удвоенному ttl.
func NewCountCache(ttl time.Duration, prefix string) *CountCache {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &CountCache{
		backend: gocache.New(ttl, 2*ttl),
		prefix:  prefix,
	}
}

func (c *CountCache) key(k string) string {
	if c.prefix == "" {
		return k
	}
	return c.prefix + ":" + k
}

func (c *CountCache) Get(key string) (int64, bool) {
	v, ok := c.backend.Get(c.key(key))
	if !ok {
		return 0, false
	}
	n, ok := v.(int64)
	return n, ok
}

func (c *CountCache) Set(key string, n int64) {
	c.backend.SetDefault(c.key(key), n)
}

// Flush удаляет все записи; вызывается после любых изменений данных.
func (c *CountCache) Flush() {
	c.backend.Flush()
}

func (c *CountCache) Len() int {
	return c.backend.ItemCount()
}

// cachedSource отдаёт Count из кэша, остальные вызовы идут в исходный Source.
type cachedSource[T any] struct {
	search.Source[T]
	cache *CountCache
}

// WithCountCache оборачивает Source кэшем count-запросов.
func WithCountCache[T any](src search.Source[T], c *CountCache) search.Source[T] {
	return &cachedSource[T]{Source: src, cache: c}
}

func (s *cachedSource[T]) Count(ctx context.Context, f search.Filter, opts search.CountOptions) (int64, error) {
	key := f.Key() + "|join=" + strconv.FormatBool(opts.JoinTeam)
	if n, ok := s.cache.Get(key); ok {
		return n, nil
	}
	n, err := s.Source.Count(ctx, f, opts)
	if err != nil {
		return 0, err
	}
	s.cache.Set(key, n)
	return n, nil
}
