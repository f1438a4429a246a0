package recordstore

import (
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// TTLCache memoises values for a fixed interval. Writers call Invalidate so
// the next read observes their change.
type TTLCache[K comparable, V any] struct {
	ttl   time.Duration
	items *ttlcache.Cache[K, V]

	// gens counts invalidations per key. A load started before an
	// invalidation must not be stored after it.
	mu   sync.Mutex
	gens map[K]uint64
}

func NewTTLCache[K comparable, V any](ttl time.Duration) *TTLCache[K, V] {
	return &TTLCache[K, V]{
		ttl: ttl,
		items: ttlcache.New[K, V](
			ttlcache.WithTTL[K, V](ttl),
			ttlcache.WithDisableTouchOnHit[K, V](),
		),
		gens: make(map[K]uint64),
	}
}

func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	item := c.items.Get(key)
	if item == nil {
		var zero V
		return zero, false
	}
	return item.Value(), true
}

func (c *TTLCache[K, V]) Set(key K, value V) {
	if c.ttl <= 0 {
		return
	}
	c.items.Set(key, value, ttlcache.DefaultTTL)
}

// GetOrLoad returns the cached value or stores the result of load.
// Load errors are not cached, nor are results that raced with Invalidate.
func (c *TTLCache[K, V]) GetOrLoad(key K, load func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	c.mu.Lock()
	gen := c.gens[key]
	c.mu.Unlock()

	v, err := load()
	if err != nil {
		return v, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[key] == gen {
		c.Set(key, v)
	}
	return v, nil
}

func (c *TTLCache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[key]++
	c.items.Delete(key)
}
