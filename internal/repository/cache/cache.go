package cache

import (
	"sync"
	"time"
)

type KV[V any] interface {
	Put(key string, v V)
	Get(key string) (V, bool)
	Delete(key string)
	Snapshot() map[string]V
}

// Cache is a single-lock TTL map. With a TTL a janitor goroutine purges
// expired keys every ttl/2; Close stops it.
type Cache[V any] struct {
	mu   sync.RWMutex
	data map[string]entry[V]

	ttl    time.Duration
	ticker *time.Ticker
	stop   chan struct{}
	once   sync.Once
	now    func() time.Time
}

func New[V any](opts ...Option) *Cache[V] {
	o := apply(opts)
	c := &Cache[V]{
		data: make(map[string]entry[V]),
		ttl:  o.ttl,
		stop: make(chan struct{}),
		now:  time.Now,
	}
	if c.ttl > 0 {
		c.ticker = time.NewTicker(c.ttl / 2)
		go c.janitor()
	}
	return c
}

func (c *Cache[V]) janitor() {
	for {
		select {
		case <-c.ticker.C:
			c.purge()
		case <-c.stop:
			return
		}
	}
}

func (c *Cache[V]) Close() {
	c.once.Do(func() {
		if c.ticker != nil {
			c.ticker.Stop()
		}
		close(c.stop)
	})
}

func (c *Cache[V]) Put(key string, v V) {
	e := entry[V]{v: v}
	if c.ttl > 0 {
		e.exp = c.now().Add(c.ttl)
	}
	c.mu.Lock()
	c.data[key] = e
	c.mu.Unlock()
}

func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if e.expired(c.now()) {
		c.mu.Lock()
		if cur, ok := c.data[key]; ok && cur.exp == e.exp {
			delete(c.data, key)
		}
		c.mu.Unlock()
		return zero, false
	}
	return e.v, true
}

func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
}

func (c *Cache[V]) Snapshot() map[string]V {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.now()
	out := make(map[string]V, len(c.data))
	for k, e := range c.data {
		if !e.expired(now) {
			out[k] = e.v
		}
	}
	return out
}

func (c *Cache[V]) purge() {
	now := c.now()
	c.mu.Lock()
	for k, e := range c.data {
		if e.expired(now) {
			delete(c.data, k)
		}
	}
	c.mu.Unlock()
}
