package cache

import (
	"hash/fnv"
	"sync"
	"time"
)

type shard[V any] struct {
	mu   sync.RWMutex
	data map[string]entry[V]
}

// Sharded spreads keys over a power-of-two number of independently locked maps.
type Sharded[V any] struct {
	shards []shard[V]
	ttl    time.Duration
	now    func() time.Time

	ticker *time.Ticker
	stop   chan struct{}
	once   sync.Once
}

func NewSharded[V any](opts ...Option) *Sharded[V] {
	o := apply(opts)
	c := &Sharded[V]{
		shards: make([]shard[V], o.shards),
		ttl:    o.ttl,
		now:    time.Now,
		stop:   make(chan struct{}),
	}
	for i := range c.shards {
		c.shards[i].data = make(map[string]entry[V])
	}
	if c.ttl > 0 {
		c.ticker = time.NewTicker(c.ttl / 2)
		go func() {
			for {
				select {
				case <-c.ticker.C:
					c.purge()
				case <-c.stop:
					return
				}
			}
		}()
	}
	return c
}

func (c *Sharded[V]) Close() {
	c.once.Do(func() {
		if c.ticker != nil {
			c.ticker.Stop()
		}
		close(c.stop)
	})
}

func (c *Sharded[V]) shardFor(key string) *shard[V] {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return &c.shards[int(h.Sum32())&(len(c.shards)-1)]
}

func (c *Sharded[V]) Put(key string, v V) {
	e := entry[V]{v: v}
	if c.ttl > 0 {
		e.exp = c.now().Add(c.ttl)
	}
	s := c.shardFor(key)
	s.mu.Lock()
	s.data[key] = e
	s.mu.Unlock()
}

func (c *Sharded[V]) Get(key string) (V, bool) {
	s := c.shardFor(key)
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if e.expired(c.now()) {
		s.mu.Lock()
		if cur, ok := s.data[key]; ok && cur.exp == e.exp {
			delete(s.data, key)
		}
		s.mu.Unlock()
		return zero, false
	}
	return e.v, true
}

func (c *Sharded[V]) Delete(key string) {
	s := c.shardFor(key)
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
}

func (c *Sharded[V]) Snapshot() map[string]V {
	out := make(map[string]V)
	now := c.now()
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		for k, e := range s.data {
			if !e.expired(now) {
				out[k] = e.v
			}
		}
		s.mu.RUnlock()
	}
	return out
}

func (c *Sharded[V]) purge() {
	now := c.now()
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		for k, e := range s.data {
			if e.expired(now) {
				delete(s.data, k)
			}
		}
		s.mu.Unlock()
	}
}
