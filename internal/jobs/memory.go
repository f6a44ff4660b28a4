package jobs

import (
	"context"
	"time"

	"vendorflow/internal/repository/cache"
)

type MemoryStore struct {
	kv *cache.Sharded[Job]
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{kv: cache.NewSharded[Job](cache.WithTTL(ttl))}
}

func (m *MemoryStore) Put(_ context.Context, j Job) error {
	m.kv.Put(j.ID, j)
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (Job, error) {
	j, ok := m.kv.Get(id)
	if !ok {
		return Job{}, ErrJobNotFound
	}
	return j, nil
}

func (m *MemoryStore) Close() { m.kv.Close() }
