package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "vendorflow:job:"

type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisStore(client redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Put(ctx context.Context, j Job) error {
	b, err := json.Marshal(j)
	if err != nil {
		return pkgerrors.Wrapf(err, "encode job %s", j.ID)
	}
	return pkgerrors.Wrapf(r.client.Set(ctx, redisKeyPrefix+j.ID, b, r.ttl).Err(), "store job %s", j.ID)
}

func (r *RedisStore) Get(ctx context.Context, id string) (Job, error) {
	b, err := r.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return Job{}, ErrJobNotFound
	}
	if err != nil {
		return Job{}, pkgerrors.Wrapf(err, "load job %s", id)
	}
	var j Job
	if err := json.Unmarshal(b, &j); err != nil {
		return Job{}, pkgerrors.Wrapf(err, "decode job %s", id)
	}
	return j, nil
}
