package cache

import "time"

type options struct {
	ttl    time.Duration
	shards int
}

type Option func(*options)

func WithTTL(ttl time.Duration) Option { return func(o *options) { o.ttl = ttl } }

// WithShards is only honoured by Sharded. Non-positive or non power of two
// values fall back to 16.
func WithShards(n int) Option { return func(o *options) { o.shards = n } }

func apply(opts []Option) options {
	o := options{shards: 16}
	for _, fn := range opts {
		fn(&o)
	}
	if o.shards <= 0 || o.shards&(o.shards-1) != 0 {
		o.shards = 16
	}
	return o
}

type entry[V any] struct {
	v   V
	exp time.Time
}

func (e entry[V]) expired(now time.Time) bool {
	return !e.exp.IsZero() && now.After(e.exp)
}
