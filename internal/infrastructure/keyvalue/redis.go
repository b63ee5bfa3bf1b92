package keyvalue

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps whole-collection JSON payloads in plain string keys, the
// server-side analogue of browser local storage.
type RedisStore struct {
	client  *redis.Client
	timeout time.Duration
}

func Connect(cfg Config) (*RedisStore, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)
	timeout := time.Duration(cfg.QueryTimeout) * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{
		client:  rdb,
		timeout: timeout,
	}, nil
}

// LoadRaw returns nil without error when the key does not exist yet.
func (s *RedisStore) LoadRaw(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	val, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return val, nil
}

func (s *RedisStore) SaveRaw(ctx context.Context, key string, payload []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.client.Set(ctx, key, payload, 0).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
