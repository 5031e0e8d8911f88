package store

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

// Redis — KV поверх Redis. Записи без TTL: очистка соответствий вне
// зоны ответственности ядра.
type Redis struct {
	rdb *redis.Client
}

func (s *Redis) Get(ctx context.Context, key string) (string, error) {
	v, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "Failed get key from redis")
	}
	return v, nil
}

func (s *Redis) Put(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrap(err, "Failed set key to redis")
	}
	return nil
}
