package kvstore

import (
	"context"
	"errors"

	redis "github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "streamrent:collection:"

type redisStore struct {
	client *redis.Client
}

// NewRedisStore wraps a redis client as a Store.
func NewRedisStore(client *redis.Client) (Store, error) {
	if client == nil {
		return nil, errors.New("kvstore: nil redis client")
	}
	return &redisStore{client: client}, nil
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	stored, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return decodeValue(stored)
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, redisKeyPrefix+key, encodeValue(value), 0).Err()
}

func (s *redisStore) SetAll(ctx context.Context, values map[string][]byte) error {
	pipe := s.client.TxPipeline()
	for key, value := range values {
		pipe.Set(ctx, redisKeyPrefix+key, encodeValue(value), 0)
	}
	_, err := pipe.Exec(ctx)
	return err
}
