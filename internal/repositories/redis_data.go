package repositories

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisData has the same contract as Data, backed by redis.
type RedisData struct {
	client *redis.Client
}

func NewRedisDataRepository(url string) (*RedisData, error) {
	options, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "invalid redis url")
	}
	return NewRedisDataRepositoryWithClient(redis.NewClient(options)), nil
}

func NewRedisDataRepositoryWithClient(client *redis.Client) *RedisData {
	return &RedisData{client: client}
}

func (repo *RedisData) Ping(ctx context.Context) error {
	return repo.client.Ping(ctx).Err()
}

func (repo *RedisData) Save(ctx context.Context, key string, data []byte) error {
	return repo.client.Set(ctx, key, data, 0).Err()
}

func (repo *RedisData) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := repo.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (repo *RedisData) Remove(ctx context.Context, key string) error {
	return repo.client.Del(ctx, key).Err()
}

func (repo *RedisData) Close() error {
	return repo.client.Close()
}
