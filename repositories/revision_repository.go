package repositories

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

type RedisRevisionRepository struct {
	client *redis.Client
}

func NewRedisRevisionRepository(client *redis.Client) *RedisRevisionRepository {
	return &RedisRevisionRepository{client: client}
}

func revisionKey(ownerID string) string {
	return "rev:" + ownerID
}

func (r *RedisRevisionRepository) Bump(ctx context.Context, ownerID string) (int64, error) {
	return r.client.Incr(ctx, revisionKey(ownerID)).Result()
}

func (r *RedisRevisionRepository) Current(ctx context.Context, ownerID string) (int64, error) {
	val, err := r.client.Get(ctx, revisionKey(ownerID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return val, nil
}
