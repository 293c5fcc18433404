package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/esdrassantos06/tarevity-notification-core/internal/domain"
)

type refreshStateRepository struct {
	client        *redis.Client
	activeUserTTL time.Duration
}

// NewRefreshStateRepository builds the Redis-backed refresh bookkeeping
// store: per-user throttle stamps (SET NX with TTL), last-check watermarks,
// and the recently-active user sorted set scored by last-touch time.
func NewRefreshStateRepository(client *redis.Client, activeUserTTL time.Duration) domain.RefreshStateRepository {
	return &refreshStateRepository{
		client:        client,
		activeUserTTL: activeUserTTL,
	}
}

func (r *refreshStateRepository) AcquireRefreshSlot(ctx context.Context, userID string, interval time.Duration) (bool, error) {
	key := refreshKeyPrefix + userID

	return r.client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), interval).Result()
}

func (r *refreshStateRepository) LastCheckDay(ctx context.Context, userID string) (string, error) {
	key := lastCheckKeyPrefix + userID

	day, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrWatermarkNotFound
		}
		return "", err
	}

	return day, nil
}

func (r *refreshStateRepository) SetLastCheckDay(ctx context.Context, userID, dayKey string) error {
	key := lastCheckKeyPrefix + userID

	return r.client.Set(ctx, key, dayKey, lastCheckTTL).Err()
}

func (r *refreshStateRepository) TouchActiveUser(ctx context.Context, userID string) error {
	now := time.Now().UTC()

	pipe := r.client.TxPipeline()
	pipe.ZAdd(ctx, activeUsersKey, redis.Z{
		Score:  float64(now.Unix()),
		Member: userID,
	})
	// Prune users idle past the TTL while we are here.
	cutoff := now.Add(-r.activeUserTTL).Unix()
	pipe.ZRemRangeByScore(ctx, activeUsersKey, "-inf", strconv.FormatInt(cutoff, 10))

	_, err := pipe.Exec(ctx)
	return err
}

func (r *refreshStateRepository) ListActiveUsers(ctx context.Context) ([]string, error) {
	cutoff := time.Now().UTC().Add(-r.activeUserTTL).Unix()

	return r.client.ZRangeByScore(ctx, activeUsersKey, &redis.ZRangeBy{
		Min: strconv.FormatInt(cutoff, 10),
		Max: "+inf",
	}).Result()
}
