package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"locus-bot/internal/config"
)

const settingsKeyFormat = "settings:%s"

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, cfg config.RedisConfig) (SettingsRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := client.Close(); err != nil {
			logger.Errorw("failed to close redis client", "error", err)
		}
	}()

	return newRedisRepository(client), nil
}

func newRedisRepository(client *redis.Client) *redisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) GetOverrides(ctx context.Context, guildId string) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	overrides, err := r.client.HGetAll(ctx, settingsKey(guildId)).Result()
	if err != nil {
		return nil, err
	}
	if overrides == nil {
		overrides = make(map[string]string)
	}

	return overrides, nil
}

func (r *redisRepository) SetOverride(ctx context.Context, guildId string, key string, value string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.client.HSet(ctx, settingsKey(guildId), key, value).Err()
}

func (r *redisRepository) DeleteOverride(ctx context.Context, guildId string, key string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.client.HDel(ctx, settingsKey(guildId), key).Err()
}

func settingsKey(guildId string) string {
	return fmt.Sprintf(settingsKeyFormat, guildId)
}
