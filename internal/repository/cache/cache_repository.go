package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fuelprice-microservice/internal/domain"
	"github.com/fuelprice-microservice/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func rankingKey(fuelType domain.FuelType) string {
	return fmt.Sprintf("ranking:%s", fuelType)
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// GetRanking получает отранжированный список станций из кеша.
// Возвращает nil без ошибки при промахе кеша.
func (r *cacheRepository) GetRanking(ctx context.Context, fuelType domain.FuelType) ([]domain.StationPrice, error) {
	data, err := r.Get(ctx, rankingKey(fuelType))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var ranking []domain.StationPrice
	if err := json.Unmarshal(data, &ranking); err != nil {
		r.logger.Error("Failed to unmarshal ranking from cache",
			zap.String("fuel_type", string(fuelType)), zap.Error(err))
		return nil, fmt.Errorf("unmarshal ranking: %w", err)
	}

	return ranking, nil
}

// SetRanking сохраняет отранжированный список станций в кеше
func (r *cacheRepository) SetRanking(ctx context.Context, fuelType domain.FuelType, ranking []domain.StationPrice, ttl time.Duration) error {
	data, err := json.Marshal(ranking)
	if err != nil {
		r.logger.Error("Failed to marshal ranking",
			zap.String("fuel_type", string(fuelType)), zap.Error(err))
		return fmt.Errorf("marshal ranking: %w", err)
	}

	return r.Set(ctx, rankingKey(fuelType), data, ttl)
}

// DeleteRanking сбрасывает кеш ранжирования, вызывается после
// применения обновления цены
func (r *cacheRepository) DeleteRanking(ctx context.Context, fuelType domain.FuelType) error {
	return r.Delete(ctx, rankingKey(fuelType))
}
