package repository

import (
	"context"
	"time"

	"github.com/fuelprice-microservice/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetRanking получает отранжированный список станций из кеша
	GetRanking(ctx context.Context, fuelType domain.FuelType) ([]domain.StationPrice, error)

	// SetRanking сохраняет отранжированный список станций в кеше
	SetRanking(ctx context.Context, fuelType domain.FuelType, ranking []domain.StationPrice, ttl time.Duration) error

	// DeleteRanking сбрасывает кеш ранжирования для типа топлива
	DeleteRanking(ctx context.Context, fuelType domain.FuelType) error
}
