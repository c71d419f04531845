package repository

import (
	"context"

	"github.com/fuelprice-microservice/internal/domain"
	"github.com/google/uuid"
)

// StationRepository определяет методы для работы со станциями
type StationRepository interface {
	// GetAll возвращает все станции с их ценами
	GetAll(ctx context.Context) ([]domain.Station, error)

	// GetByID возвращает станцию по идентификатору
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Station, error)

	// GetByFuelType возвращает станции, предлагающие данный тип топлива
	GetByFuelType(ctx context.Context, fuelType domain.FuelType) ([]domain.Station, error)

	// GetByFuelTypes возвращает станции, предлагающие хотя бы один из типов
	GetByFuelTypes(ctx context.Context, fuelTypes []domain.FuelType) ([]domain.Station, error)

	// GetByCity возвращает станции в заданном городе
	GetByCity(ctx context.Context, city string) ([]domain.Station, error)

	// UpsertPrice обновляет цену топлива на станции и возвращает
	// предыдущую цену (nil, если её не было)
	UpsertPrice(ctx context.Context, stationID uuid.UUID, fuelType domain.FuelType, price float64) (*float64, error)
}
