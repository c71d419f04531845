package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/fuelprice-microservice/internal/domain"
)

// MockStationRepository is a mock of StationRepository
type MockStationRepository struct {
	mock.Mock
}

func (m *MockStationRepository) GetAll(ctx context.Context) ([]domain.Station, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Station), args.Error(1)
}

func (m *MockStationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Station, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Station), args.Error(1)
}

func (m *MockStationRepository) GetByFuelType(ctx context.Context, fuelType domain.FuelType) ([]domain.Station, error) {
	args := m.Called(ctx, fuelType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Station), args.Error(1)
}

func (m *MockStationRepository) GetByFuelTypes(ctx context.Context, fuelTypes []domain.FuelType) ([]domain.Station, error) {
	args := m.Called(ctx, fuelTypes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Station), args.Error(1)
}

func (m *MockStationRepository) GetByCity(ctx context.Context, city string) ([]domain.Station, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Station), args.Error(1)
}

func (m *MockStationRepository) UpsertPrice(ctx context.Context, stationID uuid.UUID, fuelType domain.FuelType, price float64) (*float64, error) {
	args := m.Called(ctx, stationID, fuelType, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetRanking(ctx context.Context, fuelType domain.FuelType) ([]domain.StationPrice, error) {
	args := m.Called(ctx, fuelType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StationPrice), args.Error(1)
}

func (m *MockCacheRepository) SetRanking(ctx context.Context, fuelType domain.FuelType, ranking []domain.StationPrice, ttl time.Duration) error {
	args := m.Called(ctx, fuelType, ranking, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) DeleteRanking(ctx context.Context, fuelType domain.FuelType) error {
	args := m.Called(ctx, fuelType)
	return args.Error(0)
}

// MockPriceReferenceRepository is a mock of PriceReferenceRepository
type MockPriceReferenceRepository struct {
	mock.Mock
}

func (m *MockPriceReferenceRepository) GetPriceTable(ctx context.Context, fuelType domain.FuelType) ([]domain.ProviderPrice, error) {
	args := m.Called(ctx, fuelType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProviderPrice), args.Error(1)
}
