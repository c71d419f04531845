package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fuelprice-microservice/internal/domain"
	"github.com/fuelprice-microservice/internal/pkg/errors"
	"github.com/fuelprice-microservice/internal/usecase"
)

func TestStationUseCase_GetByID(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("returns station with fuel options", func(t *testing.T) {
		mockStations := &MockStationRepository{}
		uc := usecase.NewStationUseCase(mockStations, logger)

		station := newStation("Shell",
			domain.FuelOption{FuelType: domain.FuelGasoline, PricePerUnit: 42.85},
			domain.FuelOption{FuelType: domain.FuelEV, PricePerUnit: 4.90},
		)
		mockStations.On("GetByID", ctx, station.ID).Return(&station, nil)

		resp, err := uc.GetByID(ctx, station.ID.String())
		require.NoError(t, err)
		assert.Equal(t, station.ID.String(), resp.ID)
		require.Len(t, resp.FuelOptions, 2)
		assert.Equal(t, "L", resp.FuelOptions[0].Unit)
		assert.Equal(t, "kWh", resp.FuelOptions[1].Unit)
	})

	t.Run("malformed id", func(t *testing.T) {
		mockStations := &MockStationRepository{}
		uc := usecase.NewStationUseCase(mockStations, logger)

		_, err := uc.GetByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, errors.ErrInvalidStationID)
	})

	t.Run("not found", func(t *testing.T) {
		mockStations := &MockStationRepository{}
		uc := usecase.NewStationUseCase(mockStations, logger)

		id := uuid.New()
		mockStations.On("GetByID", ctx, id).Return(nil, errors.ErrStationNotFound)

		_, err := uc.GetByID(ctx, id.String())
		assert.ErrorIs(t, err, errors.ErrStationNotFound)
	})
}

func TestStationUseCase_GetAll(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	mockStations := &MockStationRepository{}
	uc := usecase.NewStationUseCase(mockStations, logger)

	mockStations.On("GetAll", ctx).Return(gasolineCatalog(), nil)

	resp, err := uc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, resp, 4)
	assert.Equal(t, "Shell", resp[0].Name)
}
