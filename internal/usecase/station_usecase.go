package usecase

import (
	"context"

	"github.com/fuelprice-microservice/internal/domain/repository"
	"github.com/fuelprice-microservice/internal/pkg/errors"
	"github.com/fuelprice-microservice/internal/usecase/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StationUseCase обрабатывает чтение каталога станций
type StationUseCase struct {
	stationRepo repository.StationRepository
	logger      *zap.Logger
}

// NewStationUseCase создает новый экземпляр StationUseCase
func NewStationUseCase(stationRepo repository.StationRepository, logger *zap.Logger) *StationUseCase {
	return &StationUseCase{
		stationRepo: stationRepo,
		logger:      logger,
	}
}

// GetAll возвращает все станции каталога
func (uc *StationUseCase) GetAll(ctx context.Context) ([]dto.StationDTO, error) {
	stations, err := uc.stationRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.StationDTO, 0, len(stations))
	for _, s := range stations {
		out = append(out, dto.NewStationDTO(s))
	}
	return out, nil
}

// GetByID возвращает станцию по идентификатору
func (uc *StationUseCase) GetByID(ctx context.Context, id string) (*dto.StationDTO, error) {
	stationID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.ErrInvalidStationID
	}

	station, err := uc.stationRepo.GetByID(ctx, stationID)
	if err != nil {
		return nil, err
	}

	result := dto.NewStationDTO(*station)
	return &result, nil
}

// GetByCity возвращает станции в заданном городе
func (uc *StationUseCase) GetByCity(ctx context.Context, city string) ([]dto.StationDTO, error) {
	stations, err := uc.stationRepo.GetByCity(ctx, city)
	if err != nil {
		return nil, err
	}

	out := make([]dto.StationDTO, 0, len(stations))
	for _, s := range stations {
		out = append(out, dto.NewStationDTO(s))
	}
	return out, nil
}
