package postgres

import (
	"context"
	"database/sql"

	"github.com/fuelprice-microservice/internal/domain"
	"github.com/fuelprice-microservice/internal/domain/repository"
	"github.com/fuelprice-microservice/internal/pkg/errors"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type stationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewStationRepository(db *DB) repository.StationRepository {
	return &stationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const stationSelect = `
	SELECT
		s.id, s.name, s.brand, s.city, s.district, s.created_at, s.updated_at,
		f.fuel_type, f.price_per_unit
	FROM stations s
	LEFT JOIN fuel_options f ON f.station_id = s.id
`

// scanStations собирает строки LEFT JOIN в станции с их ценами.
// Порядок станций определяется ORDER BY запроса.
func (r *stationRepository) scanStations(rows *sql.Rows) ([]domain.Station, error) {
	var stations []domain.Station
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var s domain.Station
		var fuelType sql.NullString
		var price sql.NullFloat64

		err := rows.Scan(
			&s.ID, &s.Name, &s.Brand, &s.City, &s.District,
			&s.CreatedAt, &s.UpdatedAt, &fuelType, &price,
		)
		if err != nil {
			r.logger.Error("Failed to scan station row", zap.Error(err))
			continue
		}

		i, ok := index[s.ID]
		if !ok {
			stations = append(stations, s)
			i = len(stations) - 1
			index[s.ID] = i
		}

		if fuelType.Valid && price.Valid {
			stations[i].FuelOptions = append(stations[i].FuelOptions, domain.FuelOption{
				FuelType:     domain.FuelType(fuelType.String),
				PricePerUnit: price.Float64,
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stations, nil
}

func (r *stationRepository) GetAll(ctx context.Context) ([]domain.Station, error) {
	query := stationSelect + ` ORDER BY s.created_at, s.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to get stations", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	stations, err := r.scanStations(rows)
	if err != nil {
		r.logger.Error("Failed to read station rows", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return stations, nil
}

func (r *stationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Station, error) {
	query := stationSelect + ` WHERE s.id = $1`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to get station by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	stations, err := r.scanStations(rows)
	if err != nil {
		r.logger.Error("Failed to read station rows", zap.String("id", id.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if len(stations) == 0 {
		return nil, errors.ErrStationNotFound
	}
	return &stations[0], nil
}

func (r *stationRepository) GetByFuelType(ctx context.Context, fuelType domain.FuelType) ([]domain.Station, error) {
	return r.GetByFuelTypes(ctx, []domain.FuelType{fuelType})
}

func (r *stationRepository) GetByFuelTypes(ctx context.Context, fuelTypes []domain.FuelType) ([]domain.Station, error) {
	types := make([]string, len(fuelTypes))
	for i, ft := range fuelTypes {
		types[i] = string(ft)
	}

	query := stationSelect + `
		WHERE s.id IN (
			SELECT station_id FROM fuel_options WHERE fuel_type = ANY($1)
		)
		ORDER BY s.created_at, s.id
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(types))
	if err != nil {
		r.logger.Error("Failed to get stations by fuel types",
			zap.Strings("fuel_types", types), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	stations, err := r.scanStations(rows)
	if err != nil {
		r.logger.Error("Failed to read station rows", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return stations, nil
}

func (r *stationRepository) GetByCity(ctx context.Context, city string) ([]domain.Station, error) {
	query := stationSelect + ` WHERE s.city = $1 ORDER BY s.created_at, s.id`

	rows, err := r.db.QueryContext(ctx, query, city)
	if err != nil {
		r.logger.Error("Failed to get stations by city", zap.String("city", city), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	stations, err := r.scanStations(rows)
	if err != nil {
		r.logger.Error("Failed to read station rows", zap.String("city", city), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return stations, nil
}

func (r *stationRepository) UpsertPrice(
	ctx context.Context,
	stationID uuid.UUID,
	fuelType domain.FuelType,
	price float64,
) (*float64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM stations WHERE id = $1)`, stationID).Scan(&exists)
	if err != nil {
		r.logger.Error("Failed to check station existence",
			zap.String("station_id", stationID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if !exists {
		return nil, errors.ErrStationNotFound
	}

	var oldPrice *float64
	err = tx.QueryRowContext(ctx,
		`SELECT price_per_unit FROM fuel_options WHERE station_id = $1 AND fuel_type = $2 FOR UPDATE`,
		stationID, string(fuelType),
	).Scan(&oldPrice)
	if err != nil && err != sql.ErrNoRows {
		r.logger.Error("Failed to read current price",
			zap.String("station_id", stationID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO fuel_options (station_id, fuel_type, price_per_unit)
		VALUES ($1, $2, $3)
		ON CONFLICT (station_id, fuel_type)
		DO UPDATE SET price_per_unit = EXCLUDED.price_per_unit
	`, stationID, string(fuelType), price)
	if err != nil {
		r.logger.Error("Failed to upsert price",
			zap.String("station_id", stationID.String()),
			zap.String("fuel_type", string(fuelType)),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	_, err = tx.ExecContext(ctx, `UPDATE stations SET updated_at = NOW() WHERE id = $1`, stationID)
	if err != nil {
		r.logger.Error("Failed to touch station", zap.String("station_id", stationID.String()), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit price update", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return oldPrice, nil
}
