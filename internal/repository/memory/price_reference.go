package memory

import (
	"context"
	"sync"

	"github.com/fuelprice-microservice/internal/domain"
	"github.com/fuelprice-microservice/internal/domain/repository"
	"github.com/fuelprice-microservice/internal/pkg/errors"
)

// priceReferenceRepository хранит резервные ценовые таблицы в памяти.
// Таблицы задаются при старте из справочника и не меняются во время работы.
type priceReferenceRepository struct {
	mu     sync.RWMutex
	tables map[domain.FuelType][]domain.ProviderPrice
}

func NewPriceReferenceRepository(tables map[domain.FuelType][]domain.ProviderPrice) repository.PriceReferenceRepository {
	copied := make(map[domain.FuelType][]domain.ProviderPrice, len(tables))
	for ft, table := range tables {
		rows := make([]domain.ProviderPrice, len(table))
		copy(rows, table)
		copied[ft] = rows
	}
	return &priceReferenceRepository{tables: copied}
}

// FromStations строит ценовые таблицы из каталога станций: минимальная цена
// бренда по каждому типу топлива, порядок брендов - порядок первого появления
// в каталоге. Альтернатива статическому справочнику, когда каталог уже заполнен.
func FromStations(stations []domain.Station) map[domain.FuelType][]domain.ProviderPrice {
	tables := make(map[domain.FuelType][]domain.ProviderPrice)
	index := make(map[domain.FuelType]map[string]int)

	for _, st := range stations {
		for _, opt := range st.FuelOptions {
			if !opt.FuelType.Valid() || opt.PricePerUnit <= 0 {
				continue
			}
			byBrand, ok := index[opt.FuelType]
			if !ok {
				byBrand = make(map[string]int)
				index[opt.FuelType] = byBrand
			}
			if i, seen := byBrand[st.Brand]; seen {
				if opt.PricePerUnit < tables[opt.FuelType][i].Price {
					tables[opt.FuelType][i].Price = opt.PricePerUnit
				}
				continue
			}
			byBrand[st.Brand] = len(tables[opt.FuelType])
			tables[opt.FuelType] = append(tables[opt.FuelType], domain.ProviderPrice{
				Provider: st.Brand,
				Price:    opt.PricePerUnit,
			})
		}
	}
	return tables
}

func (r *priceReferenceRepository) GetPriceTable(ctx context.Context, fuelType domain.FuelType) ([]domain.ProviderPrice, error) {
	if !fuelType.Valid() {
		return nil, errors.ErrInvalidFuelType
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	table, ok := r.tables[fuelType]
	if !ok || len(table) == 0 {
		return nil, errors.ErrMissingPriceData
	}

	// Копия наружу, чтобы вызывающий код не мог изменить справочник
	out := make([]domain.ProviderPrice, len(table))
	copy(out, table)
	return out, nil
}
