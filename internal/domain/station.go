package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FuelType - тип топлива/энергии. Жидкое топливо тарифицируется за литр,
// электричество - за кВт·ч.
type FuelType string

const (
	FuelGasoline FuelType = "gasoline"
	FuelDiesel   FuelType = "diesel"
	FuelLPG      FuelType = "lpg"
	FuelEV       FuelType = "ev"
)

// LiquidFuelTypes - топливные типы страницы сравнения (без EV).
var LiquidFuelTypes = []FuelType{FuelGasoline, FuelDiesel, FuelLPG}

// VehicleClass называется по типу энергии, который потребляет автомобиль,
// поэтому это тот же enum.
type VehicleClass = FuelType

func (f FuelType) Valid() bool {
	switch f {
	case FuelGasoline, FuelDiesel, FuelLPG, FuelEV:
		return true
	}
	return false
}

// Unit возвращает единицу объёма для типа топлива: литры или кВт·ч.
func (f FuelType) Unit() string {
	if f == FuelEV {
		return "kWh"
	}
	return "L"
}

// FuelOption - цена одного типа топлива на станции.
type FuelOption struct {
	FuelType     FuelType `json:"fuel_type" db:"fuel_type"`
	PricePerUnit float64  `json:"price_per_unit" db:"price_per_unit"`
}

// Station - станция заправки или зарядки. Ядро расчётов только читает
// станции, никогда не мутирует.
type Station struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	Name        string       `json:"name" db:"name"`
	Brand       string       `json:"brand" db:"brand"`
	City        string       `json:"city" db:"city"`
	District    string       `json:"district" db:"district"`
	FuelOptions []FuelOption `json:"fuel_options"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}

// PriceFor возвращает цену станции для типа топлива, если он предлагается.
func (s *Station) PriceFor(ft FuelType) (float64, bool) {
	for _, opt := range s.FuelOptions {
		if opt.FuelType == ft {
			return opt.PricePerUnit, true
		}
	}
	return 0, false
}

// Validate проверяет инварианты каталога: известный тип топлива,
// неотрицательная цена и не больше одной цены на тип. Дубликаты типов -
// ошибка данных, которую поставщик обязан устранить до входа в ядро.
func (s *Station) Validate() error {
	seen := make(map[FuelType]struct{}, len(s.FuelOptions))
	for _, opt := range s.FuelOptions {
		if !opt.FuelType.Valid() {
			return fmt.Errorf("station %s: unknown fuel type %q", s.ID, opt.FuelType)
		}
		if opt.PricePerUnit < 0 {
			return fmt.Errorf("station %s: negative price for %s", s.ID, opt.FuelType)
		}
		if _, dup := seen[opt.FuelType]; dup {
			return fmt.Errorf("station %s: duplicate fuel type %s", s.ID, opt.FuelType)
		}
		seen[opt.FuelType] = struct{}{}
	}
	return nil
}

// StationPrice - пара "станция + цена выбранного типа топлива",
// результат фильтрации каталога.
type StationPrice struct {
	Station Station `json:"station"`
	Price   float64 `json:"price"`
}
