package config

import (
	"fmt"

	"github.com/fuelprice-microservice/internal/domain"
	"github.com/fuelprice-microservice/internal/pkg/distance"
	"github.com/spf13/viper"
)

// ReferenceData - статические справочники сервиса: таблица межгородских
// расстояний и резервные ценовые таблицы по типу топлива.
type ReferenceData struct {
	Distances   *distance.Reference
	PriceTables map[domain.FuelType][]domain.ProviderPrice
}

type referenceFile struct {
	Distances []distance.Edge       `mapstructure:"distances"`
	Prices    map[string][]priceRow `mapstructure:"prices"`
}

type priceRow struct {
	Provider string  `mapstructure:"provider"`
	Price    float64 `mapstructure:"price"`
}

// LoadReferenceData читает справочники из YAML-файла, если он задан,
// иначе использует встроенные данные.
func LoadReferenceData(cfg ReferenceConfig) (*ReferenceData, error) {
	if cfg.DataFile == "" {
		return &ReferenceData{
			Distances:   distance.MustDefault(),
			PriceTables: defaultPriceTables(),
		}, nil
	}

	v := viper.New()
	v.SetConfigFile(cfg.DataFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read reference data file: %w", err)
	}

	var file referenceFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("failed to parse reference data file: %w", err)
	}

	ref, err := distance.New(file.Distances)
	if err != nil {
		return nil, fmt.Errorf("invalid distance table: %w", err)
	}

	tables := make(map[domain.FuelType][]domain.ProviderPrice, len(file.Prices))
	for name, rows := range file.Prices {
		ft := domain.FuelType(name)
		if !ft.Valid() {
			return nil, fmt.Errorf("unknown fuel type in reference data: %s", name)
		}
		table := make([]domain.ProviderPrice, 0, len(rows))
		for _, r := range rows {
			if r.Provider == "" || r.Price <= 0 {
				return nil, fmt.Errorf("invalid price row for %s: provider=%q price=%v", name, r.Provider, r.Price)
			}
			table = append(table, domain.ProviderPrice{Provider: r.Provider, Price: r.Price})
		}
		tables[ft] = table
	}
	if len(tables) == 0 {
		tables = defaultPriceTables()
	}

	return &ReferenceData{Distances: ref, PriceTables: tables}, nil
}

// defaultPriceTables - резервные цены поставщиков, применяются пока
// в базе нет актуальных данных по станциям.
func defaultPriceTables() map[domain.FuelType][]domain.ProviderPrice {
	return map[domain.FuelType][]domain.ProviderPrice{
		domain.FuelGasoline: {
			{Provider: "Shell", Price: 42.85},
			{Provider: "BP", Price: 42.50},
			{Provider: "Petrol Ofisi", Price: 41.90},
			{Provider: "Opet", Price: 42.15},
		},
		domain.FuelDiesel: {
			{Provider: "Shell", Price: 44.20},
			{Provider: "BP", Price: 43.95},
			{Provider: "Petrol Ofisi", Price: 43.40},
			{Provider: "Opet", Price: 43.75},
		},
		domain.FuelLPG: {
			{Provider: "Shell", Price: 18.50},
			{Provider: "BP", Price: 18.25},
			{Provider: "Petrol Ofisi", Price: 17.90},
			{Provider: "Opet", Price: 18.10},
		},
		domain.FuelEV: {
			{Provider: "Tesla Supercharger", Price: 4.50},
			{Provider: "Trugo", Price: 5.20},
			{Provider: "ZES", Price: 4.80},
			{Provider: "Esarj", Price: 5.00},
		},
	}
}
