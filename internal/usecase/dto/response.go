package dto

import (
	"github.com/fuelprice-microservice/internal/domain"
)

// FuelOptionDTO - цена одного типа топлива на станции
type FuelOptionDTO struct {
	FuelType     string  `json:"fuel_type"`
	PricePerUnit float64 `json:"price_per_unit"`
	Unit         string  `json:"unit"`
}

// StationDTO - станция в ответах API
type StationDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	City        string          `json:"city"`
	District    string          `json:"district,omitempty"`
	FuelOptions []FuelOptionDTO `json:"fuel_options"`
}

// StationPriceDTO - станция с ценой по запрошенному типу топлива
type StationPriceDTO struct {
	Station StationDTO `json:"station"`
	Price   float64    `json:"price"`
}

// CompareSummary - сводка по отранжированному списку
type CompareSummary struct {
	CheapestStation  string   `json:"cheapest_station,omitempty"`
	CheapestPrice    float64  `json:"cheapest_price,omitempty"`
	AveragePrice     float64  `json:"average_price"`
	SpreadDelta      *float64 `json:"spread_delta,omitempty"`
	SpreadPercentage *float64 `json:"spread_percentage,omitempty"`
}

// CompareResponse - отранжированный по цене список станций
type CompareResponse struct {
	FuelType string            `json:"fuel_type"`
	Unit     string            `json:"unit"`
	Stations []StationPriceDTO `json:"stations"`
	Summary  CompareSummary    `json:"summary"`
}

// SummaryCard - карточка сводки по одному типу топлива
type SummaryCard struct {
	FuelType         string  `json:"fuel_type"`
	Unit             string  `json:"unit"`
	LowestPrice      float64 `json:"lowest_price"`
	CheapestStation  string  `json:"cheapest_station"`
	PotentialSavings float64 `json:"potential_savings"` // экономия за единицу против средней цены
	StationCount     int     `json:"station_count"`
}

// SummaryResponse - сводка лучших цен по всем типам топлива
type SummaryResponse struct {
	Cards []SummaryCard `json:"cards"`
}

// PriceRangeDTO - разброс цен в отранжированном списке
type PriceRangeDTO struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// EVCompareResponse - станции зарядки, отранжированные по цене за кВт·ч
type EVCompareResponse struct {
	Stations      []StationPriceDTO `json:"stations"`
	Cheapest      *StationPriceDTO  `json:"cheapest,omitempty"`
	PriceRange    *PriceRangeDTO    `json:"price_range,omitempty"`
	SavingsPerKWh float64           `json:"savings_per_kwh"`
}

// StopDTO - точка дозаправки на маршруте
type StopDTO struct {
	Provider            string  `json:"provider"`
	DistanceFromStartKm float64 `json:"distance_from_start_km"`
	PricePerUnit        float64 `json:"price_per_unit"`
	IsBestPrice         bool    `json:"is_best_price"`
}

// RouteResponse - результат расчёта стоимости маршрута
type RouteResponse struct {
	StartCity       string    `json:"start_city"`
	DestinationCity string    `json:"destination_city"`
	VehicleClass    string    `json:"vehicle_class"`
	TotalDistanceKm float64   `json:"total_distance_km"`
	AmountNeeded    float64   `json:"amount_needed"`
	Unit            string    `json:"unit"`
	TotalCost       float64   `json:"total_cost"`
	Stops           []StopDTO `json:"stops"`
}

// OptimizeResponse - оптимальные заправки вдоль маршрута
type OptimizeResponse struct {
	StartCity        string            `json:"start_city"`
	DestinationCity  string            `json:"destination_city"`
	FuelType         string            `json:"fuel_type"`
	TotalDistanceKm  float64           `json:"total_distance_km"`
	AmountNeeded     float64           `json:"amount_needed"`
	Unit             string            `json:"unit"`
	BestStation      StationPriceDTO   `json:"best_station"`
	EstimatedCost    float64           `json:"estimated_cost"`
	AveragePrice     float64           `json:"average_price"`
	SavingsVsAverage float64           `json:"savings_vs_average"`
	RecommendedStops []StationPriceDTO `json:"recommended_stops"`
}

// CitiesResponse - список городов справочника расстояний
type CitiesResponse struct {
	Cities []string `json:"cities"`
	Count  int      `json:"count"`
}

// NewStationDTO конвертирует доменную станцию в DTO
func NewStationDTO(s domain.Station) StationDTO {
	options := make([]FuelOptionDTO, 0, len(s.FuelOptions))
	for _, opt := range s.FuelOptions {
		options = append(options, FuelOptionDTO{
			FuelType:     string(opt.FuelType),
			PricePerUnit: opt.PricePerUnit,
			Unit:         opt.FuelType.Unit(),
		})
	}
	return StationDTO{
		ID:          s.ID.String(),
		Name:        s.Name,
		Brand:       s.Brand,
		City:        s.City,
		District:    s.District,
		FuelOptions: options,
	}
}

// NewStationPriceDTOs конвертирует отранжированный список с сохранением порядка
func NewStationPriceDTOs(pairs []domain.StationPrice) []StationPriceDTO {
	out := make([]StationPriceDTO, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, StationPriceDTO{
			Station: NewStationDTO(p.Station),
			Price:   p.Price,
		})
	}
	return out
}

// NewRouteResponse конвертирует результат расчёта маршрута
func NewRouteResponse(q domain.RouteQuery, r *domain.RouteResult) *RouteResponse {
	stops := make([]StopDTO, 0, len(r.Stops))
	for _, s := range r.Stops {
		stops = append(stops, StopDTO{
			Provider:            s.Provider,
			DistanceFromStartKm: s.DistanceFromStartKm,
			PricePerUnit:        s.PricePerUnit,
			IsBestPrice:         s.IsBestPrice,
		})
	}
	return &RouteResponse{
		StartCity:       q.StartCity,
		DestinationCity: q.DestinationCity,
		VehicleClass:    string(r.VehicleClass),
		TotalDistanceKm: r.TotalDistanceKm,
		AmountNeeded:    r.AmountNeeded,
		Unit:            r.VehicleClass.Unit(),
		TotalCost:       r.TotalCost,
		Stops:           stops,
	}
}
