package dto

// CompareRequest - параметры сравнения цен по типу топлива
type CompareRequest struct {
	FuelType string `json:"fuel_type" query:"fuel_type" validate:"required,fueltype"`
}

// RouteRequest - запрос на расчёт стоимости маршрута
type RouteRequest struct {
	StartCity         string  `json:"start_city" validate:"required,min=1,max=100"`
	DestinationCity   string  `json:"destination_city" validate:"required,min=1,max=100"`
	VehicleClass      string  `json:"vehicle_class" validate:"required,fueltype"`
	ConsumptionPer100 float64 `json:"consumption_per_100km" validate:"required,gt=0,lte=100"`
}

// OptimizeRequest - запрос на подбор оптимальных заправок вдоль маршрута
type OptimizeRequest struct {
	StartCity         string  `json:"start_city" validate:"required,min=1,max=100"`
	DestinationCity   string  `json:"destination_city" validate:"required,min=1,max=100"`
	FuelType          string  `json:"fuel_type" validate:"required,fueltype"`
	ConsumptionPer100 float64 `json:"consumption_per_100km" validate:"required,gt=0,lte=100"`
	RecommendedStops  int     `json:"recommended_stops,omitempty" validate:"omitempty,min=1,max=10"`
}
