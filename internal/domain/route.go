package domain

// ProviderPrice - одна строка ценовой таблицы для класса автомобиля.
// Таблица передаётся срезом, а не map: порядок итерации определяет
// tie-break лучшей цены и раскладку остановок, map в Go его рандомизирует.
type ProviderPrice struct {
	Provider string  `json:"provider"`
	Price    float64 `json:"price"`
}

// RouteQuery - запрос расчёта стоимости маршрута между двумя городами.
// ConsumptionPer100 - литры на 100 км для ДВС, кВт·ч на 100 км для EV.
type RouteQuery struct {
	StartCity         string
	DestinationCity   string
	VehicleClass      VehicleClass
	ConsumptionPer100 float64
}

// StopCandidate - гипотетическая точка дозаправки/зарядки для планирования,
// не реальное положение станций.
type StopCandidate struct {
	Provider            string  `json:"provider"`
	DistanceFromStartKm float64 `json:"distance_from_start_km"`
	PricePerUnit        float64 `json:"price_per_unit"`
	IsBestPrice         bool    `json:"is_best_price"`
}

// RouteResult - итог расчёта маршрута. AmountNeeded в литрах или кВт·ч
// в зависимости от класса; денежные значения округлены до 2 знаков.
type RouteResult struct {
	TotalDistanceKm float64         `json:"total_distance_km"`
	AmountNeeded    float64         `json:"amount_needed"`
	TotalCost       float64         `json:"total_cost"`
	VehicleClass    VehicleClass    `json:"vehicle_class"`
	Stops           []StopCandidate `json:"stops"`
}
