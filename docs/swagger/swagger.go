// Package docs Fuel Price Microservice API.
//
// Микросервис отслеживания цен на топливо и расчёта стоимости поездок.
// Ранжирует станции по цене выбранного типа топлива, сравнивает зарядные
// станции и считает стоимость маршрута между городами по справочнику
// расстояний.
//
// Основные возможности:
// - Ранжирование станций по цене топлива (бензин, дизель, LPG, зарядка EV)
// - Сводка лучших цен и потенциальной экономии
// - Расчёт стоимости маршрута между городами
// - Подбор оптимальных заправок вдоль маршрута
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
