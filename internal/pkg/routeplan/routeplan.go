// Package routeplan реализует калькулятор стоимости маршрута: по запросу,
// справочнику расстояний и ценовой таблице класса автомобиля строит
// RouteResult с рекомендуемыми остановками. Калькулятор не хранит
// состояния: у вызова ровно два исхода - результат или типизированная
// ошибка, промежуточных и ретраябельных состояний нет.
package routeplan

import (
	"math"
	"sort"

	"github.com/fuelprice-microservice/internal/domain"
	"github.com/fuelprice-microservice/internal/pkg/distance"
	"github.com/fuelprice-microservice/internal/pkg/errors"
	"github.com/fuelprice-microservice/internal/pkg/utils"
)

// ValidateCities выполняет fail-fast проверку городов запроса до любого
// обращения к таблице расстояний: совпадающие или незарегистрированные
// города - ошибка пользователя, а не справочника.
func ValidateCities(ref *distance.Reference, start, destination string) error {
	if start == destination {
		return errors.ErrInvalidRoute
	}
	if !ref.Knows(start) || !ref.Knows(destination) {
		return errors.ErrInvalidRoute.WithDetails(map[string]interface{}{
			"start":       start,
			"destination": destination,
		})
	}
	return nil
}

// Calculate считает стоимость маршрута. Ценовая таблица - упорядоченное
// отображение провайдер -> положительная цена; её порядок определяет
// tie-break лучшей цены и раскладку гипотетических остановок.
func Calculate(
	q domain.RouteQuery,
	ref *distance.Reference,
	table []domain.ProviderPrice,
) (*domain.RouteResult, error) {
	// 1. Валидация запроса. Совпадение городов проверяется до поиска
	// расстояния.
	if err := ValidateCities(ref, q.StartCity, q.DestinationCity); err != nil {
		return nil, err
	}
	if !q.VehicleClass.Valid() {
		return nil, errors.ErrInvalidFuelType
	}
	if q.ConsumptionPer100 <= 0 {
		return nil, errors.ErrInvalidConsumption
	}
	if len(table) == 0 {
		return nil, errors.ErrMissingPriceData
	}
	for _, p := range table {
		if p.Provider == "" || p.Price <= 0 {
			return nil, errors.ErrMissingPriceData.WithDetails(map[string]interface{}{
				"provider": p.Provider,
			})
		}
	}

	// Оба города зарегистрированы, но прямой записи может не быть.
	// Расстояние в этом случае не придумывается и не интерполируется.
	dist, ok := ref.Between(q.StartCity, q.DestinationCity)
	if !ok {
		return nil, errors.ErrDistanceUnavailable
	}

	// 2. Объём топлива/энергии в полной точности.
	amountNeeded := dist * q.ConsumptionPer100 / 100

	// 3-4. Лучший провайдер: минимум цены, при ничьей - первый по порядку
	// таблицы.
	best := 0
	for i := 1; i < len(table); i++ {
		if table[i].Price < table[best].Price {
			best = i
		}
	}

	// 5. Итоговая стоимость, округление только на границе.
	totalCost := utils.Round2(amountNeeded * table[best].Price)

	// 6. Равномерно распределённые гипотетические остановки: по одной на
	// провайдера, позиция - детерминированная функция порядка и количества.
	stops := make([]domain.StopCandidate, len(table))
	n := float64(len(table))
	for i, p := range table {
		stops[i] = domain.StopCandidate{
			Provider:            p.Provider,
			DistanceFromStartKm: math.Floor(dist / n * (float64(i) + 0.5)),
			PricePerUnit:        p.Price,
			IsBestPrice:         i == best,
		}
	}

	// 7. Стабильная сортировка по удалению от старта: равные позиции
	// сохраняют порядок таблицы.
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].DistanceFromStartKm < stops[j].DistanceFromStartKm
	})

	return &domain.RouteResult{
		TotalDistanceKm: dist,
		AmountNeeded:    utils.Round2(amountNeeded),
		TotalCost:       totalCost,
		VehicleClass:    q.VehicleClass,
		Stops:           stops,
	}, nil
}
