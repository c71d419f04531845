// Package ranking реализует движок ранжирования станций по цене.
// Все функции чистые: одинаковый вход всегда даёт одинаковый выход,
// входные срезы не мутируются, скрытого состояния нет.
package ranking

import (
	"sort"

	"github.com/fuelprice-microservice/internal/domain"
)

// CheapestOverall возвращает станцию с глобально минимальной ценой среди
// всех её топливных опций. Используется для EV-коллекций, где у станции
// ровно одно ценовое измерение. Ничья разрешается в пользу станции,
// встреченной раньше во входном срезе. Второй результат false, когда
// коллекция пуста или ни у одной станции нет цен.
func CheapestOverall(stations []domain.Station) (domain.Station, bool) {
	var (
		best  domain.Station
		min   float64
		found bool
	)
	for _, s := range stations {
		for _, opt := range s.FuelOptions {
			if !found || opt.PricePerUnit < min {
				best = s
				min = opt.PricePerUnit
				found = true
			}
		}
	}
	return best, found
}

// StationsOffering отбирает станции, предлагающие данный тип топлива,
// и извлекает его цену. Остальные опции станции на результат не влияют.
// Порядок входа сохраняется; при отсутствии совпадений - пустой срез.
func StationsOffering(stations []domain.Station, ft domain.FuelType) []domain.StationPrice {
	pairs := make([]domain.StationPrice, 0, len(stations))
	for _, s := range stations {
		if price, ok := s.PriceFor(ft); ok {
			pairs = append(pairs, domain.StationPrice{Station: s, Price: price})
		}
	}
	return pairs
}

// RankByPrice сортирует пары по возрастанию цены. Сортировка стабильная:
// равные цены сохраняют относительный порядок входа. Вход не мутируется.
func RankByPrice(pairs []domain.StationPrice) []domain.StationPrice {
	ranked := make([]domain.StationPrice, len(pairs))
	copy(ranked, pairs)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Price < ranked[j].Price
	})
	return ranked
}

// Cheapest возвращает первую пару после ранжирования.
// Для пустого входа второй результат false ("нет данных") - это ожидаемое
// состояние нового пользователя, а не ошибка.
func Cheapest(pairs []domain.StationPrice) (domain.StationPrice, bool) {
	if len(pairs) == 0 {
		return domain.StationPrice{}, false
	}
	return RankByPrice(pairs)[0], true
}

// AveragePrice возвращает среднее арифметическое цен.
// Для пустого входа определено как 0 (задокументированный выбор: вызывающий,
// которому нужно "не определено", сначала проверяет пустоту). Деления на
// ноль не происходит.
func AveragePrice(pairs []domain.StationPrice) float64 {
	if len(pairs) == 0 {
		return 0
	}
	var sum float64
	for _, p := range pairs {
		sum += p.Price
	}
	return sum / float64(len(pairs))
}

// Spread - разброс цен ранжированного списка.
type Spread struct {
	Delta      float64 `json:"delta"`
	Percentage float64 `json:"percentage"`
}

// PriceSpread считает разброс max-min и его процент от минимума.
// Определён только для ранжированного списка длиной >= 2; иначе false
// ("не применимо").
func PriceSpread(ranked []domain.StationPrice) (Spread, bool) {
	if len(ranked) < 2 {
		return Spread{}, false
	}
	min := ranked[0].Price
	max := ranked[len(ranked)-1].Price
	delta := max - min
	return Spread{
		Delta:      delta,
		Percentage: delta / min * 100,
	}, true
}
