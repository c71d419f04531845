// Package distance реализует справочник расстояний между городами:
// фиксированную симметричную таблицу прямых пар. Никакого поиска путей
// через промежуточные города и никакого нечёткого сопоставления имён -
// пара либо зарегистрирована напрямую, либо расстояние недоступно.
package distance

import "fmt"

// Edge - одна ненаправленная запись справочника.
type Edge struct {
	CityA string  `mapstructure:"from"`
	CityB string  `mapstructure:"to"`
	Km    float64 `mapstructure:"km"`
}

type pairKey struct {
	a, b string
}

// ключ нормализуется лексикографически, чтобы (A,B) и (B,A)
// разрешались в одну и ту же запись
func keyOf(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// Reference - неизменяемый справочник. Загружается один раз на процесс
// и дальше только читается, поэтому безопасен для конкурентных вызовов.
type Reference struct {
	cities []string
	known  map[string]struct{}
	km     map[pairKey]float64
}

// New строит справочник из рёбер. Города регистрируются в порядке первого
// появления - этот порядок стабилен и виден через Cities. Конфликтные
// данные (неположительное расстояние, петля, дубликат пары) - ошибка
// загрузки, а не повод что-то угадывать.
func New(edges []Edge) (*Reference, error) {
	r := &Reference{
		known: make(map[string]struct{}),
		km:    make(map[pairKey]float64, len(edges)),
	}

	for i, e := range edges {
		if e.CityA == "" || e.CityB == "" {
			return nil, fmt.Errorf("distance edge %d: empty city name", i)
		}
		if e.CityA == e.CityB {
			return nil, fmt.Errorf("distance edge %d: self-edge for %q", i, e.CityA)
		}
		if e.Km <= 0 {
			return nil, fmt.Errorf("distance edge %d (%s-%s): distance must be positive, got %v", i, e.CityA, e.CityB, e.Km)
		}

		key := keyOf(e.CityA, e.CityB)
		if _, dup := r.km[key]; dup {
			return nil, fmt.Errorf("distance edge %d: duplicate pair %s-%s", i, e.CityA, e.CityB)
		}
		r.km[key] = e.Km

		r.register(e.CityA)
		r.register(e.CityB)
	}

	return r, nil
}

func (r *Reference) register(city string) {
	if _, ok := r.known[city]; ok {
		return
	}
	r.known[city] = struct{}{}
	r.cities = append(r.cities, city)
}

// Cities возвращает зарегистрированные города в порядке регистрации.
// Возвращается копия, чтобы вызывающий не мог изменить справочник.
func (r *Reference) Cities() []string {
	out := make([]string, len(r.cities))
	copy(out, r.cities)
	return out
}

// Knows сообщает, зарегистрирован ли город. Сопоставление строгое,
// с учётом регистра.
func (r *Reference) Knows(city string) bool {
	_, ok := r.known[city]
	return ok
}

// Between возвращает расстояние прямой пары. Для незарегистрированной
// пары (в том числе a == b) возвращает false - расстояние недоступно.
func (r *Reference) Between(a, b string) (float64, bool) {
	if a == b {
		return 0, false
	}
	km, ok := r.km[keyOf(a, b)]
	return km, ok
}

// Len возвращает количество зарегистрированных пар.
func (r *Reference) Len() int {
	return len(r.km)
}
