package utils

import "math"

// Round2 округляет до 2 знаков по правилу half-up (0.005 -> 0.01).
// Применяется только на границе результата: внутри расчётов значения
// держатся в полной точности, чтобы ошибка округления не накапливалась.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
