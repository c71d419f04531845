package repository

import (
	"context"

	"github.com/fuelprice-microservice/internal/domain"
)

// PriceReferenceRepository отдаёт резервную таблицу цен поставщиков
// по типу топлива. Используется калькулятором маршрута, когда запрос
// не привязан к конкретным станциям.
type PriceReferenceRepository interface {
	// GetPriceTable возвращает цены поставщиков в порядке регистрации
	GetPriceTable(ctx context.Context, fuelType domain.FuelType) ([]domain.ProviderPrice, error)
}
