package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Ошибки валидации событий. Проверяются воркером до записи в каталог.
var (
	ErrEventNoStation   = errors.New("price event: missing station id")
	ErrEventBadFuelType = errors.New("price event: unknown fuel type")
	ErrEventBadPrice    = errors.New("price event: price must be positive")
)

// Имена стримов (должны совпадать с publisher'ом цен)
const (
	StreamPriceUpdate  = "stream:prices:update"
	StreamPriceApplied = "stream:prices:applied"
)

// PriceUpdateEvent - входящее событие обновления цены на станции.
type PriceUpdateEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	StationID uuid.UUID `json:"station_id"`
	FuelType  FuelType  `json:"fuel_type"`
	Price     float64   `json:"price"`
}

// Validate отбрасывает событие до записи в каталог: неизвестный тип
// топлива или неположительная цена не должны попадать в ранжирование.
func (e *PriceUpdateEvent) Validate() error {
	if e.StationID == uuid.Nil {
		return ErrEventNoStation
	}
	if !e.FuelType.Valid() {
		return ErrEventBadFuelType
	}
	if e.Price <= 0 {
		return ErrEventBadPrice
	}
	return nil
}

// PriceAppliedEvent - результат применения обновления цены.
type PriceAppliedEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	StationID uuid.UUID `json:"station_id"`
	FuelType  FuelType  `json:"fuel_type"`
	OldPrice  *float64  `json:"old_price,omitempty"`
	NewPrice  float64   `json:"new_price,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream.
type StreamMessage struct {
	ID   string
	Data string
}
