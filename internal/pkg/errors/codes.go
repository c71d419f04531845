package errors

import "net/http"

// Ошибки маршрутного калькулятора. Все детерминированы входом,
// поэтому никогда не ретраятся — пользователь исправляет запрос.
var (
	ErrInvalidRoute = New(
		"INVALID_ROUTE",
		"Start and destination must be different registered cities",
		http.StatusBadRequest,
	)

	ErrDistanceUnavailable = New(
		"DISTANCE_UNAVAILABLE",
		"No direct distance entry exists between these cities",
		http.StatusUnprocessableEntity,
	)

	ErrMissingPriceData = New(
		"MISSING_PRICE_DATA",
		"No pricing available for this vehicle type",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidConsumption = New(
		"INVALID_CONSUMPTION",
		"Consumption rate must be a positive number",
		http.StatusBadRequest,
	)
)

var (
	ErrInvalidFuelType = New(
		"INVALID_FUEL_TYPE",
		"Fuel type must be one of: gasoline, diesel, lpg, ev",
		http.StatusBadRequest,
	)

	ErrStationNotFound = New(
		"STATION_NOT_FOUND",
		"Station not found",
		http.StatusNotFound,
	)

	ErrInvalidStationID = New(
		"INVALID_STATION_ID",
		"Invalid station ID",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
