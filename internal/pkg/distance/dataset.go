package distance

// DefaultEdges - встроенная таблица расстояний между турецкими городами.
// Используется, когда внешний файл справочника не задан в конфигурации.
// Таблица намеренно неполная: пары без прямой записи (например
// Bursa-Antalya) разрешаются как "маршрут не поддерживается".
func DefaultEdges() []Edge {
	return []Edge{
		{CityA: "Istanbul", CityB: "Ankara", Km: 450},
		{CityA: "Istanbul", CityB: "Izmir", Km: 480},
		{CityA: "Istanbul", CityB: "Bursa", Km: 150},
		{CityA: "Istanbul", CityB: "Eskisehir", Km: 330},
		{CityA: "Istanbul", CityB: "Antalya", Km: 715},
		{CityA: "Ankara", CityB: "Izmir", Km: 580},
		{CityA: "Ankara", CityB: "Antalya", Km: 480},
		{CityA: "Ankara", CityB: "Eskisehir", Km: 235},
		{CityA: "Ankara", CityB: "Konya", Km: 260},
		{CityA: "Ankara", CityB: "Adana", Km: 490},
		{CityA: "Izmir", CityB: "Antalya", Km: 445},
		{CityA: "Izmir", CityB: "Bursa", Km: 325},
		{CityA: "Bursa", CityB: "Eskisehir", Km: 155},
		{CityA: "Konya", CityB: "Antalya", Km: 305},
		{CityA: "Konya", CityB: "Adana", Km: 355},
	}
}

// MustDefault строит справочник из встроенной таблицы.
// Паника здесь означает ошибку в самой таблице, а не во входных данных.
func MustDefault() *Reference {
	r, err := New(DefaultEdges())
	if err != nil {
		panic("distance: invalid built-in dataset: " + err.Error())
	}
	return r
}
