package models

// WeatherView нормализованный прогноз для отображения.
// Все температуры в градусах Цельсия, уже округлены.
type WeatherView struct {
	Location    string  `json:"location"`
	Temperature int     `json:"temperature"`
	FeelsLike   int     `json:"feels_like"`
	DewPoint    int     `json:"dew_point"`
	Conditions  string  `json:"conditions"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    float64 `json:"humidity"`    // %
	CloudCover  float64 `json:"cloud_cover"` // %
	UVIndex     float64 `json:"uv_index"`
	Pressure    float64 `json:"pressure"`   // мбар
	WindSpeed   int     `json:"wind_speed"` // км/ч
	Visibility  float64 `json:"visibility"` // км
	Sunrise     string  `json:"sunrise"`    // ЧЧ:ММ или "N/A"
	Sunset      string  `json:"sunset"`

	// Часовой пояс локации: часы прогноза указаны в местном времени
	Timezone string   `json:"timezone,omitempty"`
	TZOffset *float64 `json:"tz_offset,omitempty"` // часы от UTC

	Hourly       []HourEntry  `json:"hourly"`
	TodaySummary TodaySummary `json:"today_summary"`
	Daily        []DayEntry   `json:"daily"`
}

// HourEntry почасовой прогноз на сегодня
type HourEntry struct {
	Time          string `json:"time"`
	Hour          int    `json:"hour"`
	Temp          int    `json:"temp"`
	Precipitation int    `json:"precipitation"` // вероятность осадков, %
	Icon          string `json:"icon"`
	Conditions    string `json:"conditions"`
	WindSpeed     int    `json:"wind_speed"`
}

// TodaySummary сводка на сегодня
type TodaySummary struct {
	TempMax     int    `json:"temp_max"`
	TempMin     int    `json:"temp_min"`
	PrecipProb  int    `json:"precip_prob"`
	Description string `json:"description"`
}

// DayEntry прогноз на один день
type DayEntry struct {
	Date          string `json:"date"`
	TempMax       int    `json:"temp_max"`
	TempMin       int    `json:"temp_min"`
	Conditions    string `json:"conditions"`
	Icon          string `json:"icon"`
	WindSpeed     int    `json:"wind_speed"`
	Precipitation int    `json:"precipitation"`
}

// ErrorResponse структура для ошибок
type ErrorResponse struct {
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty"`
	Details string `json:"details,omitempty"`
}
