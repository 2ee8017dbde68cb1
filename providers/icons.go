package providers

import "strings"

// DefaultIcon для неизвестных условий
const DefaultIcon = "wi-day-sunny"

var iconMap = map[string]string{
	"Clear":            "wi-day-sunny",
	"Partially cloudy": "wi-day-cloudy",
	"Cloudy":           "wi-cloudy",
	"Rain":             "wi-rain",
	"Snow":             "wi-snow",
	"Thunder":          "wi-thunderstorm",
	"Fog":              "wi-fog",
	"Overcast":         "wi-cloudy",
}

// IconFor возвращает класс иконки для строки условий.
// Для составных строк ("Rain, Overcast") берётся первое условие.
func IconFor(conditions string) string {
	if icon, ok := iconMap[conditions]; ok {
		return icon
	}

	first, _, found := strings.Cut(conditions, ",")
	if found {
		if icon, ok := iconMap[strings.TrimSpace(first)]; ok {
			return icon
		}
	}

	return DefaultIcon
}
