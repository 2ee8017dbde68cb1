package providers

import (
	"math"
	"time"

	"weather-dashboard/models"
)

// timelineResponse поля ответа Visual Crossing, которые нам нужны
type timelineResponse struct {
	ResolvedAddress   string         `json:"resolvedAddress"`
	Description       string         `json:"description"`
	Timezone          string         `json:"timezone"`
	TZOffset          *float64       `json:"tzoffset"`
	CurrentConditions *rawConditions `json:"currentConditions"`
	Days              []rawDay       `json:"days"`
}

type rawConditions struct {
	Datetime   string   `json:"datetime"`
	Temp       float64  `json:"temp"`
	FeelsLike  float64  `json:"feelslike"`
	Dew        float64  `json:"dew"`
	Humidity   float64  `json:"humidity"`
	WindSpeed  float64  `json:"windspeed"`
	Visibility float64  `json:"visibility"`
	UVIndex    float64  `json:"uvindex"`
	CloudCover float64  `json:"cloudcover"`
	Pressure   float64  `json:"pressure"`
	PrecipProb *float64 `json:"precipprob"`
	Conditions string   `json:"conditions"`
	Sunrise    string   `json:"sunrise"`
	Sunset     string   `json:"sunset"`
}

type rawDay struct {
	rawConditions
	TempMax     float64         `json:"tempmax"`
	TempMin     float64         `json:"tempmin"`
	Description string          `json:"description"`
	Hours       []rawConditions `json:"hours"`
}

// normalize превращает ответ сервиса в WeatherView
func normalize(raw *timelineResponse) (*models.WeatherView, error) {
	if raw.CurrentConditions == nil {
		return nil, &MalformedDataError{Reason: "нет блока currentConditions"}
	}
	if len(raw.Days) == 0 {
		return nil, &MalformedDataError{Reason: "пустой список дней"}
	}

	cur := raw.CurrentConditions
	today := raw.Days[0]

	view := &models.WeatherView{
		Location:    raw.ResolvedAddress,
		Temperature: roundInt(cur.Temp),
		FeelsLike:   roundInt(cur.FeelsLike),
		DewPoint:    roundInt(cur.Dew),
		Conditions:  cur.Conditions,
		Description: raw.Description,
		Icon:        IconFor(cur.Conditions),
		Humidity:    cur.Humidity,
		CloudCover:  cur.CloudCover,
		UVIndex:     cur.UVIndex,
		Pressure:    cur.Pressure,
		WindSpeed:   roundInt(cur.WindSpeed),
		Visibility:  cur.Visibility,
		Sunrise:     formatTime(cur.Sunrise),
		Sunset:      formatTime(cur.Sunset),
		Timezone:    raw.Timezone,
		TZOffset:    raw.TZOffset,
		TodaySummary: models.TodaySummary{
			TempMax:     roundInt(today.TempMax),
			TempMin:     roundInt(today.TempMin),
			PrecipProb:  roundPercent(today.PrecipProb),
			Description: today.Description,
		},
	}

	hours := today.Hours
	if len(hours) > maxHours {
		hours = hours[:maxHours]
	}
	view.Hourly = make([]models.HourEntry, 0, len(hours))
	for i, h := range hours {
		hour, ok := parseHour(h.Datetime)
		if !ok {
			hour = i
		}
		view.Hourly = append(view.Hourly, models.HourEntry{
			Time:          formatTime(h.Datetime),
			Hour:          hour,
			Temp:          roundInt(h.Temp),
			Precipitation: roundPercent(h.PrecipProb),
			Icon:          IconFor(h.Conditions),
			Conditions:    h.Conditions,
			WindSpeed:     roundInt(h.WindSpeed),
		})
	}

	days := raw.Days
	if len(days) > maxDays {
		days = days[:maxDays]
	}
	view.Daily = make([]models.DayEntry, 0, len(days))
	for _, d := range days {
		view.Daily = append(view.Daily, models.DayEntry{
			Date:          formatDate(d.Datetime),
			TempMax:       roundInt(d.TempMax),
			TempMin:       roundInt(d.TempMin),
			Conditions:    d.Conditions,
			Icon:          IconFor(d.Conditions),
			WindSpeed:     roundInt(d.WindSpeed),
			Precipitation: roundPercent(d.PrecipProb),
		})
	}

	return view, nil
}

// roundInt округляет половины от нуля, NaN и бесконечности дают 0
func roundInt(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}

func roundPercent(v *float64) int {
	if v == nil {
		return 0
	}
	return roundInt(*v)
}

var timeLayouts = []string{"15:04:05", "15:04", time.RFC3339, "2006-01-02T15:04:05"}

func parseClock(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// formatTime "06:12:33" -> "06:12", пусто или мусор -> "N/A"
func formatTime(s string) string {
	if s == "" {
		return "N/A"
	}
	t, ok := parseClock(s)
	if !ok {
		return "N/A"
	}
	return t.Format("15:04")
}

func parseHour(s string) (int, bool) {
	t, ok := parseClock(s)
	if !ok {
		return 0, false
	}
	return t.Hour(), true
}

// formatDate "2024-05-01" -> "Wed, May 1"
func formatDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("Mon, Jan 2")
}
