// Package render строит дерево отображения из нормализованного прогноза.
// Render чистая функция: время передаётся явно.
package render

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"weather-dashboard/models"
)

// DisplayTree описывает, что показать на странице, без привязки к разметке
type DisplayTree struct {
	Empty   bool
	Unit    string // "C" или "F"
	Main    MainInfo
	Summary Summary
	Hourly  []HourSlot
	Daily   []DaySlot
	Details []Detail
}

type MainInfo struct {
	Location    string
	Date        string
	Icon        string
	Temperature int
	Conditions  string
	FeelsLike   int
}

type Summary struct {
	Description string
	High        int
	Low         int
	PrecipProb  int
}

type HourSlot struct {
	Label         string
	Current       bool
	Temp          int
	Precipitation int
	Icon          string
	Conditions    string
	WindSpeed     int
}

type DaySlot struct {
	Date          string
	Conditions    string
	Icon          string
	High          int
	Low           int
	Precipitation int
	WindSpeed     int
}

type Detail struct {
	Icon  string
	Label string
	Value string
}

// ToFahrenheit переводит градусы Цельсия в Фаренгейты с округлением
func ToFahrenheit(celsius int) int {
	return int(math.Round(float64(celsius)*9/5 + 32))
}

// ConvertTemp значения в Цельсиях уже округлены и возвращаются как есть
func ConvertTemp(celsius int, useFahrenheit bool) int {
	if useFahrenheit {
		return ToFahrenheit(celsius)
	}
	return celsius
}

// UnitLabel "F" или "C"
func UnitLabel(useFahrenheit bool) string {
	if useFahrenheit {
		return "F"
	}
	return "C"
}

// Render собирает пять областей: основная информация, сводка, почасовой,
// дневной прогноз и детали. nil даёт пустое дерево.
func Render(view *models.WeatherView, useFahrenheit bool, now time.Time) DisplayTree {
	tree := DisplayTree{Unit: UnitLabel(useFahrenheit)}
	if view == nil {
		tree.Empty = true
		return tree
	}

	now = LocalTime(view, now)
	temp := func(c int) int { return ConvertTemp(c, useFahrenheit) }

	tree.Main = MainInfo{
		Location:    view.Location,
		Date:        now.Format("Monday, January 2, 2006"),
		Icon:        view.Icon,
		Temperature: temp(view.Temperature),
		Conditions:  view.Conditions,
		FeelsLike:   temp(view.FeelsLike),
	}

	description := view.TodaySummary.Description
	if description == "" {
		description = view.Description
	}
	tree.Summary = Summary{
		Description: description,
		High:        temp(view.TodaySummary.TempMax),
		Low:         temp(view.TodaySummary.TempMin),
		PrecipProb:  view.TodaySummary.PrecipProb,
	}

	tree.Hourly = hourlyFrom(view.Hourly, now, temp)

	tree.Daily = make([]DaySlot, 0, len(view.Daily))
	for _, d := range view.Daily {
		tree.Daily = append(tree.Daily, DaySlot{
			Date:          d.Date,
			Conditions:    d.Conditions,
			Icon:          d.Icon,
			High:          temp(d.TempMax),
			Low:           temp(d.TempMin),
			Precipitation: d.Precipitation,
			WindSpeed:     d.WindSpeed,
		})
	}

	tree.Details = detailsFrom(view, temp, tree.Unit)

	return tree
}

// LocalTime переводит now в часовой пояс локации прогноза. Сначала по имени
// зоны, затем по смещению. Без сведений о зоне now возвращается как есть.
func LocalTime(view *models.WeatherView, now time.Time) time.Time {
	if view == nil {
		return now
	}
	if view.Timezone != "" {
		if loc, err := time.LoadLocation(view.Timezone); err == nil {
			return now.In(loc)
		}
	}
	if view.TZOffset != nil {
		offset := int(math.Round(*view.TZOffset * 3600))
		return now.In(time.FixedZone(view.Timezone, offset))
	}
	return now
}

// hourlyFrom оставляет часы начиная с текущего; первый помечается текущим
func hourlyFrom(hours []models.HourEntry, now time.Time, temp func(int) int) []HourSlot {
	currentHour := now.Hour()
	slots := make([]HourSlot, 0, len(hours))

	for _, h := range hours {
		if h.Hour < currentHour {
			continue
		}
		label := h.Time
		if label == "" || label == "N/A" {
			label = fmt.Sprintf("%d:00", h.Hour)
		}
		slots = append(slots, HourSlot{
			Label:         label,
			Current:       len(slots) == 0,
			Temp:          temp(h.Temp),
			Precipitation: h.Precipitation,
			Icon:          h.Icon,
			Conditions:    h.Conditions,
			WindSpeed:     h.WindSpeed,
		})
	}

	return slots
}

func detailsFrom(view *models.WeatherView, temp func(int) int, unit string) []Detail {
	return []Detail{
		{Icon: "wi-humidity", Label: "Humidity", Value: formatNumber(view.Humidity) + "%"},
		{Icon: "wi-strong-wind", Label: "Wind Speed", Value: strconv.Itoa(view.WindSpeed) + " km/h"},
		{Icon: "wi-day-sunny", Label: "UV Index", Value: formatNumber(view.UVIndex)},
		{Icon: "wi-dust", Label: "Visibility", Value: formatNumber(view.Visibility) + " km"},
		{Icon: "wi-cloudy", Label: "Cloud Cover", Value: formatNumber(view.CloudCover) + "%"},
		{Icon: "wi-barometer", Label: "Pressure", Value: formatNumber(view.Pressure) + " mb"},
		{Icon: "wi-raindrop", Label: "Dew Point", Value: fmt.Sprintf("%d°%s", temp(view.DewPoint), unit)},
		{Icon: "wi-sunrise", Label: "Sunrise", Value: view.Sunrise},
		{Icon: "wi-sunset", Label: "Sunset", Value: view.Sunset},
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
