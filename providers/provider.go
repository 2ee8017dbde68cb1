package providers

import (
	"context"
	"log"

	"weather-dashboard/models"
)

// Provider интерфейс для источников прогноза
type Provider interface {
	Name() string
	GetForecast(ctx context.Context, location string) (*models.WeatherView, error)
}

// FetchOrAbsent запрашивает прогноз и при любой ошибке пишет её в лог и возвращает nil.
// Для вызывающих, которым не важна причина отказа.
func FetchOrAbsent(ctx context.Context, p Provider, location string) *models.WeatherView {
	view, err := p.GetForecast(ctx, location)
	if err != nil {
		log.Printf("Ошибка получения прогноза (%s) для %q: %v", p.Name(), location, err)
		return nil
	}
	return view
}
