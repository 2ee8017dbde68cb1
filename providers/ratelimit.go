package providers

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"weather-dashboard/models"
)

// RateLimitedProvider ограничивает частоту запросов к источнику
type RateLimitedProvider struct {
	provider Provider
	limiter  *rate.Limiter
	name     string
}

// NewRateLimitedProvider rps - запросов в секунду (может быть дробным), burst - размер всплеска
func NewRateLimitedProvider(provider Provider, rps float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		name:     fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

func (r *RateLimitedProvider) Name() string {
	return r.name
}

// GetForecast ждёт разрешения лимитера или отмены контекста
func (r *RateLimitedProvider) GetForecast(ctx context.Context, location string) (*models.WeatherView, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("ожидание лимита прервано: %w", err)
	}
	return r.provider.GetForecast(ctx, location)
}

var _ Provider = (*RateLimitedProvider)(nil)
