package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weather-dashboard/models"
)

const (
	// горизонт прогноза фиксирован
	forecastPeriod = "next7days"
	maxHours       = 24
	maxDays        = 7
)

type VisualCrossingProvider struct {
	apiKey  string
	client  *http.Client
	baseURL string

	// Debug включает логирование сырого ответа
	Debug bool
}

// NewVisualCrossingProvider timeout 0 оставляет поведение транспорта по умолчанию
func NewVisualCrossingProvider(apiKey, baseURL string, timeout time.Duration) *VisualCrossingProvider {
	return &VisualCrossingProvider{
		apiKey: apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (p *VisualCrossingProvider) Name() string {
	return "VisualCrossing"
}

// GetForecast запрашивает прогноз на 7 дней в метрических единицах и нормализует его.
// Пустая строка локации не проверяется, её отклонит сам сервис.
func (p *VisualCrossingProvider) GetForecast(ctx context.Context, location string) (*models.WeatherView, error) {
	query := url.Values{}
	query.Set("unitGroup", "metric")
	query.Set("key", p.apiKey)
	query.Set("contentType", "json")

	reqURL := fmt.Sprintf("%s/%s/%s?%s", p.baseURL, url.PathEscape(location), forecastPeriod, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка HTTP запроса: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, &AuthError{Provider: p.Name()}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Provider: p.Name(), StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	var raw timelineResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &MalformedDataError{Reason: "ошибка парсинга JSON", Err: err}
	}

	if p.Debug {
		log.Printf("Получены данные о погоде: %s (%d байт)", raw.ResolvedAddress, len(body))
	}

	return normalize(&raw)
}

var _ Provider = (*VisualCrossingProvider)(nil)
