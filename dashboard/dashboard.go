// Package dashboard владеет жизненным циклом страницы: хранит последний
// успешный прогноз и перерисовывает его при смене единиц без запроса к сети.
package dashboard

import (
	"context"
	"log"
	"sync"
	"time"

	"weather-dashboard/models"
	"weather-dashboard/providers"
	"weather-dashboard/render"
)

type Dashboard struct {
	provider providers.Provider
	clock    func() time.Time

	mu         sync.RWMutex
	current    *models.WeatherView
	fahrenheit bool
	lastErr    error
}

func New(provider providers.Provider) *Dashboard {
	return &Dashboard{
		provider: provider,
		clock:    time.Now,
	}
}

// WithClock подменяет источник времени для рендеринга
func (d *Dashboard) WithClock(clock func() time.Time) *Dashboard {
	d.clock = clock
	return d
}

// Submit запрашивает прогноз для локации. При успехе результат заменяет
// сохранённый и рисуется в текущих единицах. При ошибке сохранённый
// прогноз не трогается, ошибка логируется и возвращается вызывающему.
//
// Параллельные Submit не упорядочиваются: сохраняется тот ответ, который
// пришёл последним.
func (d *Dashboard) Submit(ctx context.Context, location string) (render.DisplayTree, error) {
	view, err := d.provider.GetForecast(ctx, location)
	if err != nil {
		log.Printf("Ошибка получения прогноза для %q: %v", location, err)

		d.mu.Lock()
		d.lastErr = err
		d.mu.Unlock()
		return render.DisplayTree{}, err
	}

	d.mu.Lock()
	d.current = view
	d.lastErr = nil
	fahrenheit := d.fahrenheit
	d.mu.Unlock()

	return render.Render(view, fahrenheit, d.clock()), nil
}

// Toggle меняет единицы и перерисовывает сохранённый прогноз.
// false если прогноза ещё нет.
func (d *Dashboard) Toggle(useFahrenheit bool) (render.DisplayTree, bool) {
	d.mu.Lock()
	d.fahrenheit = useFahrenheit
	view := d.current
	d.mu.Unlock()

	if view == nil {
		return render.Render(nil, useFahrenheit, d.clock()), false
	}
	return render.Render(view, useFahrenheit, d.clock()), true
}

// View текущее дерево отображения
func (d *Dashboard) View() render.DisplayTree {
	d.mu.RLock()
	view, fahrenheit := d.current, d.fahrenheit
	d.mu.RUnlock()

	return render.Render(view, fahrenheit, d.clock())
}

func (d *Dashboard) Current() (*models.WeatherView, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.current, d.current != nil
}

func (d *Dashboard) Fahrenheit() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.fahrenheit
}

// LastError ошибка последнего Submit, nil после успешного
func (d *Dashboard) LastError() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lastErr
}
