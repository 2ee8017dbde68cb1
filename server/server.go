package server

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"weather-dashboard/dashboard"
	"weather-dashboard/models"
	"weather-dashboard/providers"
	"weather-dashboard/render"
)

//go:embed page.html
var pageShell []byte

// Server HTTP: страница панели и JSON API
type Server struct {
	provider providers.Provider
	sessions *Sessions
	clock    func() time.Time
	mux      *http.ServeMux
}

func NewServer(provider providers.Provider) *Server {
	return NewServerWithClock(provider, time.Now)
}

// NewServerWithClock clock используется для рендеринга почасового прогноза и даты
func NewServerWithClock(provider providers.Provider, clock func() time.Time) *Server {
	s := &Server{
		provider: provider,
		sessions: NewSessions(provider, clock),
		clock:    clock,
		mux:      http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) Router() http.Handler { return s.mux }

func (s *Server) routes() {
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/weather", s.handleSubmit)
	s.mux.HandleFunc("/unit", s.handleToggle)

	s.mux.HandleFunc("/api/weather", s.handleAPIWeather)
	s.mux.HandleFunc("/api/health", s.handleHealth)
}

// GET /: страница с сохранённым прогнозом сессии, если он есть.
// Сессия здесь не создаётся, только при отправке форм.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	d, ok := s.sessions.Lookup(r)
	if !ok {
		s.writePage(w, dashboard.PageState{Tree: render.Render(nil, false, s.clock())})
		return
	}

	location := ""
	if view, ok := d.Current(); ok {
		location = view.Location
	}
	s.writePage(w, dashboard.PageState{
		Tree:       d.View(),
		Fahrenheit: d.Fahrenheit(),
		Location:   location,
	})
}

// POST /weather: отправка формы с локацией
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	d := s.sessions.Get(w, r)
	location := r.FormValue("location")

	tree, err := d.Submit(r.Context(), location)
	if err != nil {
		// остаётся прежний прогноз
		s.writePage(w, dashboard.PageState{
			Tree:       d.View(),
			Fahrenheit: d.Fahrenheit(),
			Location:   location,
			Notice:     noticeFor(err),
		})
		return
	}

	s.writePage(w, dashboard.PageState{
		Tree:       tree,
		Fahrenheit: d.Fahrenheit(),
		Location:   location,
	})
}

// POST /unit: переключение единиц, только перерисовка без запроса к источнику
func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	d := s.sessions.Get(w, r)
	fahrenheit := r.FormValue("fahrenheit") == "on"

	tree, _ := d.Toggle(fahrenheit)

	location := ""
	if view, ok := d.Current(); ok {
		location = view.Location
	}
	s.writePage(w, dashboard.PageState{
		Tree:       tree,
		Fahrenheit: fahrenheit,
		Location:   location,
	})
}

func (s *Server) writePage(w http.ResponseWriter, state dashboard.PageState) {
	page, err := dashboard.Mount(pageShell, state)
	if err != nil {
		log.Printf("Ошибка сборки страницы: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// GET /api/weather?location=...: нормализованный прогноз в JSON
func (s *Server) handleAPIWeather(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	// пустую локацию не проверяем, её отклонит источник
	location := r.URL.Query().Get("location")

	view, err := s.provider.GetForecast(r.Context(), location)
	if err != nil {
		log.Printf("Ошибка получения прогноза для %q: %v", location, err)
		w.WriteHeader(apiStatus(err))
		json.NewEncoder(w).Encode(models.ErrorResponse{
			Error:   noticeFor(err),
			Kind:    providers.ErrorKind(err),
			Details: err.Error(),
		})
		return
	}

	json.NewEncoder(w).Encode(view)
}

// GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"timestamp": s.clock().Format(time.RFC3339),
		"provider":  s.provider.Name(),
		"sessions":  s.sessions.Len(),
	})
}

// noticeFor текст для пользователя по виду ошибки
func noticeFor(err error) string {
	var fetchErr *providers.FetchError

	switch providers.ErrorKind(err) {
	case providers.KindAuth:
		return "The weather service rejected the API key."
	case providers.KindFetch:
		if errors.As(err, &fetchErr) {
			return fmt.Sprintf("Weather data not found (status %d).", fetchErr.StatusCode)
		}
		return "Weather data not found."
	case providers.KindMalformed:
		return "The weather service returned unexpected data."
	default:
		return "Could not reach the weather service."
	}
}

func apiStatus(err error) int {
	var fetchErr *providers.FetchError
	if errors.As(err, &fetchErr) && fetchErr.StatusCode >= 400 && fetchErr.StatusCode < 500 {
		return http.StatusNotFound
	}
	if providers.ErrorKind(err) == providers.KindCanceled {
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}
