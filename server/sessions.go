package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"weather-dashboard/dashboard"
	"weather-dashboard/providers"
)

const (
	sessionCookie = "wd_session"
	sessionTTL    = 24 * time.Hour

	// DefaultMaxSessions сверх лимита вытесняется самая давняя сессия
	DefaultMaxSessions = 10000
)

type session struct {
	dash     *dashboard.Dashboard
	lastSeen time.Time
}

// Sessions у каждого браузера своя панель со своим сохранённым прогнозом
type Sessions struct {
	provider providers.Provider
	clock    func() time.Time
	limit    int

	mu       sync.Mutex
	sessions map[string]*session
}

func NewSessions(provider providers.Provider, clock func() time.Time) *Sessions {
	return &Sessions{
		provider: provider,
		clock:    clock,
		limit:    DefaultMaxSessions,
		sessions: make(map[string]*session),
	}
}

// WithLimit задаёт максимальное число сессий
func (s *Sessions) WithLimit(limit int) *Sessions {
	if limit < 1 {
		limit = 1
	}
	s.limit = limit
	return s
}

// Lookup возвращает панель сессии из cookie, новую не создаёт
func (s *Sessions) Lookup(r *http.Request) (*dashboard.Dashboard, bool) {
	now := s.clock()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lookupLocked(r, now)
}

// Get возвращает панель сессии из cookie или создаёт новую
func (s *Sessions) Get(w http.ResponseWriter, r *http.Request) *dashboard.Dashboard {
	now := s.clock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if d, ok := s.lookupLocked(r, now); ok {
		return d
	}

	s.pruneLocked(now)
	for len(s.sessions) >= s.limit {
		s.evictOldestLocked()
	}

	id := uuid.NewString()
	sess := &session{
		dash:     dashboard.New(s.provider).WithClock(s.clock),
		lastSeen: now,
	}
	s.sessions[id] = sess

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return sess.dash
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Sessions) lookupLocked(r *http.Request, now time.Time) (*dashboard.Dashboard, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil, false
	}
	sess, ok := s.sessions[c.Value]
	if !ok {
		return nil, false
	}
	sess.lastSeen = now
	return sess.dash, true
}

func (s *Sessions) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, sess := range s.sessions {
		if oldestID == "" || sess.lastSeen.Before(oldest) {
			oldestID, oldest = id, sess.lastSeen
		}
	}
	delete(s.sessions, oldestID)
}

// pruneLocked удаляет сессии без активности дольше sessionTTL
func (s *Sessions) pruneLocked(now time.Time) {
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > sessionTTL {
			delete(s.sessions, id)
		}
	}
}
