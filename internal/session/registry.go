package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"listora_admin/internal/composer"
	"listora_admin/pkg/media"
)

var ErrSessionNotFound = errors.New("composer session not found")

// Session tek bir aktif sihirbaz oturumudur. SPA tek yazıcıdır; kilit
// sadece yanlışlıkla gelen eşzamanlı istekleri sıralar.
type Session struct {
	ID       string
	Composer *composer.Composer

	mu          sync.Mutex
	lastTouched time.Time
}

// Lock oturumu kilitler ve dokunma zamanını günceller
func (s *Session) Lock() {
	s.mu.Lock()
	s.lastTouched = time.Now()
}

func (s *Session) Unlock() {
	s.mu.Unlock()
}

// Registry aktif oturumların bellek içi kaydıdır
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	staging  media.Store
}

func NewRegistry(ttl time.Duration, staging media.Store) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		staging:  staging,
	}
}

// Open yeni bir oturum açar ve ID'sini atar
func (r *Registry) Open(c *composer.Composer) *Session {
	s := &Session{
		ID:          uuid.NewString(),
		Composer:    c,
		lastTouched: time.Now(),
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get ID ile oturumu bulur
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Close oturumu kapatır, taslağı terk eder ve staging medyasını temizler
func (r *Registry) Close(ctx context.Context, id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	s.Lock()
	keys := s.Composer.Draft().MediaKeys()
	s.Composer.Cancel()
	s.Unlock()

	r.purgeMedia(ctx, id, keys)
	return nil
}

// Remove kapalı (submit edilmiş) oturumu kayıttan düşürür ve staging
// medyasını temizler. Taslak zaten sıfırlanmıştır.
func (r *Registry) Remove(ctx context.Context, id string, mediaKeys []string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()

	r.purgeMedia(ctx, id, mediaKeys)
}

// Count aktif oturum sayısını döner
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// SweepExpired TTL'i aşmış oturumları kapatır ve sayısını döner.
// Cron tarafından periyodik çağrılır.
func (r *Registry) SweepExpired(ctx context.Context) int {
	cutoff := time.Now().Add(-r.ttl)

	r.mu.Lock()
	var expired []*Session
	for id, s := range r.sessions {
		s.mu.Lock()
		stale := s.lastTouched.Before(cutoff)
		s.mu.Unlock()
		if stale {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.Lock()
		keys := s.Composer.Draft().MediaKeys()
		s.Composer.Cancel()
		s.Unlock()
		r.purgeMedia(ctx, s.ID, keys)
	}
	return len(expired)
}

func (r *Registry) purgeMedia(ctx context.Context, sessionID string, keys []string) {
	for _, key := range keys {
		if err := r.staging.Remove(ctx, key); err != nil {
			slog.Warn("could not purge staged media", "session", sessionID, "key", key, "error", err)
		}
	}
}
