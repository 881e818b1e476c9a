// Package session holds the console's single source of truth for "who is
// the current user, and are they logged in". Identity is derived entirely
// from the stored bearer token and rebuilt whenever the token changes.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/movaro/console/internal/core/domain"
	"github.com/movaro/console/internal/core/ports"
	"github.com/movaro/console/internal/core/token"
)

// Session is a point-in-time snapshot of the current identity. When
// Authenticated is false every derived field is zero.
type Session struct {
	Authenticated bool
	SubjectID     string
	Role          string
	ExpiresAt     time.Time
}

// IsAdmin reports whether the session is authenticated with the admin role.
func (s Session) IsAdmin() bool {
	return s.Authenticated && s.Role == domain.RoleAdmin
}

// Manager owns the session state machine. It is the sole writer of the
// token store: Login and Logout mutate it, and any read that finds an
// expired token clears it before reporting Anonymous. All other components
// consume sessions read-only.
type Manager struct {
	mu     sync.Mutex
	store  ports.TokenStore
	claims *token.Claims // nil = Anonymous
	log    zerolog.Logger

	now func() time.Time
}

// NewManager builds a Manager over the given store and derives the initial
// state from whatever token it holds. A missing, malformed, or expired
// token leaves the manager Anonymous and the store cleared.
func NewManager(store ports.TokenStore, log zerolog.Logger) *Manager {
	m := &Manager{store: store, log: log, now: time.Now}

	raw, err := store.Get()
	if err != nil {
		log.Warn().Err(err).Msg("token store unreadable, starting anonymous")
		return m
	}
	if raw == "" {
		return m
	}

	claims, err := token.Decode(raw)
	if err != nil {
		log.Debug().Msg("stored token undecodable, clearing")
		m.clearLocked()
		return m
	}
	if claims.Expired(m.now()) {
		log.Debug().Msg("stored token expired, clearing")
		m.clearLocked()
		return m
	}

	m.claims = &claims
	return m
}

// Login stores the raw token and derives the new identity from it. A token
// that cannot be decoded, or that is already expired, is never held: the
// store is cleared, the session stays Anonymous, and the decode/expiry
// error is returned for the caller to swallow.
func (m *Manager) Login(raw string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Set(raw); err != nil {
		return err
	}

	claims, err := token.Decode(raw)
	if err != nil {
		m.clearLocked()
		return err
	}
	if claims.Expired(m.now()) {
		m.clearLocked()
		return domain.ErrSessionExpired
	}

	m.claims = &claims
	m.log.Info().Str("subject", claims.SubjectID).Str("role", claims.Role).Msg("session established")
	return nil
}

// Logout clears the token store and transitions to Anonymous. Idempotent;
// a store error is reported but the in-memory state is dropped regardless.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.claims = nil
	return m.store.Clear()
}

// Current returns the session as of now. A session whose expiry has passed
// is demoted to Anonymous and the store is cleared before returning; stale
// sessions are never reported as authenticated.
func (m *Manager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.checkLocked() {
		return Session{}
	}
	return Session{
		Authenticated: true,
		SubjectID:     m.claims.SubjectID,
		Role:          m.claims.Role,
		ExpiresAt:     m.claims.ExpiresAt,
	}
}

// IsAdmin reports whether the current session is an authenticated admin.
func (m *Manager) IsAdmin() bool {
	return m.Current().IsAdmin()
}

// Token returns the stored bearer token for outgoing requests, or "" when
// the session is Anonymous. The expiry check applies here too, so the HTTP
// layer can never attach a token the session model considers dead.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.checkLocked() {
		return ""
	}
	raw, err := m.store.Get()
	if err != nil {
		return ""
	}
	return raw
}

// checkLocked re-evaluates expiry and reports whether the session is still
// authenticated. Callers must hold mu.
func (m *Manager) checkLocked() bool {
	if m.claims == nil {
		return false
	}
	if m.claims.Expired(m.now()) {
		m.log.Debug().Str("subject", m.claims.SubjectID).Msg("session expired")
		m.clearLocked()
		return false
	}
	return true
}

// clearLocked drops the identity and empties the store. Callers must hold mu.
func (m *Manager) clearLocked() {
	m.claims = nil
	if err := m.store.Clear(); err != nil && !errors.Is(err, domain.ErrNotFound) {
		m.log.Warn().Err(err).Msg("failed to clear token store")
	}
}
