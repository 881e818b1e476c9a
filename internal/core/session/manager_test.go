package session

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/movaro/console/internal/core/domain"
	"github.com/movaro/console/internal/core/token"
)

type stubStore struct {
	token  string
	setErr error
}

func (s *stubStore) Get() (string, error) { return s.token, nil }
func (s *stubStore) Set(t string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.token = t
	return nil
}
func (s *stubStore) Clear() error {
	s.token = ""
	return nil
}

func issue(t *testing.T, sub, role string, exp time.Time) string {
	t.Helper()
	raw, err := token.NewIssuer("test-secret").Issue(token.Claims{
		SubjectID: sub,
		Role:      role,
		ExpiresAt: exp,
	})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return raw
}

func TestManager_LoginSuccess(t *testing.T) {
	store := &stubStore{}
	m := NewManager(store, zerolog.Nop())

	raw := issue(t, "u1", domain.RoleAdmin, time.Now().Add(time.Hour))
	if err := m.Login(raw); err != nil {
		t.Fatalf("Login: %v", err)
	}

	s := m.Current()
	if !s.Authenticated {
		t.Fatalf("expected authenticated session")
	}
	if s.SubjectID != "u1" || s.Role != domain.RoleAdmin {
		t.Fatalf("unexpected identity: %+v", s)
	}
	if !m.IsAdmin() {
		t.Fatalf("expected IsAdmin")
	}
	if m.Token() != raw {
		t.Fatalf("Token() should return the stored token")
	}
}

func TestManager_LoginGarbage(t *testing.T) {
	store := &stubStore{}
	m := NewManager(store, zerolog.Nop())

	err := m.Login("not-a-token")
	if !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("got %v, want ErrTokenMalformed", err)
	}
	if m.Current().Authenticated {
		t.Fatalf("session must stay anonymous")
	}
	if store.token != "" {
		t.Fatalf("token store must be cleared, holds %q", store.token)
	}
}

func TestManager_LoginExpired(t *testing.T) {
	store := &stubStore{}
	m := NewManager(store, zerolog.Nop())

	err := m.Login(issue(t, "u1", domain.RoleUser, time.Now().Add(-10*time.Second)))
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("got %v, want ErrSessionExpired", err)
	}
	if m.Current().Authenticated {
		t.Fatalf("session must stay anonymous")
	}
	if store.token != "" {
		t.Fatalf("token store must be cleared")
	}
}

func TestManager_ExpiryOnRead(t *testing.T) {
	store := &stubStore{}
	m := NewManager(store, zerolog.Nop())

	if err := m.Login(issue(t, "u1", domain.RoleUser, time.Now().Add(time.Hour))); err != nil {
		t.Fatalf("Login: %v", err)
	}

	// Move the manager's clock past the expiry.
	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	if m.Current().Authenticated {
		t.Fatalf("expired session reported authenticated")
	}
	if store.token != "" {
		t.Fatalf("expiry read must clear the store")
	}
	if m.Token() != "" {
		t.Fatalf("Token() must be empty after expiry")
	}
}

func TestManager_Logout(t *testing.T) {
	store := &stubStore{}
	m := NewManager(store, zerolog.Nop())

	if err := m.Login(issue(t, "u1", domain.RoleAdmin, time.Now().Add(time.Hour))); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := m.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if m.Current().Authenticated {
		t.Fatalf("expected anonymous after logout")
	}
	if store.token != "" {
		t.Fatalf("logout must clear the store")
	}

	// Idempotent on an already-anonymous session.
	if err := m.Logout(); err != nil {
		t.Fatalf("repeated Logout: %v", err)
	}
}

func TestNewManager_InitialState(t *testing.T) {
	t.Run("valid stored token", func(t *testing.T) {
		store := &stubStore{token: issue(t, "u9", domain.RoleUser, time.Now().Add(time.Hour))}
		m := NewManager(store, zerolog.Nop())
		s := m.Current()
		if !s.Authenticated || s.SubjectID != "u9" {
			t.Fatalf("expected authenticated u9, got %+v", s)
		}
	})

	t.Run("malformed stored token", func(t *testing.T) {
		store := &stubStore{token: "garbage"}
		m := NewManager(store, zerolog.Nop())
		if m.Current().Authenticated {
			t.Fatalf("expected anonymous")
		}
		if store.token != "" {
			t.Fatalf("malformed token must be cleared at startup")
		}
	})

	t.Run("expired stored token", func(t *testing.T) {
		store := &stubStore{token: issue(t, "u9", domain.RoleUser, time.Now().Add(-time.Minute))}
		m := NewManager(store, zerolog.Nop())
		if m.Current().Authenticated {
			t.Fatalf("expected anonymous")
		}
		if store.token != "" {
			t.Fatalf("expired token must be cleared at startup")
		}
	})

	t.Run("empty store", func(t *testing.T) {
		m := NewManager(&stubStore{}, zerolog.Nop())
		if m.Current().Authenticated {
			t.Fatalf("expected anonymous")
		}
	})
}

func TestManager_LoginStoreError(t *testing.T) {
	store := &stubStore{setErr: errors.New("disk full")}
	m := NewManager(store, zerolog.Nop())

	if err := m.Login(issue(t, "u1", domain.RoleUser, time.Now().Add(time.Hour))); err == nil {
		t.Fatalf("expected store error to propagate")
	}
	if m.Current().Authenticated {
		t.Fatalf("session must stay anonymous when the store write fails")
	}
}
