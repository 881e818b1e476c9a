package store

import (
	"path/filepath"
	"testing"
)

func TestBoltStore_SetGetClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.db")

	s, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("OpenBolt: %v", err)
	}
	defer s.Close()

	// Absence is a normal, non-error state.
	got, err := s.Get()
	if err != nil {
		t.Fatalf("Get on empty store: %v", err)
	}
	if got != "" {
		t.Fatalf("empty store returned %q", got)
	}

	if err := s.Set("tok-1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, _ = s.Get(); got != "tok-1" {
		t.Fatalf("Get: got %q, want tok-1", got)
	}

	// Overwrite.
	if err := s.Set("tok-2"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, _ = s.Get(); got != "tok-2" {
		t.Fatalf("Get after overwrite: got %q", got)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got, _ = s.Get(); got != "" {
		t.Fatalf("Get after clear: got %q", got)
	}

	// Clearing again is a no-op.
	if err := s.Clear(); err != nil {
		t.Fatalf("repeated Clear: %v", err)
	}
}

func TestBoltStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.db")

	s, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("OpenBolt: %v", err)
	}
	if err := s.Set("persistent-token"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = OpenBolt(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	got, err := s.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "persistent-token" {
		t.Fatalf("token did not survive reopen: got %q", got)
	}
}
