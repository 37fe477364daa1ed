package session

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.enc")
	const secret = "correct horse battery staple"

	original := NewStore()
	original.mu.Lock()
	original.state = StateAuthenticated
	original.params = Parameters{
		AccessToken: "at",
		IDToken:     "idt",
		Scope:       "openid internal_login",
		Username:    "alice@carbon.super",
	}
	original.opConfig = OPConfiguration{
		TokenEndpoint:  "https://id.example.com/oauth2/token",
		RevokeEndpoint: "https://id.example.com/oauth2/revoke",
		Initiated:      true,
	}
	original.lastAuthError = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	original.mu.Unlock()

	if err := original.Save(path, secret); err != nil {
		t.Fatalf("Save: %v", err)
	}

	restored := NewStore()
	if err := restored.Load(path, secret); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if restored.State() != StateAuthenticated {
		t.Fatalf("restored state = %v, want authenticated", restored.State())
	}
	if restored.AccessToken() != "at" {
		t.Fatalf("restored access token = %q", restored.AccessToken())
	}
	if restored.TokenEndpoint() != "https://id.example.com/oauth2/token" {
		t.Fatalf("restored token endpoint = %q", restored.TokenEndpoint())
	}
	if !restored.LastAuthError().Equal(original.LastAuthError()) {
		t.Fatalf("restored lastAuthError = %v", restored.LastAuthError())
	}
}

func TestLoadMissingFileIsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.enc")
	s := NewStore()
	if err := s.Load(path, "secret"); err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if s.State() != StateAnonymous {
		t.Fatalf("missing file must leave a fresh store")
	}
}

func TestLoadWrongSecretFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.enc")
	s := NewStore()
	if err := s.Save(path, "right"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := NewStore().Load(path, "wrong"); err == nil {
		t.Fatalf("wrong secret must not load as a fresh session")
	}
}

func TestClearRemovesFileAndToleratesAbsence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.enc")
	s := NewStore()
	if err := s.Save(path, "secret"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := Clear(path); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := Clear(path); err != nil {
		t.Fatalf("Clear on missing file: %v", err)
	}
}
