package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromPathMergesFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.yaml")
	content := []byte(`portal:
  serverHost: https://id.example.com
  clientId: ADMIN_PORTAL
  logoutPath: /signout
  rateLimit:
    enabled: true
    rps: 10
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(envClientID, "USER_PORTAL")
	t.Setenv(envClientHost, "https://portal.example.com")

	cfg := LoadFromPath(path)

	if cfg.ServerHost != "https://id.example.com" {
		t.Fatalf("server host = %q", cfg.ServerHost)
	}
	if cfg.ClientID != "USER_PORTAL" {
		t.Fatalf("env override lost, client id = %q", cfg.ClientID)
	}
	if cfg.ClientHost != "https://portal.example.com" {
		t.Fatalf("client host = %q", cfg.ClientHost)
	}
	if cfg.LogoutPath != "/signout" {
		t.Fatalf("logout path = %q", cfg.LogoutPath)
	}
	if !cfg.RateLimit.Enabled || cfg.RateLimit.RPS != 10 || cfg.RateLimit.Burst != 60 {
		t.Fatalf("rate limit = %+v", cfg.RateLimit)
	}
}

func TestLoadFromPathMissingFileKeepsDefaults(t *testing.T) {
	cfg := LoadFromPath(filepath.Join(t.TempDir(), "absent.yaml"))
	if cfg.LoginErrorPath != "/login-error" {
		t.Fatalf("login error path = %q", cfg.LoginErrorPath)
	}
	if cfg.LogoutPath != "/logout" {
		t.Fatalf("logout path = %q", cfg.LogoutPath)
	}
}

func TestResolveEndpointsTrimsTrailingSlash(t *testing.T) {
	cfg := Default()
	cfg.ServerHost = "https://id.example.com/"

	eps := ResolveEndpoints(cfg)

	if eps.Applications != "https://id.example.com/api/server/v1/applications" {
		t.Fatalf("applications endpoint = %q", eps.Applications)
	}
	if eps.Me != "https://id.example.com/scim2/Me" {
		t.Fatalf("me endpoint = %q", eps.Me)
	}
	if eps.WellKnown != "https://id.example.com/oauth2/token/.well-known/openid-configuration" {
		t.Fatalf("well-known endpoint = %q", eps.WellKnown)
	}
}
