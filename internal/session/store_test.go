package session

import "testing"

func TestLifecycleTransitions(t *testing.T) {
	s := NewStore()
	if s.State() != StateAnonymous {
		t.Fatalf("new store state = %v, want anonymous", s.State())
	}

	if err := s.BeginAuthentication(); err != nil {
		t.Fatalf("BeginAuthentication: %v", err)
	}
	if err := s.CompleteAuthentication(Parameters{
		AccessToken: "at",
		IDToken:     "idt",
		Scope:       "openid internal_login",
		Username:    "alice@carbon.super",
	}); err != nil {
		t.Fatalf("CompleteAuthentication: %v", err)
	}
	if s.State() != StateAuthenticated {
		t.Fatalf("state = %v, want authenticated", s.State())
	}

	s.MarkLoggedOut()
	if s.State() != StateLoggedOut {
		t.Fatalf("state = %v, want logged_out", s.State())
	}
	if s.AccessToken() != "" {
		t.Fatalf("logout must clear token material")
	}
	if s.LastAuthError().IsZero() {
		t.Fatalf("logout must record the auth-error timestamp")
	}
}

func TestTerminalStateRequiresFreshDiscovery(t *testing.T) {
	s := NewStore()
	s.MarkLoggedOut()

	if err := s.BeginAuthentication(); err != ErrBadTransition {
		t.Fatalf("BeginAuthentication after logout = %v, want ErrBadTransition", err)
	}

	// A re-initialized provider configuration unlocks the transition.
	s.mu.Lock()
	s.opConfig = OPConfiguration{TokenEndpoint: "https://id.example.com/oauth2/token", Initiated: true}
	s.mu.Unlock()
	if err := s.BeginAuthentication(); err != nil {
		t.Fatalf("BeginAuthentication after rediscovery: %v", err)
	}
}

func TestCompleteAuthenticationOutsideAuthenticating(t *testing.T) {
	s := NewStore()
	if err := s.CompleteAuthentication(Parameters{}); err != ErrBadTransition {
		t.Fatalf("CompleteAuthentication from anonymous = %v, want ErrBadTransition", err)
	}
}

func TestScopeChecks(t *testing.T) {
	s := NewStore()
	_ = s.BeginAuthentication()
	_ = s.CompleteAuthentication(Parameters{Scope: "openid internal_login profile"})

	if !s.HasLoginScope() {
		t.Fatalf("HasLoginScope = false, want true")
	}
	if !s.HasScope("profile") {
		t.Fatalf("HasScope(profile) = false, want true")
	}
	if s.HasScope("internal") {
		t.Fatalf("HasScope must match whole scopes, not substrings")
	}
}

func TestTenantFromUsername(t *testing.T) {
	cases := []struct {
		username string
		want     string
	}{
		{"alice@carbon.super", "carbon.super"},
		{"alice@example.com@tenant.io", "tenant.io"},
		{"alice", ""},
		{"", ""},
	}
	for _, tc := range cases {
		s := NewStore()
		_ = s.BeginAuthentication()
		_ = s.CompleteAuthentication(Parameters{Username: tc.username})
		if got := s.Tenant(); got != tc.want {
			t.Fatalf("Tenant(%q) = %q, want %q", tc.username, got, tc.want)
		}
	}
}
