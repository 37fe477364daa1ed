// Package session holds the authenticated user's state for the portal
// process: token material, the cached OpenID provider configuration and
// the lifecycle state machine the error classifier drives.
package session

import (
	"errors"
	"strings"
	"sync"
	"time"
)

// LoginScope is the baseline permission every portal user must carry.
// A session without it is routed to the login-error page regardless of
// what the server answered.
const LoginScope = "internal_login"

var (
	ErrNotAuthenticated = errors.New("no authenticated session")
	ErrBadTransition    = errors.New("invalid session state transition")
)

// State is the session lifecycle position. LoggedOut and LoginError are
// terminal: leaving them requires a fresh provider discovery.
type State int

const (
	StateAnonymous State = iota
	StateAuthenticating
	StateAuthenticated
	StateLoggedOut
	StateLoginError
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	case StateLoggedOut:
		return "logged_out"
	case StateLoginError:
		return "login_error"
	default:
		return "unknown"
	}
}

func (s State) terminal() bool {
	return s == StateLoggedOut || s == StateLoginError
}

// Parameters is the per-session material captured from a token
// response. Scope is the raw space-separated string as issued.
type Parameters struct {
	AccessToken  string `json:"access_token"`
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Scope        string `json:"scope"`
	Username     string `json:"username"`
	DisplayName  string `json:"display_name,omitempty"`
	Email        string `json:"email,omitempty"`
}

// Store is the process-wide session context. Reads happen from many
// concurrent calls; writes only at session-boundary events (sign-in,
// sign-out, discovery), so a single RWMutex is enough.
type Store struct {
	mu            sync.RWMutex
	state         State
	params        Parameters
	opConfig      OPConfiguration
	lastAuthError time.Time
}

func NewStore() *Store {
	return &Store{state: StateAnonymous}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// BeginAuthentication moves into the authenticating state. From a
// terminal state this requires the provider configuration to have been
// re-initialized first.
func (s *Store) BeginAuthentication() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.terminal() && !s.opConfig.Initiated {
		return ErrBadTransition
	}
	s.state = StateAuthenticating
	s.params = Parameters{}
	return nil
}

// CompleteAuthentication stores the token material and marks the
// session authenticated. Only valid while authenticating.
func (s *Store) CompleteAuthentication(params Parameters) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAuthenticating {
		return ErrBadTransition
	}
	s.state = StateAuthenticated
	s.params = params
	return nil
}

// MarkLoggedOut clears token material and enters the terminal
// logged-out state. The provider configuration is reset too, so a new
// sign-in must rediscover it.
func (s *Store) MarkLoggedOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateLoggedOut
	s.params = Parameters{}
	s.opConfig = OPConfiguration{}
	s.lastAuthError = time.Now()
}

// MarkLoginError enters the terminal login-error state. Token material
// is kept so the failure can be inspected; the next sign-in attempt
// still needs fresh discovery.
func (s *Store) MarkLoginError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateLoginError
	s.opConfig.Initiated = false
	s.lastAuthError = time.Now()
}

// LastAuthError reports when the session last entered a terminal
// state. Zero when it never has.
func (s *Store) LastAuthError() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastAuthError
}

func (s *Store) Parameters() Parameters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params
}

func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params.AccessToken
}

func (s *Store) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params.Username
}

func (s *Store) DisplayName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params.DisplayName
}

// Tenant derives the tenant domain from the username. Empty when the
// username carries no domain part.
func (s *Store) Tenant() string {
	s.mu.RLock()
	username := s.params.Username
	s.mu.RUnlock()
	parts := strings.Split(username, "@")
	if len(parts) > 1 {
		return parts[len(parts)-1]
	}
	return ""
}

// HasScope reports whether the issued scope string contains the given
// scope. The scope string is space separated per RFC 6749.
func (s *Store) HasScope(scope string) bool {
	s.mu.RLock()
	raw := s.params.Scope
	s.mu.RUnlock()
	for _, issued := range strings.Fields(raw) {
		if issued == scope {
			return true
		}
	}
	return false
}

func (s *Store) HasLoginScope() bool {
	return s.HasScope(LoginScope)
}

// TokenEndpoint exposes the cached token endpoint for the error
// classifier. Empty before discovery.
func (s *Store) TokenEndpoint() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opConfig.TokenEndpoint
}
