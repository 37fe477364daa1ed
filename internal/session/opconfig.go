package session

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"cic/identity-portal/internal/httppipe"
)

var ErrWellKnownNotDefined = errors.New("OpenID provider configuration endpoint is not defined.")

// OPConfiguration is the cached OpenID provider discovery result. The
// revoke endpoint is not advertised by the provider; it is derived from
// the token endpoint.
type OPConfiguration struct {
	AuthorizationEndpoint string `json:"authorization_endpoint"`
	TokenEndpoint         string `json:"token_endpoint"`
	EndSessionEndpoint    string `json:"end_session_endpoint"`
	JWKSURI               string `json:"jwks_uri"`
	RevokeEndpoint        string `json:"revoke_endpoint"`
	Issuer                string `json:"issuer"`
	Initiated             bool   `json:"initiated"`
}

// InitOPConfiguration fetches the well-known discovery document and
// caches the provider endpoints. A no-op when already initiated unless
// force is set. This is the only write path for the endpoint cache.
func (s *Store) InitOPConfiguration(ctx context.Context, pipe *httppipe.Client, wellKnownEndpoint string, force bool) error {
	if !force && s.IsOPConfigInitiated() {
		return nil
	}
	if strings.TrimSpace(wellKnownEndpoint) == "" {
		return ErrWellKnownNotDefined
	}

	env, err := pipe.Do(ctx, httppipe.RequestDescriptor{
		Method: http.MethodGet,
		URL:    wellKnownEndpoint,
	}, &httppipe.StatusPolicy{
		Expected: http.StatusOK,
		Message:  "Failed to load OpenID provider configuration from: " + wellKnownEndpoint,
	})
	if err != nil {
		return err
	}

	var doc struct {
		AuthorizationEndpoint string `json:"authorization_endpoint"`
		TokenEndpoint         string `json:"token_endpoint"`
		EndSessionEndpoint    string `json:"end_session_endpoint"`
		JWKSURI               string `json:"jwks_uri"`
		Issuer                string `json:"issuer"`
	}
	if err := env.Decode(&doc); err != nil {
		return err
	}

	s.mu.Lock()
	s.opConfig = OPConfiguration{
		AuthorizationEndpoint: doc.AuthorizationEndpoint,
		TokenEndpoint:         doc.TokenEndpoint,
		EndSessionEndpoint:    doc.EndSessionEndpoint,
		JWKSURI:               doc.JWKSURI,
		RevokeEndpoint:        deriveRevokeEndpoint(doc.TokenEndpoint),
		Issuer:                doc.Issuer,
		Initiated:             true,
	}
	s.mu.Unlock()
	return nil
}

// deriveRevokeEndpoint swaps the trailing "token" path segment for
// "revoke". Identity servers advertise no revocation endpoint in the
// discovery document, so this convention stands in.
func deriveRevokeEndpoint(tokenEndpoint string) string {
	idx := strings.LastIndex(tokenEndpoint, "token")
	if idx < 0 {
		return ""
	}
	return tokenEndpoint[:idx] + "revoke"
}

// ResetOPConfiguration drops the cached endpoints. The next sign-in
// must run discovery again.
func (s *Store) ResetOPConfiguration() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opConfig = OPConfiguration{}
}

func (s *Store) IsOPConfigInitiated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opConfig.Initiated
}

// IsValidOPConfig reports whether the cached configuration still
// belongs to the given tenant. A tenant change invalidates the cache.
func (s *Store) IsValidOPConfig(tenant string) bool {
	if !s.IsOPConfigInitiated() {
		return false
	}
	current := s.Tenant()
	return current == "" || current == tenant
}

func (s *Store) OPConfig() OPConfiguration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opConfig
}

func (s *Store) AuthorizationEndpoint() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opConfig.AuthorizationEndpoint
}

func (s *Store) EndSessionEndpoint() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opConfig.EndSessionEndpoint
}

func (s *Store) RevokeEndpoint() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opConfig.RevokeEndpoint
}

func (s *Store) Issuer() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opConfig.Issuer
}
