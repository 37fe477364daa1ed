package session

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"cic/identity-portal/internal/httppipe"
)

var (
	ErrInvalidLogoutEndpoint = errors.New("Invalid logout endpoint found.")
	ErrInvalidIDToken        = errors.New("Invalid id_token found.")
)

// SignOutURL builds the RP-initiated logout redirect for the cached
// end-session endpoint, carrying the id_token hint and the post-logout
// return address.
func (s *Store) SignOutURL(redirectURI string) (string, error) {
	endpoint := s.EndSessionEndpoint()
	if strings.TrimSpace(endpoint) == "" {
		return "", ErrInvalidLogoutEndpoint
	}
	idToken := s.Parameters().IDToken
	if strings.TrimSpace(idToken) == "" {
		return "", ErrInvalidIDToken
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", ErrInvalidLogoutEndpoint
	}
	query := parsed.Query()
	query.Set("id_token_hint", idToken)
	query.Set("post_logout_redirect_uri", redirectURI)
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

// RevokeToken revokes the current access token at the derived revoke
// endpoint. Clearing local state is the caller's job; revocation only
// invalidates the server side.
func (s *Store) RevokeToken(ctx context.Context, pipe *httppipe.Client, clientID string) error {
	endpoint := s.RevokeEndpoint()
	if endpoint == "" {
		return ErrWellKnownNotDefined
	}
	token := s.AccessToken()
	if token == "" {
		return ErrNotAuthenticated
	}

	form := url.Values{}
	form.Set("token", token)
	form.Set("token_type_hint", "access_token")
	form.Set("client_id", clientID)

	_, err := pipe.Do(ctx, httppipe.RequestDescriptor{
		Method: http.MethodPost,
		URL:    endpoint,
		Body:   form,
	}, &httppipe.StatusPolicy{
		Expected: http.StatusOK,
		Message:  "Failed to revoke the access token.",
	})
	return err
}
