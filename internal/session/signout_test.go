package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"cic/identity-portal/internal/httppipe"
)

func TestSignOutURL(t *testing.T) {
	store := authenticatedStore(t, OPConfiguration{
		EndSessionEndpoint: "https://id.example.com/oidc/logout",
		Initiated:          true,
	})
	_ = store.BeginAuthentication()
	_ = store.CompleteAuthentication(Parameters{IDToken: "idt", Scope: LoginScope})

	raw, err := store.SignOutURL("https://localhost:9000/login")
	if err != nil {
		t.Fatalf("SignOutURL: %v", err)
	}
	parsed, _ := url.Parse(raw)
	if got := parsed.Query().Get("id_token_hint"); got != "idt" {
		t.Fatalf("id_token_hint = %q", got)
	}
	if got := parsed.Query().Get("post_logout_redirect_uri"); got != "https://localhost:9000/login" {
		t.Fatalf("post_logout_redirect_uri = %q", got)
	}
}

func TestSignOutURLErrors(t *testing.T) {
	store := NewStore()
	if _, err := store.SignOutURL("https://localhost:9000/login"); err != ErrInvalidLogoutEndpoint {
		t.Fatalf("err = %v, want ErrInvalidLogoutEndpoint", err)
	}

	store = authenticatedStore(t, OPConfiguration{
		EndSessionEndpoint: "https://id.example.com/oidc/logout",
		Initiated:          true,
	})
	if _, err := store.SignOutURL("https://localhost:9000/login"); err != ErrInvalidIDToken {
		t.Fatalf("err = %v, want ErrInvalidIDToken", err)
	}
}

func TestRevokeTokenPostsForm(t *testing.T) {
	var gotForm url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		gotForm = r.PostForm
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := authenticatedStore(t, OPConfiguration{RevokeEndpoint: srv.URL + "/oauth2/revoke", Initiated: true})
	_ = store.BeginAuthentication()
	_ = store.CompleteAuthentication(Parameters{AccessToken: "at", Scope: LoginScope})

	pipe := httppipe.New(store)
	if err := store.RevokeToken(context.Background(), pipe, "USER_PORTAL"); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}
	for key, want := range map[string]string{
		"token":           "at",
		"token_type_hint": "access_token",
		"client_id":       "USER_PORTAL",
	} {
		if got := gotForm.Get(key); got != want {
			t.Fatalf("form[%s] = %q, want %q", key, got, want)
		}
	}
}

func TestRevokeTokenWithoutSession(t *testing.T) {
	store := authenticatedStore(t, OPConfiguration{RevokeEndpoint: "https://id.example.com/oauth2/revoke", Initiated: true})
	pipe := httppipe.New(store)
	if err := store.RevokeToken(context.Background(), pipe, "USER_PORTAL"); err != ErrNotAuthenticated {
		t.Fatalf("err = %v, want ErrNotAuthenticated", err)
	}
}
