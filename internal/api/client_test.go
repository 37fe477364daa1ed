package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cic/identity-portal/internal/config"
	"cic/identity-portal/internal/httppipe"
)

type staticTokens string

func (s staticTokens) AccessToken() string { return string(s) }

type testSession struct{}

func (testSession) TokenEndpoint() string { return "" }
func (testSession) HasLoginScope() bool   { return true }

// newTestClient points every endpoint at the given test server.
func newTestClient(t *testing.T, srv *httptest.Server, opts ...httppipe.Option) *Client {
	t.Helper()
	cfg := config.Default()
	cfg.ServerHost = srv.URL
	cfg.ClientHost = "https://localhost:9000"
	endpoints := config.ResolveEndpoints(cfg)
	pipe := httppipe.New(testSession{}, opts...)
	return NewClient(pipe, endpoints, cfg.ClientHost, staticTokens("test-token"))
}

func TestDescriptorCarriesStandardHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	if _, err := client.GetApplication(context.Background(), "app-1"); err != nil {
		t.Fatalf("GetApplication: %v", err)
	}

	if got.Get("Authorization") != "Bearer test-token" {
		t.Fatalf("Authorization = %q", got.Get("Authorization"))
	}
	if got.Get("Access-Control-Allow-Origin") != "https://localhost:9000" {
		t.Fatalf("Access-Control-Allow-Origin = %q", got.Get("Access-Control-Allow-Origin"))
	}
	if got.Get("Accept") != "*/*" {
		t.Fatalf("Accept = %q", got.Get("Accept"))
	}
	if got.Get("Content-Type") != httppipe.ContentTypeJSON {
		t.Fatalf("Content-Type = %q", got.Get("Content-Type"))
	}
}
