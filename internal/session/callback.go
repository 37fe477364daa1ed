package session

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"
)

// CallbackResult is what the provider redirected back with.
type CallbackResult struct {
	Code             string
	State            string
	Err              string
	ErrorDescription string
}

// CallbackServer is a short-lived localhost listener that catches the
// authorization-code redirect during an interactive sign-in. It serves
// exactly one callback and then closes.
type CallbackServer struct {
	server   *http.Server
	listener net.Listener
	path     string
	state    string
	results  chan CallbackResult
}

// NewCallbackServer binds the listener for the given redirect URI. The
// URI's host decides the bind address and its path the route; the
// expected state rejects responses from stale or forged redirects.
func NewCallbackServer(redirectURI, expectedState string) (*CallbackServer, error) {
	parsed, err := url.Parse(redirectURI)
	if err != nil {
		return nil, err
	}
	listener, err := net.Listen("tcp", parsed.Host)
	if err != nil {
		return nil, err
	}

	cs := &CallbackServer{
		listener: listener,
		path:     parsed.Path,
		state:    expectedState,
		results:  make(chan CallbackResult, 1),
	}

	router := mux.NewRouter()
	router.HandleFunc(cs.path, cs.handleCallback).Methods(http.MethodGet)
	cs.server = &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() { _ = cs.server.Serve(listener) }()
	return cs, nil
}

func (cs *CallbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	result := CallbackResult{
		Code:             query.Get("code"),
		State:            query.Get("state"),
		Err:              query.Get("error"),
		ErrorDescription: query.Get("error_description"),
	}

	if cs.state != "" && result.State != cs.state {
		http.Error(w, "state mismatch", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte("<html><body>You may close this window and return to the portal.</body></html>"))

	select {
	case cs.results <- result:
	default:
		// A second redirect after the first was consumed is ignored.
	}
}

// Addr is the bound listen address, useful when the redirect URI left
// the port to the OS.
func (cs *CallbackServer) Addr() string {
	return cs.listener.Addr().String()
}

// Wait blocks until the provider redirects back or the context ends.
func (cs *CallbackServer) Wait(ctx context.Context) (CallbackResult, error) {
	select {
	case result := <-cs.results:
		if result.Err != "" {
			return result, errors.New(result.Err + ": " + result.ErrorDescription)
		}
		if cs.state != "" && result.State != cs.state {
			return result, ErrStateMismatch
		}
		return result, nil
	case <-ctx.Done():
		return CallbackResult{}, ctx.Err()
	}
}

// Close shuts the listener down.
func (cs *CallbackServer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return cs.server.Shutdown(ctx)
}
