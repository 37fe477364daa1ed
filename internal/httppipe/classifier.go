package httppipe

import "net/http"

// NavigationIntent is the classifier's verdict: which page, if any, the
// shell must move the user to. Keeping the decision a value (rather
// than performing the redirect inline) leaves the rules testable
// without a UI shell.
type NavigationIntent int

const (
	NavigateNone NavigationIntent = iota
	NavigateLogout
	NavigateLoginError
)

func (i NavigationIntent) String() string {
	switch i {
	case NavigateLogout:
		return "logout"
	case NavigateLoginError:
		return "login-error"
	default:
		return "none"
	}
}

// SessionReader is the slice of session state the classifier needs. It
// is read-only; session writes happen only at sign-in/out boundaries.
type SessionReader interface {
	// TokenEndpoint returns the cached OIDC token endpoint, or ""
	// before discovery.
	TokenEndpoint() string

	// HasLoginScope reports whether the current session carries the
	// baseline login scope.
	HasLoginScope() bool
}

// NavigateFunc performs the navigation side effect decided by the
// classifier.
type NavigateFunc func(NavigationIntent)

// Classify decides the session side effect for a failed request. The
// error itself always propagates to the caller unchanged.
//
// The rule order is contractual: a token-endpoint failure outranks the
// scope check, and the scope check outranks the generic 401/403 rule,
// so an unauthorized response from a user without the login scope is
// reported as a login error rather than a silent logout.
func Classify(err *APIError, session SessionReader) NavigationIntent {
	if err == nil || session == nil {
		return NavigateNone
	}

	// A 400 from the token endpoint means the token-bound session
	// timed out and must be re-established.
	if err.HasResponse() && err.Status == http.StatusBadRequest {
		if endpoint := session.TokenEndpoint(); endpoint != "" && err.URL == endpoint {
			return NavigateLogout
		}
	}

	if !session.HasLoginScope() {
		return NavigateLoginError
	}

	// Some transports report 401 as a missing response, so the two are
	// treated alike here.
	if !err.HasResponse() || err.Status == http.StatusUnauthorized || err.Status == http.StatusForbidden {
		return NavigateLogout
	}

	return NavigateNone
}
