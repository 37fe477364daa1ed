package httppipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSession struct {
	tokenEndpoint string
	loginScope    bool
}

func (s fakeSession) TokenEndpoint() string { return s.tokenEndpoint }
func (s fakeSession) HasLoginScope() bool   { return s.loginScope }

func TestClassifyRuleOrder(t *testing.T) {
	const tokenEndpoint = "https://id.example.com/oauth2/token"

	cases := []struct {
		name    string
		err     *APIError
		session fakeSession
		want    NavigationIntent
	}{
		{
			name:    "token endpoint 400 terminates the session",
			err:     &APIError{Status: 400, URL: tokenEndpoint},
			session: fakeSession{tokenEndpoint: tokenEndpoint, loginScope: true},
			want:    NavigateLogout,
		},
		{
			name: "token endpoint rule outranks missing login scope",
			err:  &APIError{Status: 400, URL: tokenEndpoint},
			session: fakeSession{
				tokenEndpoint: tokenEndpoint,
				loginScope:    false,
			},
			want: NavigateLogout,
		},
		{
			name:    "400 elsewhere is a domain error",
			err:     &APIError{Status: 400, URL: "https://id.example.com/api/server/v1/applications"},
			session: fakeSession{tokenEndpoint: tokenEndpoint, loginScope: true},
			want:    NavigateNone,
		},
		{
			name:    "missing login scope outranks 401",
			err:     &APIError{Status: 401, URL: "https://id.example.com/scim2/Me"},
			session: fakeSession{tokenEndpoint: tokenEndpoint, loginScope: false},
			want:    NavigateLoginError,
		},
		{
			name:    "missing login scope applies to any status",
			err:     &APIError{Status: 404, URL: "https://id.example.com/scim2/Me"},
			session: fakeSession{tokenEndpoint: tokenEndpoint, loginScope: false},
			want:    NavigateLoginError,
		},
		{
			name:    "401 with login scope logs out",
			err:     &APIError{Status: 401, URL: "https://id.example.com/scim2/Me"},
			session: fakeSession{tokenEndpoint: tokenEndpoint, loginScope: true},
			want:    NavigateLogout,
		},
		{
			name:    "403 with login scope logs out",
			err:     &APIError{Status: 403, URL: "https://id.example.com/scim2/Me"},
			session: fakeSession{tokenEndpoint: tokenEndpoint, loginScope: true},
			want:    NavigateLogout,
		},
		{
			name:    "no response at all logs out",
			err:     &APIError{Status: 0, URL: "https://id.example.com/scim2/Me"},
			session: fakeSession{tokenEndpoint: tokenEndpoint, loginScope: true},
			want:    NavigateLogout,
		},
		{
			name:    "other statuses propagate without navigation",
			err:     &APIError{Status: 409, URL: "https://id.example.com/scim2/Users"},
			session: fakeSession{tokenEndpoint: tokenEndpoint, loginScope: true},
			want:    NavigateNone,
		},
		{
			name:    "400 before discovery never matches the token rule",
			err:     &APIError{Status: 400, URL: "https://id.example.com/oauth2/token"},
			session: fakeSession{tokenEndpoint: "", loginScope: true},
			want:    NavigateNone,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.err, tc.session))
		})
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	session := fakeSession{tokenEndpoint: "https://id.example.com/oauth2/token", loginScope: true}
	err := &APIError{Status: 401, URL: "https://id.example.com/scim2/Me"}

	first := Classify(err, session)
	second := Classify(err, session)

	assert.Equal(t, NavigateLogout, first)
	assert.Equal(t, first, second)
}

func TestClassifyNilInputs(t *testing.T) {
	assert.Equal(t, NavigateNone, Classify(nil, fakeSession{loginScope: true}))
	assert.Equal(t, NavigateNone, Classify(&APIError{Status: 401}, nil))
}
