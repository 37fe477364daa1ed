package httppipe

import (
	"encoding/json"
	"net/http"
	"net/url"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeSCIM = "application/scim+json"
	ContentTypeForm = "application/x-www-form-urlencoded"
)

// RequestDescriptor is the declarative form of one backend call:
// method, absolute URL, headers, optional query params and payload.
// Descriptors are built fresh per call and never mutated afterwards.
type RequestDescriptor struct {
	Method string
	URL    string
	Header http.Header
	Params url.Values

	// Body is JSON-encoded, except url.Values (form-encoded) and
	// []byte (sent raw).
	Body any
}

// StatusPolicy is the per-call expected-status convention: when the
// response is 2xx but not the expected code, the call fails with the
// fixed message instead of the decoded payload.
type StatusPolicy struct {
	Expected int
	Message  string
}

// ResponseEnvelope is the normalized successful outcome of a dispatch.
// It is owned by the caller once returned; the pipeline keeps nothing.
type ResponseEnvelope struct {
	Status int
	Header http.Header
	Body   []byte

	// RequestURL is the target the descriptor was sent to, kept for
	// diagnostics.
	RequestURL string
}

// Decode unmarshals the response body into v.
func (e *ResponseEnvelope) Decode(v any) error {
	return json.Unmarshal(e.Body, v)
}

// fullURL joins the descriptor URL with its encoded query parameters.
func (d RequestDescriptor) fullURL() string {
	if len(d.Params) == 0 {
		return d.URL
	}
	sep := "?"
	if parsed, err := url.Parse(d.URL); err == nil && parsed.RawQuery != "" {
		sep = "&"
	}
	return d.URL + sep + d.Params.Encode()
}
