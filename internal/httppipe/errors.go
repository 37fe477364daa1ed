package httppipe

import (
	"encoding/json"
	"fmt"
)

// genericErrorMessage is shown when the server's error body carries no
// usable description.
const genericErrorMessage = "An error occurred while contacting the identity server."

// APIError is every failed dispatch outcome: transport failures
// (Status 0, no response received) and non-2xx responses alike. The
// classifier reads it; callers display Message/Description.
type APIError struct {
	// Status is the HTTP status of the response, or 0 when no
	// response was received at all.
	Status int

	// URL is the target of the failing request.
	URL string

	Message     string
	Description string
	TraceID     string

	cause error
}

func (e *APIError) Error() string {
	switch {
	case e.Status == 0 && e.cause != nil:
		return fmt.Sprintf("request to %s failed: %v", e.URL, e.cause)
	case e.Description != "":
		return fmt.Sprintf("%s (status %d): %s", e.Message, e.Status, e.Description)
	default:
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// HasResponse reports whether the server answered at all. Transport and
// CORS-style failures are indistinguishable from a missing response.
func (e *APIError) HasResponse() bool {
	return e.Status != 0
}

// errorBody covers both the management-API error shape
// (code/message/description/traceId) and the SCIM shape (detail/status).
type errorBody struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	Description string `json:"description"`
	Detail      string `json:"detail"`
	TraceID     string `json:"traceId"`
}

// decodeAPIError maps a non-2xx envelope onto an APIError, preferring
// description, then detail, then the generic message.
func decodeAPIError(env *ResponseEnvelope) *APIError {
	apiErr := &APIError{
		Status:  env.Status,
		URL:     env.RequestURL,
		Message: genericErrorMessage,
	}
	var body errorBody
	if err := json.Unmarshal(env.Body, &body); err != nil {
		return apiErr
	}
	if body.Message != "" {
		apiErr.Message = body.Message
	}
	switch {
	case body.Description != "":
		apiErr.Description = body.Description
	case body.Detail != "":
		apiErr.Description = body.Detail
	}
	apiErr.TraceID = body.TraceID
	return apiErr
}

// statusMismatchError is the call-site convention for 2xx responses
// that are not the expected code. These never pass through the
// classifier since no transport error occurred.
func statusMismatchError(env *ResponseEnvelope, policy *StatusPolicy) *APIError {
	return &APIError{
		Status:  env.Status,
		URL:     env.RequestURL,
		Message: policy.Message,
	}
}
