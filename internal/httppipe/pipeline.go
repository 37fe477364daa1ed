// Package httppipe is the session-aware dispatch pipeline every
// backend call goes through: one central send point with paired
// start/finish hooks, uniform error decoding and a classifier that
// turns auth failures into navigation intents.
package httppipe

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"cic/identity-portal/internal/platform/privacylog"
)

// maxResponseBytes caps how much of a response body is buffered.
const maxResponseBytes int64 = 4 << 20 // 4 MiB

// Hooks fire around every dispatch. OnStart and OnFinish are always
// paired: exactly one of each per call, whatever the outcome.
type Hooks struct {
	OnStart   func()
	OnSuccess func(*ResponseEnvelope)
	OnFinish  func()
}

type Client struct {
	http     *http.Client
	session  SessionReader
	hooks    Hooks
	navigate NavigateFunc
	limiter  *hostLimiter
	metrics  *Metrics
	logger   *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

func WithHooks(hooks Hooks) Option {
	return func(c *Client) { c.hooks = hooks }
}

// WithNavigator installs the shell's navigation side effect for
// classified session errors.
func WithNavigator(fn NavigateFunc) Option {
	return func(c *Client) { c.navigate = fn }
}

func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = newHostLimiter(rps, burst) }
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func New(session SessionReader, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{},
		session: session,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do sends one descriptor and normalizes the outcome: a 2xx response
// resolves to its envelope, everything else returns an *APIError. The
// classifier runs on every failure before the error is returned, and
// may trigger a navigation side effect; it never changes the error.
//
// No retries, no deduplication, no concurrency cap: concurrent calls
// are fully independent once dispatched.
func (c *Client) Do(ctx context.Context, desc RequestDescriptor, policy *StatusPolicy) (*ResponseEnvelope, error) {
	requestID := uuid.NewString()
	started := time.Now()

	c.onStart()
	defer c.onFinish()

	c.logger.Debug("dispatching request", privacylog.SanitizeArgs(
		"request_id", requestID,
		"method", desc.Method,
		"url", desc.URL,
	)...)

	if err := c.limiter.wait(ctx, desc.URL); err != nil {
		apiErr := &APIError{URL: desc.URL, Message: genericErrorMessage, cause: err}
		c.classifyAndNavigate(apiErr)
		c.metrics.observe(desc.Method, "error")
		return nil, apiErr
	}

	req, err := buildRequest(ctx, desc)
	if err != nil {
		apiErr := &APIError{URL: desc.URL, Message: genericErrorMessage, cause: err}
		c.classifyAndNavigate(apiErr)
		c.metrics.observe(desc.Method, "error")
		return nil, apiErr
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// No response received; indistinguishable from a blocked 401.
		apiErr := &APIError{URL: desc.URL, Message: genericErrorMessage, cause: err}
		c.classifyAndNavigate(apiErr)
		c.metrics.observe(desc.Method, "error")
		c.logger.Warn("request failed without response", privacylog.SanitizeArgs(
			"request_id", requestID,
			"method", desc.Method,
			"url", desc.URL,
			"latency_ms", time.Since(started).Milliseconds(),
		)...)
		return nil, apiErr
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		apiErr := &APIError{URL: desc.URL, Message: genericErrorMessage, cause: err}
		c.classifyAndNavigate(apiErr)
		c.metrics.observe(desc.Method, "error")
		return nil, apiErr
	}

	env := &ResponseEnvelope{
		Status:     resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		RequestURL: desc.URL,
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if c.hooks.OnSuccess != nil {
			c.hooks.OnSuccess(env)
		}
		c.logger.Debug("request completed", privacylog.SanitizeArgs(
			"request_id", requestID,
			"method", desc.Method,
			"status", env.Status,
			"latency_ms", time.Since(started).Milliseconds(),
		)...)
		if policy != nil && env.Status != policy.Expected {
			// A success status the call did not expect is a call-site
			// failure, not a transport error: no classification.
			c.metrics.observe(desc.Method, "unexpected_status")
			return nil, statusMismatchError(env, policy)
		}
		c.metrics.observe(desc.Method, "success")
		return env, nil
	}

	apiErr := decodeAPIError(env)
	intent := c.classifyAndNavigate(apiErr)
	c.metrics.observe(desc.Method, "error")
	c.logger.Warn("request failed", privacylog.SanitizeArgs(
		"request_id", requestID,
		"method", desc.Method,
		"status", env.Status,
		"navigation", intent.String(),
		"latency_ms", time.Since(started).Milliseconds(),
	)...)
	return nil, apiErr
}

func (c *Client) onStart() {
	if c.metrics != nil {
		c.metrics.InFlight.Inc()
	}
	if c.hooks.OnStart != nil {
		c.hooks.OnStart()
	}
}

func (c *Client) onFinish() {
	if c.metrics != nil {
		c.metrics.InFlight.Dec()
	}
	if c.hooks.OnFinish != nil {
		c.hooks.OnFinish()
	}
}

func (c *Client) classifyAndNavigate(apiErr *APIError) NavigationIntent {
	intent := Classify(apiErr, c.session)
	if intent != NavigateNone && c.navigate != nil {
		c.navigate(intent)
	}
	return intent
}

func buildRequest(ctx context.Context, desc RequestDescriptor) (*http.Request, error) {
	var reader io.Reader
	contentType := ""
	switch body := desc.Body.(type) {
	case nil:
	case url.Values:
		reader = strings.NewReader(body.Encode())
		contentType = ContentTypeForm
	case []byte:
		reader = bytes.NewReader(body)
	default:
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(encoded)
		contentType = ContentTypeJSON
	}

	req, err := http.NewRequestWithContext(ctx, desc.Method, desc.fullURL(), reader)
	if err != nil {
		return nil, err
	}
	for key, values := range desc.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}
