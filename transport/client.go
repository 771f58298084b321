package transport

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aalemi-dev/mdm-client/observability"
	"github.com/aalemi-dev/mdm-client/tracer"
)

// Request carries the optional parts of a call.
type Request struct {
	// Route is the route key ("GET /devices/:udid") used to label logs,
	// spans and observer events. Defaults to "METHOD path".
	Route string

	Query Query

	// JSON, when non-nil, is marshalled as the request body.
	JSON any
}

// Logger is the context-aware subset of logger.Logger the transport uses.
type Logger interface {
	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// Doer performs one request and returns the raw 2xx body.
type Doer interface {
	Do(ctx context.Context, method, path string, req Request) (json.RawMessage, error)
}

// Client sends authenticated JSON requests to the device-management service.
// It never retries and never treats a status as success by itself: every
// response goes through the hook chain.
type Client struct {
	baseURL    string
	httpClient *http.Client
	authHeader string
	hooks      []ResponseHook

	observer observability.Observer
	logger   Logger
	tracer   tracer.Tracer
}

var _ Doer = (*Client)(nil)

// New validates cfg and computes the Basic-auth header once.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("transport: URL is required")
	}
	if cfg.ID == "" || cfg.Token == "" {
		return nil, errors.New("transport: ID and Token are required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		httpClient: httpClient,
		authHeader: "Basic " + base64.StdEncoding.EncodeToString([]byte(cfg.ID+":"+cfg.Token)),
		observer:   observability.NewNoOpObserver(),
	}, nil
}

// WithObserver sets the observer notified after every exchange. nil
// restores the no-op observer.
func (c *Client) WithObserver(o observability.Observer) *Client {
	if o == nil {
		o = observability.NewNoOpObserver()
	}
	c.observer = o
	return c
}

// WithLogger sets the logger used for request and failure entries.
func (c *Client) WithLogger(l Logger) *Client {
	c.logger = l
	return c
}

// WithTracer enables one client span per request and trace header injection.
func (c *Client) WithTracer(t tracer.Tracer) *Client {
	c.tracer = t
	return c
}

// WithResponseHook appends a hook that runs before status classification.
func (c *Client) WithResponseHook(h ResponseHook) *Client {
	c.hooks = append(c.hooks, h)
	return c
}

// Do sends method path with the given query and JSON body and returns the
// raw body of a 2xx response. Failures are *AuthError, *PermissionError,
// *APIError or *RequestError, or whatever a custom hook returned.
func (c *Client) Do(ctx context.Context, method, path string, req Request) (json.RawMessage, error) {
	start := time.Now()
	route := req.Route
	if route == "" {
		route = method + " " + path
	}

	if c.tracer != nil {
		var span tracer.Span
		ctx, span = c.tracer.StartSpan(ctx, route)
		defer span.End()
		span.SetAttributes(map[string]interface{}{
			"http.method": method,
			"http.route":  route,
		})
		body, status, err := c.do(ctx, method, path, route, req)
		span.SetAttributes(map[string]interface{}{"http.status_code": status})
		span.RecordError(err)
		c.observe(method, route, start, status, len(body), err)
		return body, err
	}

	body, status, err := c.do(ctx, method, path, route, req)
	c.observe(method, route, start, status, len(body), err)
	return body, err
}

func (c *Client) do(ctx context.Context, method, path, route string, req Request) (json.RawMessage, int, error) {
	target := c.baseURL + path
	if len(req.Query) > 0 {
		qs, err := req.Query.Encode()
		if err != nil {
			return nil, 0, fmt.Errorf("transport: %s %s: %w", method, path, err)
		}
		if qs != "" {
			target += "?" + qs
		}
	}

	var reader io.Reader
	if req.JSON != nil {
		payload, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, 0, fmt.Errorf("transport: %s %s: failed to marshal body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("transport: %s %s: failed to create request: %w", method, path, err)
	}
	httpReq.Header.Set("Authorization", c.authHeader)
	httpReq.Header.Set(HeaderProtocolVersion, ProtocolVersion)
	httpReq.Header.Set("Accept", "application/json")
	if reader != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.tracer != nil {
		c.tracer.Inject(ctx, httpReq.Header)
	}

	c.logDebug(ctx, "sending request", map[string]interface{}{"method": method, "path": path, "route": route})

	resp, err := c.httpClient.Do(httpReq) //nolint:gosec
	if err != nil {
		reqErr := &RequestError{Method: method, Path: path, Err: err}
		c.logWarn(ctx, "request failed", reqErr, map[string]interface{}{"route": route})
		return nil, 0, reqErr
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		reqErr := &RequestError{Method: method, Path: path, Err: fmt.Errorf("failed to read body: %w", err)}
		return nil, resp.StatusCode, reqErr
	}

	r := &Response{
		Method:     method,
		Path:       path,
		Route:      route,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}
	hooks := make([]ResponseHook, 0, len(c.hooks)+1)
	hooks = append(append(hooks, c.hooks...), ClassifyStatus)
	for _, hook := range hooks {
		if err := hook(r); err != nil {
			c.logWarn(ctx, "remote call rejected", err, map[string]interface{}{
				"route":       route,
				"status_code": resp.StatusCode,
			})
			return nil, resp.StatusCode, err
		}
	}

	return body, resp.StatusCode, nil
}
