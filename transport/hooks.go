package transport

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Response is what response hooks see of every completed exchange.
type Response struct {
	Method     string
	Path       string
	Route      string
	StatusCode int
	Header     http.Header
	Body       []byte
}

// ResponseHook inspects a response before its body is handed back. A
// non-nil error aborts the call and is returned to the caller. Hooks run in
// registration order; ClassifyStatus always runs last.
type ResponseHook func(resp *Response) error

// ClassifyStatus maps non-2xx statuses onto the typed failures.
func ClassifyStatus(resp *Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return &AuthError{Method: resp.Method, Path: resp.Path, Body: parseBody(resp.Header, resp.Body)}
	case http.StatusMethodNotAllowed:
		return &PermissionError{Method: resp.Method, Path: resp.Path}
	default:
		return &APIError{
			Status: resp.StatusCode,
			Body:   parseBody(resp.Header, resp.Body),
			Method: resp.Method,
			Path:   resp.Path,
		}
	}
}

// parseBody decodes JSON error bodies and falls back to text: the service
// is not consistent about which one it sends.
func parseBody(h http.Header, body []byte) any {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil
	}
	looksJSON := strings.Contains(h.Get("Content-Type"), "json") ||
		strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
	if looksJSON {
		var v any
		if err := json.Unmarshal(body, &v); err == nil {
			return v
		}
	}
	return trimmed
}
