package testfixtures

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Request is one request seen by a Server.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// JSONBody decodes the request body into a generic map.
func (r Request) JSONBody() map[string]any {
	var m map[string]any
	if err := json.Unmarshal(r.Body, &m); err != nil {
		return nil
	}
	return m
}

type reply struct {
	status int
	body   []byte
	text   bool
}

// Server is a scripted stand-in for the remote service. Replies are keyed
// by "METHOD /path?query" first and "METHOD /path" second; anything else
// answers 404 with a text body.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	replies  map[string]reply
	requests []Request
}

// NewServer starts a Server that is closed with the test.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{replies: make(map[string]reply)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Reply scripts the answer for key. A []byte or string body is sent as
// text, anything else is marshalled as JSON.
func (s *Server) Reply(key string, status int, body any) {
	r := reply{status: status}
	switch b := body.(type) {
	case []byte:
		r.body = b
		r.text = !json.Valid(b)
	case string:
		r.body = []byte(b)
		r.text = true
	default:
		r.body = JSON(body)
	}
	s.mu.Lock()
	s.replies[key] = r
	s.mu.Unlock()
}

// Requests returns a copy of the requests seen so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Count is the number of requests seen so far.
func (s *Server) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Last returns the most recent request.
func (s *Server) Last() Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}
	}
	return s.requests[len(s.requests)-1]
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     body,
	})
	key := r.Method + " " + r.URL.Path
	rep, ok := s.replies[key+"?"+r.URL.RawQuery]
	if !ok {
		rep, ok = s.replies[key]
	}
	s.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "NotFound")
		return
	}
	if rep.text {
		w.Header().Set("Content-Type", "text/plain")
	} else {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(rep.status)
	_, _ = w.Write(rep.body)
}
