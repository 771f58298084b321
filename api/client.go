package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aalemi-dev/mdm-client/observability"
	"github.com/aalemi-dev/mdm-client/schema"
	"github.com/aalemi-dev/mdm-client/transport"
)

// Logger is the context-aware subset of logger.Logger the API surface uses.
type Logger interface {
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// Client implements API on top of a transport.Doer and a schema.Registry.
// Every response is checked against its route schema before any field of
// it is decoded into a record.
type Client struct {
	transport transport.Doer
	registry  *schema.Registry

	observer observability.Observer
	logger   Logger
}

var _ API = (*Client)(nil)

// New builds the transport from cfg and uses the default schema registry.
func New(cfg Config) (*Client, error) {
	t, err := transport.New(cfg.Config)
	if err != nil {
		return nil, fmt.Errorf("api: %w", err)
	}
	return NewWithTransport(t, nil), nil
}

// NewWithTransport wires an existing transport. A nil registry selects
// schema.Default().
func NewWithTransport(t transport.Doer, registry *schema.Registry) *Client {
	if registry == nil {
		registry = schema.Default()
	}
	return &Client{transport: t, registry: registry, observer: observability.NewNoOpObserver()}
}

// WithObserver sets the observer notified after every route call. nil
// restores the no-op observer.
func (c *Client) WithObserver(o observability.Observer) *Client {
	if o == nil {
		o = observability.NewNoOpObserver()
	}
	c.observer = o
	return c
}

// WithLogger sets the logger used for schema violations and remote failures.
func (c *Client) WithLogger(l Logger) *Client {
	c.logger = l
	return c
}

// call describes one route invocation.
type call struct {
	op     string
	method string
	path   string
	route  string
	query  transport.Query
	body   any
	target string
	write  bool
}

// invoke runs c through the transport, asserts the full response body
// against the route schema and decodes it into out.
func (c *Client) invoke(ctx context.Context, cl call, out any) (err error) {
	start := time.Now()
	var size int
	defer func() { c.observe(cl, start, size, err) }()

	raw, err := c.transport.Do(ctx, cl.method, cl.path, transport.Request{
		Route: cl.route,
		Query: cl.query,
		JSON:  cl.body,
	})
	if err != nil {
		c.logWarn(ctx, "remote call failed", err, cl)
		return err
	}
	size = len(raw)

	doc, err := decodeDocument(raw)
	if err != nil {
		err = &schema.SchemaError{Route: cl.route, Issues: []schema.Issue{{
			Code:    schema.CodeType,
			Message: "response is not a JSON document: " + err.Error(),
		}}}
		c.logError(ctx, "response rejected", err, cl)
		return err
	}
	if err = c.registry.AssertValid(cl.route, doc); err != nil {
		c.logError(ctx, "response rejected", err, cl)
		return err
	}

	if err = json.Unmarshal(raw, out); err != nil {
		err = &schema.SchemaError{Route: cl.route, Issues: []schema.Issue{{
			Code:    schema.CodeType,
			Message: "response does not decode into its record type: " + err.Error(),
		}}}
		c.logError(ctx, "response rejected", err, cl)
		return err
	}
	return nil
}

func decodeDocument(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after document")
	}
	return doc, nil
}

type ack struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// write runs a mutating call and returns the acknowledgement message.
func (c *Client) write(ctx context.Context, cl call) (string, error) {
	cl.write = true
	var out ack
	if err := c.invoke(ctx, cl, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
