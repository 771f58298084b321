package audit

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"
)

// Publisher writes one Event per API write operation to Kafka. It is an
// observability.Observer: attach it to the api client and it ignores
// everything but write operations of the "api" component.
type Publisher struct {
	cfg    Config
	writer Writer
	logger Logger

	now   func() time.Time
	newID func() string
}

// NewPublisher builds a Kafka-backed publisher. A disabled config yields a
// publisher that drops every event.
func NewPublisher(cfg Config) (*Publisher, error) {
	cfg = cfg.withDefaults()
	if !cfg.Enabled {
		return NewWithWriter(cfg, nil), nil
	}
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("audit: at least one broker is required")
	}

	var tlsConfig *tls.Config
	if cfg.TLS.Enabled {
		var err error
		if tlsConfig, err = createTLSConfig(cfg.TLS); err != nil {
			return nil, fmt.Errorf("audit: failed to create TLS config: %w", err)
		}
	}
	var mechanism sasl.Mechanism
	if cfg.SASL.Enabled {
		var err error
		if mechanism, err = createSASLMechanism(cfg.SASL); err != nil {
			return nil, fmt.Errorf("audit: failed to create SASL mechanism: %w", err)
		}
	}

	p := NewWithWriter(cfg, nil)
	p.writer = createWriter(cfg, tlsConfig, mechanism, p)
	return p, nil
}

// NewWithWriter uses w as the sink; nil disables publishing.
func NewWithWriter(cfg Config, w Writer) *Publisher {
	return &Publisher{
		cfg:    cfg.withDefaults(),
		writer: w,
		now:    time.Now,
		newID:  newEventID,
	}
}

// WithLogger sets the logger used for delivery failures.
func (p *Publisher) WithLogger(l Logger) *Publisher {
	p.logger = l
	return p
}

// Enabled reports whether events are actually written.
func (p *Publisher) Enabled() bool { return p.writer != nil }

// Publish stamps e with an id, time and source and writes it keyed by its
// target.
func (p *Publisher) Publish(ctx context.Context, e Event) error {
	if p.writer == nil {
		return nil
	}
	if e.ID == "" {
		e.ID = p.newID()
	}
	if e.Time.IsZero() {
		e.Time = p.now().UTC()
	}
	if e.Source == "" {
		e.Source = p.cfg.Source
	}
	msg, err := encode(e)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("audit: failed to publish %s event: %w", e.Operation, err)
	}
	return nil
}

// Close flushes pending messages and closes the writer.
func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

func createWriter(cfg Config, tlsConfig *tls.Config, mechanism sasl.Mechanism, p *Publisher) *kafka.Writer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		MaxAttempts:  cfg.MaxAttempts,
		WriteTimeout: cfg.WriteTimeout,
		RequiredAcks: kafka.RequiredAcks(cfg.RequiredAcks),
		Async:        cfg.Async,
		BatchTimeout: cfg.BatchTimeout,
		ErrorLogger:  createErrorLogger(p),
	}
	switch cfg.CompressionCodec {
	case "gzip":
		w.Compression = kafka.Gzip
	case "snappy":
		w.Compression = kafka.Snappy
	case "lz4":
		w.Compression = kafka.Lz4
	case "zstd":
		w.Compression = kafka.Zstd
	}
	if tlsConfig != nil || mechanism != nil {
		w.Transport = &kafka.Transport{TLS: tlsConfig, SASL: mechanism}
	}
	return w
}

func createErrorLogger(p *Publisher) kafka.LoggerFunc {
	return func(msg string, args ...interface{}) {
		if p.logger == nil {
			return
		}
		p.logger.ErrorWithContext(context.Background(), "kafka writer error", nil, map[string]interface{}{
			"error": fmt.Sprintf(msg, args...),
			"topic": p.cfg.Topic,
		})
	}
}

func createTLSConfig(cfg TLSConfig) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec
	}
	if cfg.CACertPath != "" {
		caCert, err := os.ReadFile(cfg.CACertPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA cert: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caCert) {
			return nil, errors.New("failed to parse CA cert")
		}
		tlsConfig.RootCAs = pool
	}
	if cfg.ClientCertPath != "" && cfg.ClientKeyPath != "" {
		cert, err := tls.LoadX509KeyPair(cfg.ClientCertPath, cfg.ClientKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load client cert: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}
	return tlsConfig, nil
}

func createSASLMechanism(cfg SASLConfig) (sasl.Mechanism, error) {
	switch cfg.Mechanism {
	case "PLAIN":
		return plain.Mechanism{Username: cfg.Username, Password: cfg.Password}, nil
	case "SCRAM-SHA-256":
		return scram.Mechanism(scram.SHA256, cfg.Username, cfg.Password)
	case "SCRAM-SHA-512":
		return scram.Mechanism(scram.SHA512, cfg.Username, cfg.Password)
	default:
		return nil, fmt.Errorf("unsupported SASL mechanism: %s", cfg.Mechanism)
	}
}
