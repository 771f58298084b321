package audit

import "time"

const (
	// DefaultTopic receives the audit events when Config.Topic is empty.
	DefaultTopic = "mdm.audit"

	// DefaultWriteTimeout bounds one publish.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultMaxAttempts is how often the writer tries a batch.
	DefaultMaxAttempts = 3

	// DefaultRequiredAcks waits for all in-sync replicas.
	DefaultRequiredAcks = -1
)

// Config configures the Kafka audit publisher.
type Config struct {
	// Enabled turns publishing on. A disabled publisher drops every event.
	Enabled bool `yaml:"enabled"`

	// Brokers is a list of Kafka broker addresses.
	Brokers []string `yaml:"brokers"`

	// Topic is where events are written. Default: DefaultTopic.
	Topic string `yaml:"topic"`

	// Source names the emitting application in every event, e.g. "inventory-sync".
	Source string `yaml:"source"`

	// RequiredAcks: 0 none, 1 leader, -1 all in-sync replicas.
	// Default: -1
	RequiredAcks int `yaml:"required_acks"`

	// WriteTimeout bounds one publish. Default: 10s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// MaxAttempts bounds delivery attempts per batch. Default: 3
	MaxAttempts int `yaml:"max_attempts"`

	// Async makes publishing fire-and-forget; delivery errors are only logged.
	Async bool `yaml:"async"`

	// BatchTimeout is the flush interval in async mode.
	BatchTimeout time.Duration `yaml:"batch_timeout"`

	// CompressionCodec is one of "gzip", "snappy", "lz4", "zstd" or empty.
	CompressionCodec string `yaml:"compression_codec"`

	TLS  TLSConfig  `yaml:"tls"`
	SASL SASLConfig `yaml:"sasl"`
}

// TLSConfig holds the broker TLS settings.
type TLSConfig struct {
	Enabled            bool   `yaml:"enabled"`
	CACertPath         string `yaml:"ca_cert_path"`
	ClientCertPath     string `yaml:"client_cert_path"`
	ClientKeyPath      string `yaml:"client_key_path"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify"`
}

// SASLConfig holds the broker authentication settings.
type SASLConfig struct {
	Enabled bool `yaml:"enabled"`

	// Mechanism is "PLAIN", "SCRAM-SHA-256" or "SCRAM-SHA-512".
	Mechanism string `yaml:"mechanism"`

	Username string `yaml:"username"`
	Password string `yaml:"password" json:"-"` //nolint:gosec
}

func (c Config) withDefaults() Config {
	if c.Topic == "" {
		c.Topic = DefaultTopic
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.RequiredAcks == 0 {
		c.RequiredAcks = DefaultRequiredAcks
	}
	return c
}
