package transport

import (
	"net/http"
	"time"
)

// ProtocolVersion is sent in HeaderProtocolVersion on every request.
const (
	HeaderProtocolVersion = "X-Server-Protocol-Version"
	ProtocolVersion       = "3"
)

// DefaultTimeout applies when Config.Timeout is zero and no HTTPClient is given.
const DefaultTimeout = 30 * time.Second

// Config holds the connection settings of the remote service.
type Config struct {
	// ID is the network/account id used as the Basic-auth user name.
	ID string `yaml:"id"`

	// Token is the API key used as the Basic-auth password.
	Token string `yaml:"token" json:"-"` //nolint:gosec

	// URL is the API root, e.g. "https://example.jamfcloud.com/api".
	URL string `yaml:"url"`

	// Timeout bounds every request. Ignored when HTTPClient is set.
	Timeout time.Duration `yaml:"timeout"`

	// HTTPClient replaces the default client (pooling, TLS and proxies are its concern).
	HTTPClient *http.Client `yaml:"-"`
}
