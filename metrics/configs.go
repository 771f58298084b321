package metrics

// DefaultAddress is where the /metrics endpoint listens when Config.Address is nil.
const DefaultAddress = ":9091"

// Config controls the Prometheus registry and its HTTP endpoint.
type Config struct {
	// Address of the /metrics HTTP server. nil uses DefaultAddress; a pointer
	// to "" disables the server (metrics are still collected in Registry).
	Address *string `yaml:"address"`

	// ServiceName is attached to every series as the constant "service" label.
	ServiceName string `yaml:"service_name"`

	// Namespace prefixes every metric name. Defaults to "mdm_client".
	Namespace string `yaml:"namespace"`

	// DisableRuntimeCollectors skips the Go runtime and process collectors.
	DisableRuntimeCollectors bool `yaml:"disable_runtime_collectors"`
}

// Ptr returns a pointer to s, for Config.Address.
func Ptr(s string) *string {
	return &s
}
