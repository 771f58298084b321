package tracer

// Config controls the OpenTelemetry tracer provider built by NewClient.
type Config struct {
	// ServiceName is reported as the service.name resource attribute.
	ServiceName string `yaml:"service_name"`

	// AppEnv is reported as deployment.environment.
	AppEnv string `yaml:"app_env"`

	// EnableExport turns on the OTLP/HTTP exporter. Without it spans are
	// created (and trace ids propagated) but never shipped.
	EnableExport bool `yaml:"enable_export"`

	// Endpoint is the collector host:port. Empty uses the exporter's
	// default (OTEL_EXPORTER_OTLP_ENDPOINT or localhost:4318).
	Endpoint string `yaml:"endpoint"`

	// Insecure sends spans over plain HTTP.
	Insecure bool `yaml:"insecure"`
}
