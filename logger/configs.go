package logger

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls the zap logger built by New.
type Config struct {
	// Level is one of Debug, Info, Warning or Error. Unknown values fall back to Info.
	Level string `yaml:"level"`

	// ServiceName populates the "service" field of every entry.
	ServiceName string `yaml:"service_name"`

	// EnableTracing attaches trace_id and span_id from the active
	// OpenTelemetry span to entries logged through the ...WithContext methods.
	EnableTracing bool `yaml:"enable_tracing"`

	// CallerSkip is the number of wrapper frames to skip when reporting the
	// caller. Zero or less means 1.
	CallerSkip int `yaml:"caller_skip"`
}
