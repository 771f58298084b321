package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aalemi-dev/mdm-client/api"
	"github.com/aalemi-dev/mdm-client/audit"
	"github.com/aalemi-dev/mdm-client/logger"
	"github.com/aalemi-dev/mdm-client/metrics"
	"github.com/aalemi-dev/mdm-client/tracer"
	"github.com/aalemi-dev/mdm-client/transport"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MDM_"

// Config is the whole client configuration, one section per package.
type Config struct {
	API     api.Config     `yaml:"api"`
	Logger  logger.Config  `yaml:"logger"`
	Tracer  tracer.Config  `yaml:"tracer"`
	Metrics metrics.Config `yaml:"metrics"`
	Audit   audit.Config   `yaml:"audit"`
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), then environment overrides, and validates the result.
//
// A variable set in the process environment, even to an empty value,
// shadows the same variable in the given .env files; earlier files shadow
// later ones. Missing .env files are ignored and the process environment
// is never modified. Empty values leave the setting untouched, except
// MDM_METRICS_ADDRESS where empty disables the metrics server.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	lookup, err := envLookup(envFiles)
	if err != nil {
		return nil, err
	}
	if err := applyEnvOverrides(cfg, lookup); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		API: api.Config{Config: transport.Config{
			Timeout: transport.DefaultTimeout,
		}},
		Logger: logger.Config{
			Level:       logger.Info,
			ServiceName: "mdm-client",
		},
		Tracer: tracer.Config{
			ServiceName: "mdm-client",
			AppEnv:      "development",
		},
		Metrics: metrics.Config{
			ServiceName: "mdm-client",
		},
		Audit: audit.Config{
			Topic:        audit.DefaultTopic,
			WriteTimeout: audit.DefaultWriteTimeout,
		},
	}
}

type lookupFunc func(key string) (string, bool)

func envLookup(envFiles []string) (lookupFunc, error) {
	fileVars := map[string]string{}
	for _, f := range envFiles {
		vars, err := godotenv.Read(f)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading env file %s: %w", f, err)
		}
		for k, v := range vars {
			if _, seen := fileVars[k]; !seen {
				fileVars[k] = v
			}
		}
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}, nil
}

func applyEnvOverrides(cfg *Config, lookup lookupFunc) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	var errs []error
	boolean := func(name string, dst *bool) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = b
		}
	}
	duration := func(name string, dst *time.Duration) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = d
		}
	}

	// API
	str("API_ID", &cfg.API.ID)
	str("API_TOKEN", &cfg.API.Token)
	str("API_URL", &cfg.API.URL)
	duration("API_TIMEOUT", &cfg.API.Timeout)

	// Service name applies to every section that reports one
	if v, ok := lookup(EnvPrefix + "SERVICE_NAME"); ok && v != "" {
		cfg.Logger.ServiceName = v
		cfg.Tracer.ServiceName = v
		cfg.Metrics.ServiceName = v
		cfg.Audit.Source = v
	}

	// Logger
	str("LOG_LEVEL", &cfg.Logger.Level)
	boolean("LOG_TRACING", &cfg.Logger.EnableTracing)

	// Tracer
	str("APP_ENV", &cfg.Tracer.AppEnv)
	boolean("TRACING_EXPORT", &cfg.Tracer.EnableExport)
	str("OTLP_ENDPOINT", &cfg.Tracer.Endpoint)
	boolean("OTLP_INSECURE", &cfg.Tracer.Insecure)

	// Metrics; an explicitly empty address disables the server
	if v, ok := lookup(EnvPrefix + "METRICS_ADDRESS"); ok {
		cfg.Metrics.Address = metrics.Ptr(v)
	}

	// Audit
	boolean("AUDIT_ENABLED", &cfg.Audit.Enabled)
	if v, ok := lookup(EnvPrefix + "AUDIT_BROKERS"); ok && v != "" {
		cfg.Audit.Brokers = splitList(v)
	}
	str("AUDIT_TOPIC", &cfg.Audit.Topic)
	str("AUDIT_SASL_USERNAME", &cfg.Audit.SASL.Username)
	str("AUDIT_SASL_PASSWORD", &cfg.Audit.SASL.Password)

	return errors.Join(errs...)
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs []error

	if c.API.URL == "" {
		errs = append(errs, errors.New("api.url is required"))
	} else if u, err := url.Parse(c.API.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("api.url %q must be an absolute http(s) URL", c.API.URL))
	}
	if c.API.ID == "" {
		errs = append(errs, errors.New("api.id is required"))
	}
	if c.API.Token == "" {
		errs = append(errs, errors.New("api.token is required"))
	}
	if c.API.Timeout < 0 {
		errs = append(errs, fmt.Errorf("api.timeout must not be negative, got %s", c.API.Timeout))
	}

	levels := []string{logger.Debug, logger.Info, logger.Warning, logger.Error}
	if !slices.Contains(levels, c.Logger.Level) {
		errs = append(errs, fmt.Errorf("logger.level %q must be one of %s", c.Logger.Level, strings.Join(levels, ", ")))
	}

	if c.Audit.Enabled && len(c.Audit.Brokers) == 0 {
		errs = append(errs, errors.New("audit.brokers is required when audit is enabled"))
	}
	if c.Audit.SASL.Enabled && c.Audit.SASL.Username == "" {
		errs = append(errs, errors.New("audit.sasl.username is required when SASL is enabled"))
	}

	return errors.Join(errs...)
}
