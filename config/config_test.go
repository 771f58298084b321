package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/mdm-client/api"
	"github.com/aalemi-dev/mdm-client/audit"
	"github.com/aalemi-dev/mdm-client/logger"
	"github.com/aalemi-dev/mdm-client/metrics"
	"github.com/aalemi-dev/mdm-client/transport"
)

const sampleYAML = `
api:
  id: "12345"
  token: secret
  url: https://school.example.com/api
  timeout: 20s
logger:
  level: debug
metrics:
  address: ""
audit:
  enabled: true
  brokers: [kafka-1:9092, kafka-2:9092]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// clearEnv unsets every override so a developer's shell cannot leak into
// the tests. t.Setenv restores the original values afterwards.
func clearEnv(t *testing.T) {
	for _, k := range []string{
		"API_ID", "API_TOKEN", "API_URL", "API_TIMEOUT", "SERVICE_NAME",
		"LOG_LEVEL", "LOG_TRACING", "APP_ENV", "TRACING_EXPORT",
		"OTLP_ENDPOINT", "OTLP_INSECURE", "AUDIT_ENABLED", "AUDIT_BROKERS",
		"AUDIT_TOPIC", "AUDIT_SASL_USERNAME", "AUDIT_SASL_PASSWORD", "METRICS_ADDRESS",
	} {
		t.Setenv(EnvPrefix+k, "")
		require.NoError(t, os.Unsetenv(EnvPrefix+k))
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(writeFile(t, "config.yaml", sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "12345", cfg.API.ID)
	assert.Equal(t, "secret", cfg.API.Token)
	assert.Equal(t, "https://school.example.com/api", cfg.API.URL)
	assert.Equal(t, 20*time.Second, cfg.API.Timeout)
	assert.Equal(t, logger.Debug, cfg.Logger.Level)
	assert.Equal(t, "mdm-client", cfg.Logger.ServiceName)
	require.NotNil(t, cfg.Metrics.Address)
	assert.Empty(t, *cfg.Metrics.Address)
	assert.True(t, cfg.Audit.Enabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Audit.Brokers)
	assert.Equal(t, audit.DefaultTopic, cfg.Audit.Topic)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("MDM_API_TOKEN", "from-env")
	t.Setenv("MDM_API_TIMEOUT", "5s")
	t.Setenv("MDM_SERVICE_NAME", "roster-sync")
	t.Setenv("MDM_AUDIT_BROKERS", " a:9092 , b:9092,")

	cfg, err := Load(writeFile(t, "config.yaml", sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.API.Token)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "roster-sync", cfg.Logger.ServiceName)
	assert.Equal(t, "roster-sync", cfg.Tracer.ServiceName)
	assert.Equal(t, "roster-sync", cfg.Metrics.ServiceName)
	assert.Equal(t, "roster-sync", cfg.Audit.Source)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Audit.Brokers)
}

func TestLoad_EnvFiles(t *testing.T) {
	clearEnv(t)
	t.Setenv("MDM_API_ID", "process")

	first := writeFile(t, "first.env", "MDM_API_ID=file\nMDM_API_TOKEN=first\nMDM_API_URL=http://localhost:8080/api\n")
	second := writeFile(t, "second.env", "MDM_API_TOKEN=second\n")
	missing := filepath.Join(t.TempDir(), "missing.env")

	cfg, err := Load("", missing, first, second)
	require.NoError(t, err)

	assert.Equal(t, "process", cfg.API.ID, "process environment wins over env files")
	assert.Equal(t, "first", cfg.API.Token, "earlier env files win over later ones")
	assert.Equal(t, "http://localhost:8080/api", cfg.API.URL)
	assert.Equal(t, transport.DefaultTimeout, cfg.API.Timeout)

	_, set := os.LookupEnv("MDM_API_URL")
	assert.False(t, set, "env files must not modify the process environment")
}

func TestLoad_EmptyProcessValueShadowsEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("MDM_METRICS_ADDRESS", "")
	envFile := writeFile(t, "metrics.env", "MDM_METRICS_ADDRESS=:9999\n")

	cfg, err := Load(writeFile(t, "config.yaml", sampleYAML), envFile)
	require.NoError(t, err)
	require.NotNil(t, cfg.Metrics.Address)
	assert.Empty(t, *cfg.Metrics.Address, "an empty process value disables the server")

	require.NoError(t, os.Unsetenv("MDM_METRICS_ADDRESS"))
	cfg, err = Load(writeFile(t, "config.yaml", sampleYAML), envFile)
	require.NoError(t, err)
	require.NotNil(t, cfg.Metrics.Address)
	assert.Equal(t, ":9999", *cfg.Metrics.Address)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "reading config file")

	_, err = Load(writeFile(t, "bad.yaml", "api: [unterminated"))
	assert.ErrorContains(t, err, "parsing config file")

	t.Setenv("MDM_API_TIMEOUT", "soon")
	_, err = Load(writeFile(t, "config.yaml", sampleYAML))
	assert.ErrorContains(t, err, "MDM_API_TIMEOUT")

	t.Setenv("MDM_API_TIMEOUT", "")
	t.Setenv("MDM_AUDIT_ENABLED", "maybe")
	_, err = Load(writeFile(t, "config.yaml", sampleYAML))
	assert.ErrorContains(t, err, "MDM_AUDIT_ENABLED")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		c := defaultConfig()
		c.API.ID = "1"
		c.API.Token = "t"
		c.API.URL = "https://mdm.example.com/api"
		return c
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing url", func(c *Config) { c.API.URL = "" }, "api.url is required"},
		{"relative url", func(c *Config) { c.API.URL = "/api" }, "absolute http(s) URL"},
		{"wrong scheme", func(c *Config) { c.API.URL = "ftp://mdm.example.com" }, "absolute http(s) URL"},
		{"missing id", func(c *Config) { c.API.ID = "" }, "api.id is required"},
		{"missing token", func(c *Config) { c.API.Token = "" }, "api.token is required"},
		{"negative timeout", func(c *Config) { c.API.Timeout = -time.Second }, "api.timeout"},
		{"bad level", func(c *Config) { c.Logger.Level = "loud" }, "logger.level"},
		{"audit without brokers", func(c *Config) { c.Audit.Enabled = true }, "audit.brokers"},
		{"sasl without user", func(c *Config) { c.Audit.SASL.Enabled = true }, "audit.sasl.username"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.ErrorContains(t, c.Validate(), tt.want)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	err := defaultConfig().Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "api.url")
	assert.ErrorContains(t, err, "api.id")
	assert.ErrorContains(t, err, "api.token")
}

func TestFromFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", sampleYAML)

	var (
		apiCfg       api.Config
		transportCfg transport.Config
		metricsCfg   metrics.Config
		auditCfg     audit.Config
	)
	app := fxtest.New(t,
		FromFile(path),
		fx.Populate(&apiCfg, &transportCfg, &metricsCfg, &auditCfg),
	)
	app.RequireStart()
	defer app.RequireStop()

	assert.Equal(t, "12345", apiCfg.ID)
	assert.Equal(t, apiCfg.Config, transportCfg)
	require.NotNil(t, metricsCfg.Address)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, auditCfg.Brokers)
}

func TestFromFile_InvalidFailsStartup(t *testing.T) {
	clearEnv(t)
	app := fx.New(
		fx.NopLogger,
		FromFile(writeFile(t, "config.yaml", "logger:\n  level: debug\n")),
		fx.Invoke(func(api.Config) {}),
	)
	assert.ErrorContains(t, app.Err(), "validating config")
}
