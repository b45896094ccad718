package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/deppfellow/mock-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv removes keys for the duration of the test.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_MissingPort(t *testing.T) {
	unsetenv(t, "PORT", "MOCKAPI_SERVER__PORT")

	cfg, err := config.LoadConfig()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "PORT is required")
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "8080")
	unsetenv(t, "PUBLIC_PATH", "APP_ENV", "MOCKAPI_SERVER__PORT", "MOCKAPI_GENERATOR__LATENCY")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "public", cfg.Server.PublicPath)
	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, 3*time.Second, cfg.Generator.Latency)
	assert.Equal(t, 1000, cfg.Generator.MaxCount)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, "debug", cfg.Observability.GetLogLevel())
	assert.False(t, cfg.Observability.Tracing.Enabled())
}

func TestLoadConfig_PrefixedOverridesPlain(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MOCKAPI_SERVER__PORT", "9090")
	t.Setenv("PUBLIC_PATH", "dist")
	t.Setenv("APP_ENV", "production")
	t.Setenv("MOCKAPI_GENERATOR__LATENCY", "250ms")
	t.Setenv("MOCKAPI_GENERATOR__MAX_COUNT", "50")
	t.Setenv("MOCKAPI_GENERATOR__SEED", "42")
	t.Setenv("MOCKAPI_SERVER__CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("MOCKAPI_OBSERVABILITY__TRACING__OTLP_ENDPOINT", "collector:4318")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "dist", cfg.Server.PublicPath)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "info", cfg.Observability.GetLogLevel())
	assert.Equal(t, 250*time.Millisecond, cfg.Generator.Latency)
	assert.Equal(t, 50, cfg.Generator.MaxCount)
	assert.Equal(t, uint64(42), cfg.Generator.Seed)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.Observability.Tracing.Enabled())
}

func TestLoadConfig_InvalidValuesAreAllReported(t *testing.T) {
	t.Setenv("PORT", "70000")
	t.Setenv("APP_ENV", "moon")
	t.Setenv("MOCKAPI_OBSERVABILITY__LOGGING__LEVEL", "loud")

	_, err := config.LoadConfig()
	require.Error(t, err)

	assert.Contains(t, err.Error(), "PORT failed max=65535")
	assert.Contains(t, err.Error(), "APP_ENV failed oneof")
	assert.Contains(t, err.Error(), "invalid logging level: loud")
}

func TestConfig_WriteTimeoutMustExceedLatency(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Port = 8080
	cfg.Server.WriteTimeout = 2 * time.Second
	cfg.Generator.Latency = 3 * time.Second

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.write_timeout")
}

func TestObservabilityConfig_Validate(t *testing.T) {
	obs := config.DefaultObservabilityConfig()
	require.NoError(t, obs.Validate())

	obs.Logging.Format = "xml"
	obs.Tracing.SampleRatio = 2
	err := obs.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging format: xml")
	assert.Contains(t, err.Error(), "sample_ratio")
}
