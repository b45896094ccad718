package config

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "console"}
)

// ObservabilityConfig groups logging, New Relic and OpenTelemetry settings.
// Every part is optional: with no license key and no OTLP endpoint the
// service only writes logs.
type ObservabilityConfig struct {
	ServiceName  string             `koanf:"service_name" validate:"required"`
	Environment  string             `koanf:"environment"`
	Logging      LoggingConfig      `koanf:"logging"`
	NewRelic     NewRelicConfig     `koanf:"new_relic"`
	Tracing      TracingConfig      `koanf:"tracing"`
	HealthChecks HealthChecksConfig `koanf:"health_checks"`
}

type LoggingConfig struct {
	// Level may be left empty to pick a default from the environment.
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// NewRelicConfig enables the APM agent when LicenseKey is set.
type NewRelicConfig struct {
	LicenseKey                string `koanf:"license_key"`
	AppLogForwardingEnabled   bool   `koanf:"app_log_forwarding_enabled"`
	DistributedTracingEnabled bool   `koanf:"distributed_tracing_enabled"`
	DebugLogging              bool   `koanf:"debug_logging"`
}

// TracingConfig enables OTLP/HTTP span export when OTLPEndpoint is set
// (host:port, e.g. "otel-collector:4318").
type TracingConfig struct {
	OTLPEndpoint string  `koanf:"otlp_endpoint"`
	Insecure     bool    `koanf:"insecure"`
	SampleRatio  float64 `koanf:"sample_ratio"`
}

func (t TracingConfig) Enabled() bool {
	return t.OTLPEndpoint != ""
}

// HealthChecksConfig bounds the self-check run by the status endpoint.
type HealthChecksConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: "mock-api",
		Environment: "development",
		Logging: LoggingConfig{
			Format: "json",
		},
		NewRelic: NewRelicConfig{
			AppLogForwardingEnabled:   true,
			DistributedTracingEnabled: true,
			DebugLogging:              false, // mixes agent output into our log stream
		},
		Tracing: TracingConfig{
			Insecure:    true,
			SampleRatio: 1,
		},
		HealthChecks: HealthChecksConfig{
			Timeout: 5 * time.Second,
		},
	}
}

// Validate checks the rules struct tags cannot express.
func (c *ObservabilityConfig) Validate() error {
	var result *multierror.Error

	if c.ServiceName == "" {
		result = multierror.Append(result, fmt.Errorf("observability.service_name is required"))
	}

	if level := c.GetLogLevel(); !lo.Contains(validLogLevels, level) {
		result = multierror.Append(result, fmt.Errorf("invalid logging level: %s (must be one of: %v)", level, validLogLevels))
	}

	if !lo.Contains(validLogFormats, c.Logging.Format) {
		result = multierror.Append(result, fmt.Errorf("invalid logging format: %s (must be one of: %v)", c.Logging.Format, validLogFormats))
	}

	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		result = multierror.Append(result, fmt.Errorf("tracing sample_ratio must be within [0, 1], got %v", c.Tracing.SampleRatio))
	}

	if c.HealthChecks.Timeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("health_checks timeout must be positive"))
	}

	return result.ErrorOrNil()
}

// GetLogLevel falls back to info in production and debug everywhere else.
func (c *ObservabilityConfig) GetLogLevel() string {
	if c.Logging.Level != "" {
		return c.Logging.Level
	}
	if c.IsProduction() {
		return "info"
	}
	return "debug"
}

func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}
