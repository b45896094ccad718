// Package config loads the service configuration from the environment.
//
// Values are resolved from three layers, lowest precedence first:
//   - built-in defaults (see Default)
//   - the plain PORT, PUBLIC_PATH and APP_ENV variables
//   - MOCKAPI_ prefixed variables, where "__" separates nesting levels,
//     e.g. MOCKAPI_SERVER__READ_TIMEOUT=10s -> server.read_timeout
//
// A `.env` file in the working directory is loaded first when present.
package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	// Side-effect import: loads `.env` into the process env before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	EnvPrefix = "MOCKAPI_"

	// nestingSeparator splits a prefixed variable name into koanf path segments.
	nestingSeparator = "__"
)

// plainEnv maps the unprefixed variables the service has always honoured.
var plainEnv = map[string]string{
	"PORT":        "server.port",
	"PUBLIC_PATH": "server.public_path",
	"APP_ENV":     "primary.env",
}

type Config struct {
	Primary       Primary             `koanf:"primary"`
	Server        ServerConfig        `koanf:"server"`
	Generator     GeneratorConfig     `koanf:"generator"`
	Observability ObservabilityConfig `koanf:"observability"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=development test staging production"`
}

type ServerConfig struct {
	Port               int           `koanf:"port" validate:"required,min=1,max=65535"`
	PublicPath         string        `koanf:"public_path" validate:"required"`
	ReadTimeout        time.Duration `koanf:"read_timeout"`
	WriteTimeout       time.Duration `koanf:"write_timeout"`
	IdleTimeout        time.Duration `koanf:"idle_timeout"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// GeneratorConfig tunes the mock data endpoints.
type GeneratorConfig struct {
	// Latency is the artificial wait before every listing is generated.
	Latency time.Duration `koanf:"latency"`

	// MaxCount caps the batch size of a single request. Zero disables the cap.
	MaxCount int `koanf:"max_count" validate:"gte=0"`

	// Seed fixes the faker's starting state. Zero picks a random seed.
	// Records are generated concurrently, so a fixed seed yields the same
	// set of draws but not the same record-by-record output across requests.
	Seed uint64 `koanf:"seed"`
}

// Default returns the configuration used when no variable overrides a value.
// Port has no default on purpose: the service refuses to start without one.
func Default() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			PublicPath:         "public",
			ReadTimeout:        10 * time.Second,
			WriteTimeout:       30 * time.Second,
			IdleTimeout:        60 * time.Second,
			CORSAllowedOrigins: []string{"*"},
		},
		Generator: GeneratorConfig{
			Latency:  3 * time.Second,
			MaxCount: 1000,
		},
		Observability: *DefaultObservabilityConfig(),
	}
}

// LoadConfig reads the environment on top of Default and validates the result.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider("", ".", func(s string) string {
		return plainEnv[s]
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not load plain env variables")
	}

	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.TrimPrefix(s, EnvPrefix)
		return strings.ToLower(strings.ReplaceAll(key, nestingSeparator, "."))
	}), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load %s env variables", EnvPrefix)
	}

	mainConfig := Default()
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal config")
	}

	// A comma separated env value arrives as a single element.
	mainConfig.Server.CORSAllowedOrigins = lo.Compact(lo.FlatMap(mainConfig.Server.CORSAllowedOrigins, func(o string, _ int) []string {
		return lo.Map(strings.Split(o, ","), func(s string, _ int) string {
			return strings.TrimSpace(s)
		})
	}))

	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return mainConfig, nil
}

// Validate runs the struct tag rules and the cross-field checks, reporting
// every failure at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if err := newValidator().Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fe := range validationErrors {
				result = multierror.Append(result, describeFieldError(fe))
			}
		} else {
			result = multierror.Append(result, err)
		}
	}

	if c.Generator.Latency < 0 {
		result = multierror.Append(result, fmt.Errorf("generator.latency must be non-negative, got %s", c.Generator.Latency))
	}

	if c.Server.WriteTimeout > 0 && c.Server.WriteTimeout <= c.Generator.Latency {
		result = multierror.Append(result, fmt.Errorf(
			"server.write_timeout (%s) must be longer than generator.latency (%s)",
			c.Server.WriteTimeout, c.Generator.Latency,
		))
	}

	if err := c.Observability.Validate(); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("koanf")
	})
	return v
}

// describeFieldError names the variable an operator would set to fix fe.
func describeFieldError(fe validator.FieldError) error {
	path := fe.Namespace()
	if i := strings.Index(path, "."); i >= 0 {
		path = path[i+1:]
	}

	variable := EnvPrefix + strings.ToUpper(strings.ReplaceAll(path, ".", nestingSeparator))
	if plain, ok := lo.FindKey(plainEnv, path); ok {
		variable = plain
	}

	if fe.Tag() == "required" {
		return fmt.Errorf("%s is required", variable)
	}
	if fe.Param() != "" {
		return fmt.Errorf("%s failed %s=%s (got %v)", variable, fe.Tag(), fe.Param(), fe.Value())
	}
	return fmt.Errorf("%s failed %s (got %v)", variable, fe.Tag(), fe.Value())
}

// IsProduction reports whether APP_ENV selects production behaviour.
func (c *Config) IsProduction() bool {
	return c.Primary.Env == "production"
}
