package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config del servicio. Cada campo se lee de su env var; CONFIG_FILE (yaml)
// aporta valores para las vars que no estén seteadas.
// Precedencia: env > archivo > default.
type Config struct {
	Port    string `envconfig:"PORT" default:"8080" yaml:"port"`
	AppName string `envconfig:"APP_NAME" default:"petclinic-visits" yaml:"app_name"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info" yaml:"log_level"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text" yaml:"log_format"`

	DBDriver string `envconfig:"DB_DRIVER" default:"memory" yaml:"db_driver"`
	DBDSN    string `envconfig:"DB_DSN" yaml:"db_dsn"`
	SeedData bool   `envconfig:"SEED_DATA" default:"true" yaml:"-"`

	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"5s" yaml:"read_timeout"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s" yaml:"shutdown_timeout"`

	RateLimitEnabled bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true" yaml:"-"`
	RateLimitRPS     float64 `envconfig:"RATE_LIMIT_RPS" default:"100" yaml:"rate_limit_rps"`
	RateLimitBurst   int     `envconfig:"RATE_LIMIT_BURST" default:"50" yaml:"rate_limit_burst"`

	TracingEnabled bool `envconfig:"TRACING_ENABLED" default:"false" yaml:"-"`

	ConfigFile string `envconfig:"CONFIG_FILE" yaml:"-"`
}

// fileConfig usa punteros para los bool: en yaml hay que distinguir
// "false" de "no definido".
type fileConfig struct {
	Config `yaml:",inline"`

	SeedData         *bool `yaml:"seed_data"`
	RateLimitEnabled *bool `yaml:"rate_limit_enabled"`
	TracingEnabled   *bool `yaml:"tracing_enabled"`
}

// Load lee env (y opcionalmente CONFIG_FILE) y valida.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config from env: %w", err)
	}

	if path := strings.TrimSpace(cfg.ConfigFile); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		var file fileConfig
		if err := yaml.Unmarshal(b, &file); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
		cfg = merge(cfg, file)
	}

	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	switch c.DBDriver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if strings.TrimSpace(c.DBDSN) == "" {
			errs = append(errs, fmt.Errorf("DB_DSN is required for driver %q", c.DBDriver))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver))
	}

	if strings.TrimSpace(c.Port) == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.RateLimitEnabled && (c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0) {
		errs = append(errs, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive"))
	}

	return errors.Join(errs...)
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// merge toma del archivo los valores cuya env var no está seteada.
func merge(env Config, file fileConfig) Config {
	out := env
	out.Port = pick("PORT", env.Port, file.Port)
	out.AppName = pick("APP_NAME", env.AppName, file.AppName)
	out.LogLevel = pick("LOG_LEVEL", env.LogLevel, file.LogLevel)
	out.LogFormat = pick("LOG_FORMAT", env.LogFormat, file.LogFormat)
	out.DBDriver = pick("DB_DRIVER", env.DBDriver, file.DBDriver)
	out.DBDSN = pick("DB_DSN", env.DBDSN, file.DBDSN)
	out.SeedData = pickBool("SEED_DATA", env.SeedData, file.SeedData)
	out.ReadTimeout = pick("READ_TIMEOUT", env.ReadTimeout, file.ReadTimeout)
	out.WriteTimeout = pick("WRITE_TIMEOUT", env.WriteTimeout, file.WriteTimeout)
	out.ShutdownTimeout = pick("SHUTDOWN_TIMEOUT", env.ShutdownTimeout, file.ShutdownTimeout)
	out.RateLimitEnabled = pickBool("RATE_LIMIT_ENABLED", env.RateLimitEnabled, file.RateLimitEnabled)
	out.RateLimitRPS = pick("RATE_LIMIT_RPS", env.RateLimitRPS, file.RateLimitRPS)
	out.RateLimitBurst = pick("RATE_LIMIT_BURST", env.RateLimitBurst, file.RateLimitBurst)
	out.TracingEnabled = pickBool("TRACING_ENABLED", env.TracingEnabled, file.TracingEnabled)
	return out
}

// pick: el valor del archivo gana solo si la env var no está y el archivo lo define.
func pick[T comparable](key string, fromEnv, fromFile T) T {
	var zero T
	if _, set := os.LookupEnv(key); set || fromFile == zero {
		return fromEnv
	}
	return fromFile
}

func pickBool(key string, fromEnv bool, fromFile *bool) bool {
	if _, set := os.LookupEnv(key); set || fromFile == nil {
		return fromEnv
	}
	return *fromFile
}
