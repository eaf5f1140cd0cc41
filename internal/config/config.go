package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/riskibarqy/series-points/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv          string        `env:"APP_ENV" envDefault:"dev"`
	ServiceName     string        `env:"APP_SERVICE_NAME" envDefault:"series-points-api"`
	ServiceVersion  string        `env:"APP_SERVICE_VERSION" envDefault:"dev"`
	HTTPAddr        string        `env:"APP_HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"APP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"APP_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"APP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogLevel        logging.Level `env:"APP_LOG_LEVEL" envDefault:"info"`

	DBURL                   string `env:"DB_URL" envDefault:"sqlite://league.db"`
	DBMaxOpenConns          int    `env:"DB_MAX_OPEN_CONNS" envDefault:"0"`
	DBDisablePreparedBinary bool   `env:"DB_DISABLE_PREPARED_BINARY_RESULT" envDefault:"true"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	MetricsEnabled     bool     `env:"METRICS_ENABLED" envDefault:"true"`
	// Defaults to off in prod when unset.
	SwaggerEnabled *bool `env:"SWAGGER_ENABLED"`

	PprofEnabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	PprofAddr    string `env:"PPROF_ADDR" envDefault:":6060"`

	UptraceEnabled bool   `env:"UPTRACE_ENABLED" envDefault:"false"`
	UptraceDSN     string `env:"UPTRACE_DSN"`

	PyroscopeEnabled       bool          `env:"PYROSCOPE_ENABLED" envDefault:"false"`
	PyroscopeServerAddress string        `env:"PYROSCOPE_SERVER_ADDRESS"`
	PyroscopeAppName       string        `env:"PYROSCOPE_APP_NAME"`
	PyroscopeAuthToken     string        `env:"PYROSCOPE_AUTH_TOKEN"`
	PyroscopeUploadRate    time.Duration `env:"PYROSCOPE_UPLOAD_RATE" envDefault:"15s"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Swagger reports whether the OpenAPI document and docs page are served.
func (c Config) Swagger() bool {
	if c.SwaggerEnabled != nil {
		return *c.SwaggerEnabled
	}
	return c.AppEnv != EnvProd
}

func (c *Config) normalize() error {
	appEnv, err := parseAppEnv(c.AppEnv)
	if err != nil {
		return err
	}
	c.AppEnv = appEnv

	c.HTTPAddr = strings.TrimSpace(c.HTTPAddr)
	if c.HTTPAddr == "" {
		return fmt.Errorf("APP_HTTP_ADDR cannot be empty")
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("APP_READ_TIMEOUT must be > 0")
	}
	if c.WriteTimeout <= 0 {
		return fmt.Errorf("APP_WRITE_TIMEOUT must be > 0")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("APP_SHUTDOWN_TIMEOUT must be > 0")
	}

	c.DBURL = strings.TrimSpace(c.DBURL)
	if c.DBURL == "" {
		return fmt.Errorf("DB_URL cannot be empty")
	}
	if c.DBMaxOpenConns < 0 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be >= 0")
	}

	c.CORSAllowedOrigins = trimCSV(c.CORSAllowedOrigins)
	if len(c.CORSAllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	c.PprofAddr = strings.TrimSpace(c.PprofAddr)
	if c.PprofEnabled && c.PprofAddr == "" {
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	c.UptraceDSN = strings.TrimSpace(c.UptraceDSN)
	if c.UptraceEnabled && c.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	c.PyroscopeServerAddress = strings.TrimSpace(c.PyroscopeServerAddress)
	c.PyroscopeAppName = strings.TrimSpace(c.PyroscopeAppName)
	if c.PyroscopeAppName == "" {
		c.PyroscopeAppName = c.ServiceName
	}
	if c.PyroscopeEnabled {
		if c.PyroscopeServerAddress == "" {
			return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
		}
		if c.PyroscopeAppName == "" {
			return fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
		}
	}
	if c.PyroscopeUploadRate <= 0 {
		return fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	return nil
}

func trimCSV(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
