package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/et-services/quoterelay/internal/logging"
)

// Mail providers
const (
	ProviderMailerSend = "mailersend"
	ProviderResend     = "resend"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment    string   `env:"ENV" envDefault:"development"`
	Port           string   `env:"PORT" envDefault:"8080" validate:"required,numeric"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	MaxBodyBytes   int64    `env:"MAX_BODY_BYTES" envDefault:"10485760" validate:"gt=0"`

	// Logging Configuration
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFile       string `env:"LOG_FILE"`
	LogMaxSize    int    `env:"LOG_MAX_SIZE" envDefault:"100"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAge     int    `env:"LOG_MAX_AGE" envDefault:"7"`
	LogRequests   bool   `env:"LOG_REQUESTS" envDefault:"false"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	Mail Mail
}

// Mail holds the email delivery settings.
type Mail struct {
	Provider  string `env:"MAIL_PROVIDER" envDefault:"mailersend" validate:"oneof=mailersend resend"`
	APIKey    string `env:"MAILERSEND_API_KEY"`
	Endpoint  string `env:"MAILERSEND_API_URL" envDefault:"https://api.mailersend.com/v1/email" validate:"required,url"`
	ResendKey string `env:"RESEND_API_KEY"`
	FromEmail string `env:"MAILERSEND_FROM_EMAIL" envDefault:"info@et-services.co.uk" validate:"required,email"`
	ToEmail   string `env:"MAILERSEND_TO_EMAIL" envDefault:"info@et-services.co.uk" validate:"required,email"`
	FromName  string `env:"MAIL_FROM_NAME" envDefault:"ET Services Website"`
	ToName    string `env:"MAIL_TO_NAME" envDefault:"ET Services"`
}

// Key returns the API key of the selected provider.
func (m Mail) Key() string {
	if m.Provider == ProviderResend {
		return m.ResendKey
	}
	return m.APIKey
}

// Configured reports whether outbound email can be attempted.
func (m Mail) Configured() bool {
	return strings.TrimSpace(m.Key()) != ""
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Logging converts the log settings into a logging.Config.
func (c *Config) Logging() *logging.Config {
	return &logging.Config{
		Level:       c.LogLevel,
		File:        c.LogFile,
		MaxSize:     c.LogMaxSize,
		MaxBackups:  c.LogMaxBackups,
		MaxAge:      c.LogMaxAge,
		LogRequests: c.LogRequests,
	}
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// godotenv never overrides variables already present in the environment
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if _, err := os.Stat(loc); err != nil {
			continue
		}
		if err := godotenv.Load(loc); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", loc, err)
		}
	}

	return Parse()
}

// Parse builds the configuration from the current environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Mail.Provider = strings.ToLower(cfg.Mail.Provider)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the defaulted fields. A missing API key is not an error
// here; the quote handler reports it per request.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return c.Logging().Validate()
}
