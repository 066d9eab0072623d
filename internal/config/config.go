package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Email     EmailConfig
	Logging   LoggingConfig
	RateLimit RateLimitConfig
	Guestbook GuestbookConfig
}

type ServerConfig struct {
	Port           string
	AppEnv         string
	AllowedOrigins []string
	MaxBodyBytes   int64
}

type DatabaseConfig struct {
	URI  string
	Name string
}

type EmailConfig struct {
	ResendAPIKey string
	From         string
	To           string
	Timeout      time.Duration
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type GuestbookConfig struct {
	// ApprovedOnly hides unmoderated entries from the public listing.
	ApprovedOnly bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; variables already set win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("PORT", "5000")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "*")
	v.SetDefault("MAX_BODY_BYTES", 64*1024)
	v.SetDefault("DB_NAME", "portfolio")
	v.SetDefault("EMAIL_TIMEOUT_SECONDS", 10)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT_RPS", 0.2)
	v.SetDefault("RATE_LIMIT_BURST", 5)
	v.SetDefault("GUESTBOOK_APPROVED_ONLY", false)

	v.AutomaticEnv()

	from := v.GetString("FROM_EMAIL")
	to := v.GetString("EMAIL_TO")
	if to == "" {
		to = from
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			AppEnv:         v.GetString("APP_ENV"),
			AllowedOrigins: splitList(v.GetString("ALLOWED_CORS_ORIGINS")),
			MaxBodyBytes:   v.GetInt64("MAX_BODY_BYTES"),
		},
		Database: DatabaseConfig{
			URI:  v.GetString("MONGODB_URI"),
			Name: v.GetString("DB_NAME"),
		},
		Email: EmailConfig{
			ResendAPIKey: v.GetString("RESEND_API_KEY"),
			From:         from,
			To:           to,
			Timeout:      time.Duration(v.GetInt("EMAIL_TIMEOUT_SECONDS")) * time.Second,
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
		Guestbook: GuestbookConfig{
			ApprovedOnly: v.GetBool("GUESTBOOK_APPROVED_ONLY"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_CORS_ORIGINS is required")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}
	if c.Database.URI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.Email.ResendAPIKey != "" && c.Email.From == "" {
		return fmt.Errorf("FROM_EMAIL is required when RESEND_API_KEY is set")
	}
	if c.Email.Timeout <= 0 {
		return fmt.Errorf("EMAIL_TIMEOUT_SECONDS must be positive")
	}
	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development"
}

// EmailEnabled reports whether outbound email goes to the provider.
func (c *Config) EmailEnabled() bool {
	return c.Email.ResendAPIKey != ""
}

func splitList(s string) []string {
	out := []string{}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
