// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values for DB_DRIVER.
const (
	DBDriverMemory   = "memory"
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"
)

// Config holds all configuration for the application.
type Config struct {
	// Server Configuration
	GinMode            string        `mapstructure:"GIN_MODE"`
	ServerHost         string        `mapstructure:"SERVER_HOST"`
	ServerPort         string        `mapstructure:"PORT"`
	ServerTimeout      time.Duration `mapstructure:"-"`
	CORSAllowedOrigins []string      `mapstructure:"-"`

	// Database Configuration
	DBDriver          string        `mapstructure:"DB_DRIVER"`
	SQLitePath        string        `mapstructure:"SQLITE_PATH"`
	DBHost            string        `mapstructure:"DB_HOST"`
	DBPort            string        `mapstructure:"DB_PORT"`
	DBUser            string        `mapstructure:"DB_USER"`
	DBPassword        string        `mapstructure:"DB_PASSWORD"`
	DBName            string        `mapstructure:"DB_NAME"`
	DBSSLMode         string        `mapstructure:"DB_SSL_MODE"`
	DBTimezone        string        `mapstructure:"DB_TIMEZONE"`
	DBMaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBMaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBConnMaxLifetime time.Duration `mapstructure:"-"`

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Catalog & pages
	DefaultProfileSlug string        `mapstructure:"DEFAULT_PROFILE_SLUG"`
	KakaoChannelID     string        `mapstructure:"KAKAO_CHANNEL_ID"`
	ScrollIdleDelay    time.Duration `mapstructure:"-"`

	// Admin review
	AdminReviewDelay    time.Duration `mapstructure:"-"`
	AdminDigestSchedule string        `mapstructure:"ADMIN_DIGEST_SCHEDULE"`
	AdminEmails         []string      `mapstructure:"-"`
	AdminAuthDisabled   bool          `mapstructure:"ADMIN_AUTH_DISABLED"`
	AdminTokenCacheTTL  time.Duration `mapstructure:"-"`

	// Firebase Configuration (optional, enables admin authentication)
	FirebaseServiceAccountKeyPath string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_KEY_PATH"`
	FirebaseProjectID             string `mapstructure:"FIREBASE_PROJECT_ID"`

	// Elasticsearch Configuration (optional, empty means in-memory search)
	ElasticsearchURL string `mapstructure:"ELASTICSEARCH_URL"`
}

// IsRelease reports whether gin runs in release mode.
func (c *Config) IsRelease() bool {
	return c.GinMode == "release"
}

// PostgresDSN builds the GORM postgres DSN from the individual DB_* settings.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode, c.DBTimezone)
}

// Load attempts to load configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("PORT", "5000")
	v.SetDefault("SERVER_TIMEOUT_SECONDS", 30)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("DB_DRIVER", DBDriverMemory)
	v.SetDefault("SQLITE_PATH", "teeup.db")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "password")
	v.SetDefault("DB_NAME", "teeup_db")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("DB_CONN_MAX_LIFETIME_MINUTES", 60)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("DEFAULT_PROFILE_SLUG", "elliot-kim")
	v.SetDefault("KAKAO_CHANNEL_ID", "")
	v.SetDefault("SCROLL_IDLE_DELAY_MS", 1000)

	v.SetDefault("ADMIN_REVIEW_DELAY_MS", 100)
	v.SetDefault("ADMIN_DIGEST_SCHEDULE", "@daily")
	v.SetDefault("ADMIN_EMAILS", "")
	v.SetDefault("ADMIN_AUTH_DISABLED", false)
	v.SetDefault("ADMIN_TOKEN_CACHE_SECONDS", 300)

	v.SetDefault("FIREBASE_PROJECT_ID", "")
	v.SetDefault("FIREBASE_SERVICE_ACCOUNT_KEY_PATH", "")

	v.SetDefault("ELASTICSEARCH_URL", "")

	v.AutomaticEnv()
	return v
}

// FromViper builds and validates a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// Duration fields are configured as plain integers and skipped by Unmarshal.
	cfg.ServerTimeout = time.Duration(v.GetInt("SERVER_TIMEOUT_SECONDS")) * time.Second
	cfg.DBConnMaxLifetime = time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME_MINUTES")) * time.Minute
	cfg.ScrollIdleDelay = time.Duration(v.GetInt("SCROLL_IDLE_DELAY_MS")) * time.Millisecond
	cfg.AdminReviewDelay = time.Duration(v.GetInt("ADMIN_REVIEW_DELAY_MS")) * time.Millisecond
	cfg.AdminTokenCacheTTL = time.Duration(v.GetInt("ADMIN_TOKEN_CACHE_SECONDS")) * time.Second

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.AdminEmails = splitList(strings.ToLower(v.GetString("ADMIN_EMAILS")))
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	port, err := strconv.Atoi(c.ServerPort)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("PORT must be a valid TCP port, got %q", c.ServerPort)
	}
	switch c.DBDriver {
	case DBDriverMemory, DBDriverSQLite, DBDriverPostgres:
	default:
		return fmt.Errorf("DB_DRIVER must be one of memory, sqlite, postgres, got %q", c.DBDriver)
	}
	if c.ServerTimeout < 0 || c.ScrollIdleDelay < 0 || c.AdminReviewDelay < 0 || c.AdminTokenCacheTTL < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	if strings.TrimSpace(c.DefaultProfileSlug) == "" {
		return fmt.Errorf("DEFAULT_PROFILE_SLUG must not be empty")
	}
	if c.AdminAuthDisabled && c.IsRelease() {
		return fmt.Errorf("ADMIN_AUTH_DISABLED cannot be used with GIN_MODE=release")
	}
	if c.FirebaseServiceAccountKeyPath != "" {
		if _, err := os.Stat(c.FirebaseServiceAccountKeyPath); os.IsNotExist(err) {
			return fmt.Errorf("firebase service account key file specified in FIREBASE_SERVICE_ACCOUNT_KEY_PATH (%s) not found", c.FirebaseServiceAccountKeyPath)
		}
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
