package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Jobs      JobsConfig
	App       AppConfig

	// Warnings collects non-fatal problems found while loading, e.g. an
	// unparsable integer that fell back to its default. The caller logs them
	// once a logger exists.
	Warnings []string
}

type ServerConfig struct {
	Port               string
	RequestTimeout     time.Duration
	CORSAllowedOrigins []string
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	Migrate      bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type JobsConfig struct {
	OrphanAuditSchedule string
}

type AppConfig struct {
	Title       string
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	var warnings []string

	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		warnings = append(warnings, "no .env file found, using environment variables")
	}

	l := &loader{}
	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "3000"),
			RequestTimeout:     l.duration("REQUEST_TIMEOUT", 10*time.Second),
			CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         l.int("DB_PORT", 5432),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Name:         getEnv("DB_NAME", "color_picker"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: l.int("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: l.int("DB_MAX_IDLE_CONNS", 5),
			Migrate:      l.bool("DB_MIGRATE", true),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       l.int("REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			RPS:   l.float("RATE_LIMIT_RPS", 0),
			Burst: l.int("RATE_LIMIT_BURST", 20),
		},
		Jobs: JobsConfig{
			OrphanAuditSchedule: getEnv("ORPHAN_AUDIT_SCHEDULE", ""),
		},
		App: AppConfig{
			Title:       "Color Picker Backend",
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}
	cfg.Warnings = append(warnings, l.warnings...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}

	if c.RateLimit.RPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must not be negative")
	}

	if c.Jobs.OrphanAuditSchedule != "" {
		if _, err := ScheduleParser.Parse(c.Jobs.OrphanAuditSchedule); err != nil {
			return fmt.Errorf("ORPHAN_AUDIT_SCHEDULE is invalid: %w", err)
		}
	}

	return nil
}

// ScheduleParser accepts the same six-field (seconds first) expressions as
// cron.New(cron.WithSeconds()).
var ScheduleParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

type loader struct {
	warnings []string
}

func (l *loader) warn(key, raw string, def any) {
	l.warnings = append(l.warnings, fmt.Sprintf("invalid value %q for %s, using default: %v", raw, key, def))
}

func (l *loader) int(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		l.warn(key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func (l *loader) float(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		l.warn(key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func (l *loader) bool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		l.warn(key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func (l *loader) duration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		l.warn(key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
