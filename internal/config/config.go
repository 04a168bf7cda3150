package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ErrorMode selects how domain errors are surfaced over HTTP.
type ErrorMode string

const (
	// ErrorModeStrict maps missing fields to 400 and absent newsletters to 404.
	ErrorModeStrict ErrorMode = "strict"
	// ErrorModeLegacy answers both with a generic 500, matching the original Flask service.
	ErrorModeLegacy ErrorMode = "legacy"
)

// ParseErrorMode returns the mode named by s, falling back to strict for anything unknown.
func ParseErrorMode(s string) ErrorMode {
	switch ErrorMode(strings.ToLower(strings.TrimSpace(s))) {
	case ErrorModeLegacy:
		return ErrorModeLegacy
	default:
		return ErrorModeStrict
	}
}

// DatabaseConfig holds database connection settings.
// Driver selects between a file-resident SQLite store and PostgreSQL.
type DatabaseConfig struct {
	Driver             string
	SQLitePath         string
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Host       string
	Port       string
	Timezone   string
	ErrorMode  ErrorMode
	PrettyJSON bool
	Database   DatabaseConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Host:       getEnv("HOST", ""),
		Port:       getEnv("PORT", "5555"),
		Timezone:   getEnv("APP_TIMEZONE", "UTC"),
		ErrorMode:  ParseErrorMode(getEnv("APP_ERROR_MODE", string(ErrorModeStrict))),
		PrettyJSON: getEnvBool("APP_PRETTY_JSON", true),
		Database: DatabaseConfig{
			Driver:             strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			SQLitePath:         getEnv("DB_SQLITE_PATH", "newsletters.db"),
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
	}
}

// Addr is the listen address for the HTTP server.
func (c *AppConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// Location resolves Timezone, defaulting to UTC when it is empty or unknown.
func (c *AppConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
