package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"github.com/spf13/viper"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config is the process configuration. Values come from, in increasing
// priority: defaults, an optional config.yaml, a .env file and the
// environment.
type Config struct {
	HTTPPort string `mapstructure:"http_port"`
	LogLevel string `mapstructure:"log_level"`

	// Backend selects the registry store: "memory" or "postgres".
	Backend string `mapstructure:"backend"`

	// DatabaseURL, when set, replaces the DB_* settings below.
	DatabaseURL string `mapstructure:"database_url"`

	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	DBSslMode  string `mapstructure:"db_sslmode"`

	ReportSchedule string `mapstructure:"report_schedule"`
	StatsSchedule  string `mapstructure:"stats_schedule"`
}

var defaults = map[string]any{
	"http_port":       "8080",
	"log_level":       "info",
	"backend":         BackendMemory,
	"database_url":    "",
	"db_host":         "localhost",
	"db_port":         "5432",
	"db_user":         "postgres",
	"db_password":     "",
	"db_name":         "logistics",
	"db_sslmode":      "disable",
	"report_schedule": "0 0 0 1 * *",
	"stats_schedule":  "0 * * * * *",
}

// LoadConfig reads config.yaml and .env from dir, both optional, then applies
// environment overrides (HTTP_PORT, BACKEND, DB_HOST, ...).
func LoadConfig(dir string) (Config, error) {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
			return Config{}, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendPostgres:
	default:
		return fmt.Errorf("unknown backend %q, want %q or %q", c.Backend, BackendMemory, BackendPostgres)
	}

	if c.HTTPPort == "" {
		return errors.New("http port is required")
	}

	return nil
}

// DSN is the key/value connection string of the Postgres backend, with every
// value quoted. A postgres:// DatabaseURL is converted with pq.ParseURL.
func (c Config) DSN() (string, error) {
	if c.DatabaseURL != "" {
		dsn, err := pq.ParseURL(c.DatabaseURL)
		if err != nil {
			return "", fmt.Errorf("parse database url: %w", err)
		}
		return dsn, nil
	}

	pairs := []struct{ key, value string }{
		{"host", c.DBHost},
		{"port", c.DBPort},
		{"user", c.DBUser},
		{"password", c.DBPassword},
		{"dbname", c.DBName},
		{"sslmode", c.DBSslMode},
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.key+"="+quoteDSNValue(p.value))
	}
	return strings.Join(parts, " "), nil
}

// quoteDSNValue quotes a key/value DSN value the way pq.ParseURL does, so
// spaces and quotes in passwords survive.
func quoteDSNValue(v string) string {
	return "'" + dsnEscaper.Replace(v) + "'"
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// SlogLevel parses LogLevel, falling back to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
