package config

import (
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values for DB_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level
	LogFormat    string

	DBDriver      string
	SQLitePath    string
	DatabaseURL   string
	EnableDBCheck bool

	APIPrefix          string
	CORSAllowedOrigins []string
	RateLimit          string
	StatisticsMonths   int

	// Domain events; publishing is disabled when AMQPURL is empty.
	AMQPURL      string
	AMQPExchange string

	// Product analytics; disabled when PosthogAPIKey is empty.
	PosthogAPIKey     string
	PosthogEndpoint   string
	PosthogDistinctID string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "5000")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("SQLITE_PATH", "data/tabungan.db")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("API_PREFIX", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("STATISTICS_MONTHS", 6)
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "savings.events")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "")
	v.SetDefault("POSTHOG_DISTINCT_ID", "savings-tracker")
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	setDefaults(v)

	cfg := &Config{
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		LogFormat:         strings.ToLower(v.GetString("LOG_FORMAT")),
		DBDriver:          strings.ToLower(v.GetString("DB_DRIVER")),
		SQLitePath:        v.GetString("SQLITE_PATH"),
		DatabaseURL:       v.GetString("PGSQL_URL"),
		EnableDBCheck:     v.GetBool("ENABLE_DB_CHECK"),
		APIPrefix:         normalizePrefix(v.GetString("API_PREFIX")),
		RateLimit:         v.GetString("RATE_LIMIT"),
		StatisticsMonths:  v.GetInt("STATISTICS_MONTHS"),
		AMQPURL:           v.GetString("AMQP_URL"),
		AMQPExchange:      v.GetString("AMQP_EXCHANGE"),
		PosthogAPIKey:     v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:   v.GetString("POSTHOG_ENDPOINT"),
		PosthogDistinctID: v.GetString("POSTHOG_DISTINCT_ID"),
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
		slog.Warn("PORT not set, using default", slog.String("port", cfg.Port))
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		slog.Warn("Invalid LOG_LEVEL, defaulting to info", slog.String("value", v.GetString("LOG_LEVEL")))
		cfg.LogLevel = slog.LevelInfo
	}

	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		slog.Warn("Invalid LOG_FORMAT, defaulting to json", slog.String("value", cfg.LogFormat))
		cfg.LogFormat = "json"
	}

	switch cfg.DBDriver {
	case DriverSQLite, DriverPostgres:
	case "pgsql", "postgresql":
		cfg.DBDriver = DriverPostgres
	default:
		slog.Warn("Unknown DB_DRIVER, defaulting to sqlite", slog.String("value", cfg.DBDriver))
		cfg.DBDriver = DriverSQLite
	}
	if cfg.DBDriver == DriverPostgres && cfg.DatabaseURL == "" {
		slog.Warn("DB_DRIVER is postgres but PGSQL_URL is not set")
	}

	if cfg.StatisticsMonths < 1 || cfg.StatisticsMonths > 24 {
		slog.Warn("STATISTICS_MONTHS out of range 1-24, defaulting to 6", slog.Int("value", cfg.StatisticsMonths))
		cfg.StatisticsMonths = 6
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	return cfg
}

// AllowAllOrigins reports whether CORS is open to any origin.
func (c *Config) AllowAllOrigins() bool {
	for _, o := range c.CORSAllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

// normalizePrefix turns "api/", "/api/" or "/api" into "/api" and "/" into "".
func normalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}
