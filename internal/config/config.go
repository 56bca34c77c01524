package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string `mapstructure:"env"`          // current application environment (local, dev, production etc)
	TelegramAPIToken string `mapstructure:"-"`            // Telegram API token loaded from environment
	BotDebug         bool   `mapstructure:"bot_debug"`    // log raw Bot API traffic
	CatalogPath      string `mapstructure:"catalog_path"` // JSON catalog overriding the built-in herd
	ImagesDir        string `mapstructure:"images_dir"`   // directory holding the cow photos
	Quiz             Quiz   `mapstructure:"quiz"`         // quiz behaviour section
	DB               DB     `mapstructure:"database"`     // database configuration section
}

// Quiz contains round-related parameters.
type Quiz struct {
	Seed            int64         `mapstructure:"seed"`             // random seed, 0 seeds from the clock
	RoundTTL        time.Duration `mapstructure:"round_ttl"`        // idle time after which a round is forgotten
	CleanupSchedule string        `mapstructure:"cleanup_schedule"` // cron spec for evicting idle rounds
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Enabled reports whether a database is configured. Without one, users
// are tracked in memory.
func (db DB) Enabled() bool {
	return db.URL != ""
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	return load("./config")
}

func load(configPaths ...string) (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("bot_debug", false)
	v.SetDefault("catalog_path", "")
	v.SetDefault("images_dir", "assets/images")
	v.SetDefault("quiz.seed", 0)
	v.SetDefault("quiz.round_ttl", "24h")
	v.SetDefault("quiz.cleanup_schedule", "@every 10m")
	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.max_conn_lifetime", "30m")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, fmt.Errorf("%w: TELEGRAM_API_TOKEN", ErrMissingEnvironmentVariables)
	}

	// The database is optional.
	cfg.DB.URL = v.GetString("database_url")

	if cfg.Quiz.RoundTTL <= 0 {
		return nil, fmt.Errorf("quiz.round_ttl must be positive, got %s", cfg.Quiz.RoundTTL)
	}

	return &cfg, nil
}
