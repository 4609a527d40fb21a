package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"todo-me/pkg/nlparse"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Database DatabaseConfig

	// Parsing
	Parser     ParserConfig
	Recurrence RecurrenceConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	// Path is the sqlite file; ":memory:" keeps everything in process.
	Path string
}

// ParserConfig holds the defaults applied when a request carries no parser options.
type ParserConfig struct {
	DefaultTimezone string
	StartOfWeek     int
	DateFormat      nlparse.DateFormat
}

type RecurrenceConfig struct {
	CacheSize int
	CacheTTL  time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Database.Path = viper.GetString("database.path")

	// Parsing
	cfg.Parser.DefaultTimezone = viper.GetString("parser.default_timezone")
	cfg.Parser.StartOfWeek = viper.GetInt("parser.start_of_week")
	cfg.Parser.DateFormat = nlparse.DateFormat(strings.ToUpper(viper.GetString("parser.date_format")))
	cfg.Recurrence.CacheSize = viper.GetInt("recurrence.cache_size")
	cfg.Recurrence.CacheTTL = viper.GetDuration("recurrence.cache_ttl")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("database.path", "todo-me.db")
	viper.SetDefault("parser.default_timezone", "UTC")
	viper.SetDefault("parser.start_of_week", 0)
	viper.SetDefault("parser.date_format", string(nlparse.FormatMDY))
	viper.SetDefault("recurrence.cache_size", 1024)
	viper.SetDefault("recurrence.cache_ttl", "24h")
}

// validate rejects parser defaults that every request would otherwise fail on.
func validate(cfg *Config) error {
	if cfg.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if _, err := nlparse.NewDateParser(nlparse.DateOptions{
		Timezone:    cfg.Parser.DefaultTimezone,
		StartOfWeek: cfg.Parser.StartOfWeek,
		Format:      cfg.Parser.DateFormat,
	}); err != nil {
		return fmt.Errorf("invalid parser config: %w", err)
	}
	if cfg.Recurrence.CacheSize <= 0 {
		return fmt.Errorf("recurrence.cache_size must be positive, got %d", cfg.Recurrence.CacheSize)
	}
	return nil
}
