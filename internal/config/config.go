package config

import (
	"fmt"
	"os"

	"warehouse-backend/internal/domain"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Engine    EngineConfig    `yaml:"engine"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// EngineConfig contains reservation engine settings
type EngineConfig struct {
	// ConcurrencyControl selects how the availability check-then-insert
	// race is closed: "transaction" or "item_lock".
	ConcurrencyControl string               `yaml:"concurrency_control"`
	Recommendation     RecommendationConfig `yaml:"recommendation"`
}

// RecommendationConfig contains purchase-recommendation scoring policy
type RecommendationConfig struct {
	FrequencyWeight float64 `yaml:"frequency_weight"`
	DaysWeight      float64 `yaml:"days_weight"`
	HighThreshold   int32   `yaml:"high_threshold"`
	MediumThreshold int32   `yaml:"medium_threshold"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	RefreshRecommendations string `yaml:"refresh_recommendations"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	if val := os.Getenv("ENGINE_CONCURRENCY_CONTROL"); val != "" {
		c.Engine.ConcurrencyControl = val
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	// Engine defaults
	if c.Engine.ConcurrencyControl == "" {
		c.Engine.ConcurrencyControl = string(domain.GuardTransaction)
	}
	switch domain.GuardMode(c.Engine.ConcurrencyControl) {
	case domain.GuardTransaction, domain.GuardItemLock:
	default:
		return fmt.Errorf("invalid concurrency_control %q, must be %q or %q",
			c.Engine.ConcurrencyControl, domain.GuardTransaction, domain.GuardItemLock)
	}

	rec := &c.Engine.Recommendation
	if rec.FrequencyWeight == 0 && rec.DaysWeight == 0 {
		rec.FrequencyWeight = 0.6
		rec.DaysWeight = 0.4
	}
	if rec.FrequencyWeight < 0 || rec.DaysWeight < 0 {
		return fmt.Errorf("recommendation weights must not be negative")
	}
	if rec.HighThreshold == 0 {
		rec.HighThreshold = 70
	}
	if rec.MediumThreshold == 0 {
		rec.MediumThreshold = 40
	}
	if rec.MediumThreshold > rec.HighThreshold {
		return fmt.Errorf("medium_threshold %d must not exceed high_threshold %d", rec.MediumThreshold, rec.HighThreshold)
	}

	// Scheduler defaults
	if c.Scheduler.RefreshRecommendations == "" {
		c.Scheduler.RefreshRecommendations = "0 0 6 * * *" // 6 AM UTC
	}

	return nil
}

// GuardMode returns the configured concurrency-control mode.
func (c *Config) GuardMode() domain.GuardMode {
	return domain.GuardMode(c.Engine.ConcurrencyControl)
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
