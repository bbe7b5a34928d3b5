package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the top-level service configuration loaded from config.toml
type Config struct {
	Server         ServerConfig   `toml:"server"`
	Database       DatabaseConfig `toml:"database"`
	Redis          RedisConfig    `toml:"redis"`
	Logs           LogsConfig     `toml:"logs"`
	Metrics        MetricsConfig  `toml:"metrics"`
	CatalogService ClientConfig   `toml:"catalog_service"`
	NotifyService  ClientConfig   `toml:"notify_service"`
	Session        SessionConfig  `toml:"session"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds the lib/pq connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig holds session store settings
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// LogsConfig holds logger settings
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig holds Prometheus settings
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ClientConfig holds settings for an outbound HTTP integration
type ClientConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

// SessionConfig holds browsing session settings
type SessionConfig struct {
	TTL int `toml:"ttl"` // seconds, lifetime of idle draft/cart state
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = 86400 // one day
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	return &cfg, nil
}
