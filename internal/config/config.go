package config

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"fragment-cache/internal/models"
)

// Config represents the main configuration structure
type Config struct {
	Store  StoreConfig  `yaml:"store"`
	Engine EngineConfig `yaml:"engine"`
	Server ServerConfig `yaml:"server"`
}

// StoreConfig configures the in-memory fragment store
type StoreConfig struct {
	// BudgetBytes caps the aggregate retained fragment size.
	BudgetBytes int64 `yaml:"budget_bytes"`
	// SweepInterval is how often the background sweep removes expired
	// entries. Zero disables the timer; expired entries are still removed
	// lazily on access.
	SweepInterval models.Duration `yaml:"sweep_interval"`
}

// EngineConfig configures the cache engine
type EngineConfig struct {
	// DefaultFreshFor is the absolute expiration applied to regions that
	// declare no expiration option.
	DefaultFreshFor models.Duration `yaml:"default_fresh_for"`
}

// ServerConfig configures the HTTP front
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
	// SocketPath, when set, serves on a Unix socket instead of TCP.
	SocketPath string `yaml:"socket_path"`
	// OriginTimeout bounds one upstream render, and with it the whole
	// population episode.
	OriginTimeout models.Duration `yaml:"origin_timeout"`
}

// LoadConfig loads configuration from file path
func LoadConfig(configPath string, logger *zap.Logger) (*Config, error) {
	logger.Info("Loading configuration", zap.String("path", configPath))

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var config Config
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to decode YAML config: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Store.BudgetBytes <= 0 {
		c.Store.BudgetBytes = 64 << 20 // 64MB
	}
	if c.Store.SweepInterval <= 0 {
		c.Store.SweepInterval = models.Duration(time.Minute)
	}
	if c.Engine.DefaultFreshFor <= 0 {
		c.Engine.DefaultFreshFor = models.Duration(models.DefaultFreshFor)
	}
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = ":8080"
	}
	if c.Server.OriginTimeout <= 0 {
		c.Server.OriginTimeout = models.Duration(10 * time.Second)
	}
}
