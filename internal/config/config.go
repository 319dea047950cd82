package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is used when no config file is given on the command line
const DefaultPath = "configs/config.yaml"

// Config represents the application configuration
type Config struct {
	Cache    CacheConfig    `yaml:"cache"`
	Download DownloadConfig `yaml:"download"`
	Log      LogConfig      `yaml:"log"`
}

// CacheConfig contains cache location configuration
type CacheConfig struct {
	DirName     string `yaml:"dir_name"`
	ExternalDir string `yaml:"external_dir"` // preferred base, used when it exists
	InternalDir string `yaml:"internal_dir"` // fallback base
}

// DownloadConfig contains network related configuration
type DownloadConfig struct {
	Timeout    string `yaml:"timeout"` // "0s" disables the timeout
	BufferSize int    `yaml:"buffer_size"`
	UserAgent  string `yaml:"user_agent"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"` // "text" or "json"
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"` // megabytes
	MaxBackups int    `yaml:"max_backups"`
	Compress   bool   `yaml:"compress"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// Load loads configuration from a YAML file
func Load(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	config.applyDefaults()

	return &config, nil
}

// LoadOrDefault behaves like Load, but returns the default configuration
// when the file does not exist
func LoadOrDefault(path string) (*Config, error) {
	config, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return config, err
}

func (c *Config) applyDefaults() {
	if c.Cache.DirName == "" {
		c.Cache.DirName = "cached_images"
	}
	if c.Download.Timeout == "" {
		c.Download.Timeout = "0s"
	}
	if c.Download.BufferSize == 0 {
		c.Download.BufferSize = 8192
	}
	if c.Download.UserAgent == "" {
		c.Download.UserAgent = "cachedl"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Log.MaxSize == 0 {
		c.Log.MaxSize = 10
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = 3
	}
}

// GetTimeout parses and returns the download timeout
func (c *Config) GetTimeout() (time.Duration, error) {
	return time.ParseDuration(c.Download.Timeout)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Cache.DirName == "" {
		return fmt.Errorf("cache dir_name is required")
	}

	timeout, err := c.GetTimeout()
	if err != nil {
		return fmt.Errorf("invalid download timeout format: %w", err)
	}
	if timeout < 0 {
		return fmt.Errorf("download timeout must not be negative, got: %s", c.Download.Timeout)
	}

	if c.Download.BufferSize <= 0 {
		return fmt.Errorf("invalid buffer size: %d", c.Download.BufferSize)
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log format must be 'text' or 'json', got: %s", c.Log.Format)
	}

	return nil
}
