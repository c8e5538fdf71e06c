package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	App       AppConfig       `yaml:"app"`
	Segmenter SegmenterConfig `yaml:"segmenter"`
	Kwic      KwicConfig      `yaml:"kwic"`
	Mcp       McpConfig       `yaml:"mcp"`
}

type AppConfig struct {
	Port     int      `yaml:"port"`
	LogLevel string   `yaml:"log_level"`
	LogPaths []string `yaml:"log_paths"`
}

type SegmenterConfig struct {
	ContextSize    int     `yaml:"context_size"`
	TrainingMark   string  `yaml:"training_mark"`
	SmoothingK     float64 `yaml:"smoothing_k"`
	TrainingCorpus string  `yaml:"training_corpus"`
	MaxTextBytes   int     `yaml:"max_text_bytes"`
}

type KwicConfig struct {
	Window int `yaml:"window"`
}

type McpConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

func (m McpConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", m.Host, m.Port)
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads a YAML configuration file. An empty path yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings that cannot be applied.
func (c *Config) Validate() error {
	if c.App.Port < 1 || c.App.Port > 65535 {
		return fmt.Errorf("invalid app port: %d", c.App.Port)
	}
	if c.Mcp.Enabled && (c.Mcp.Port < 1 || c.Mcp.Port > 65535) {
		return fmt.Errorf("invalid mcp port: %d", c.Mcp.Port)
	}
	if c.Segmenter.SmoothingK < 0 {
		return fmt.Errorf("smoothing_k must not be negative, got %f", c.Segmenter.SmoothingK)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.App.Port == 0 {
		c.App.Port = 8080
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if len(c.App.LogPaths) == 0 {
		c.App.LogPaths = []string{"stdout"}
	}
	if c.Segmenter.ContextSize == 0 {
		c.Segmenter.ContextSize = 2
	}
	if c.Segmenter.TrainingMark == "" {
		c.Segmenter.TrainingMark = "+"
	}
	if c.Segmenter.SmoothingK == 0 {
		c.Segmenter.SmoothingK = 1.0
	}
	if c.Segmenter.MaxTextBytes == 0 {
		c.Segmenter.MaxTextBytes = 16 << 20
	}
	if c.Kwic.Window == 0 {
		c.Kwic.Window = 8
	}
	if c.Mcp.Port == 0 {
		c.Mcp.Port = 8081
	}
}
