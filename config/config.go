package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Log       LogConfig       `yaml:"log"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Sample    SampleConfig    `yaml:"sample"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type DashboardConfig struct {
	ItemsPerPage int `yaml:"items_per_page"`
}

type SampleConfig struct {
	Size int   `yaml:"size"`
	Seed int64 `yaml:"seed"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Dashboard.ItemsPerPage <= 0 {
		c.Dashboard.ItemsPerPage = 5
	}
	if c.Sample.Size <= 0 {
		c.Sample.Size = 100
	}
}
