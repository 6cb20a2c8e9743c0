package platform

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the name looked up by FindConfig.
const ConfigFile = ".intervals.yaml"

// Config is the on-disk configuration read by the CLI.
type Config struct {
	Verbose  bool   `yaml:"verbose"`
	Workers  int    `yaml:"workers"`
	Pattern  string `yaml:"pattern"`
	Debounce string `yaml:"debounce"`
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	if cfg.Debounce != "" {
		if _, err := time.ParseDuration(cfg.Debounce); err != nil {
			return Config{}, fmt.Errorf("invalid debounce %q: %w", cfg.Debounce, err)
		}
	}
	return cfg, nil
}

// Options converts the file configuration into functional options.
func (c Config) Options() []Option {
	opts := []Option{
		WithWorkers(c.Workers),
		WithSheetPattern(c.Pattern),
	}
	if d, err := time.ParseDuration(c.Debounce); err == nil {
		opts = append(opts, WithDebounce(d))
	}
	return opts
}
