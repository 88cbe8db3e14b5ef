package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"spamsift/internal/domain"
)

// Config holds all configuration for the spamsift tool.
type Config struct {
	Labels    LabelsConfig           `yaml:"labels"`
	Tokenizer domain.TokenizerConfig `yaml:"tokenizer"`
	Train     TrainConfig            `yaml:"train"`
	Serve     ServeConfig            `yaml:"serve"`
	Logging   LoggingConfig          `yaml:"logging"`
}

// LabelsConfig names the binary label pair. The positive label is the one
// metrics and explanations treat as the target class.
type LabelsConfig struct {
	Positive string `yaml:"positive"`
	Negative string `yaml:"negative"`
}

// TrainConfig holds dataset discovery configuration.
type TrainConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// ServeConfig holds inference service configuration.
type ServeConfig struct {
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	CacheSize       int    `yaml:"cache_size"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
	DetectLanguage  bool   `yaml:"detect_language"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Labels: LabelsConfig{
			Positive: "spam",
			Negative: "ham",
		},
		Tokenizer: domain.DefaultTokenizerConfig(),
		Train: TrainConfig{
			Includes: []string{"**/*.csv"},
			Excludes: []string{"**/.spamsift/**"},
		},
		Serve: ServeConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			CacheSize:       256,
			CacheTTLSeconds: 300,
			DetectLanguage:  true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for spamsift.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "spamsift.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".spamsift", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// RegistryPath returns the path to the model registry database.
func RegistryPath(dir string) string {
	return filepath.Join(dir, ".spamsift", "models.db")
}

// EnsureStateDir ensures the .spamsift directory exists.
func EnsureStateDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".spamsift"), 0755)
}
