package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type AIConfig struct {
	Provider string `yaml:"provider"` // "claude" or "openai"
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
}

type Config struct {
	UseCache  *bool     `yaml:"use_cache,omitempty"`
	OutputDir string    `yaml:"output_dir,omitempty"`
	AI        *AIConfig `yaml:"ai,omitempty"`
}

// AIEnabled returns true if AI is configured with a valid API key.
func (c *Config) AIEnabled() bool {
	if c.AI == nil {
		return false
	}
	return c.AIKey() != ""
}

// AIKey returns the resolved API key (config or env var).
func (c *Config) AIKey() string {
	if c.AI != nil && c.AI.APIKey != "" {
		return c.AI.APIKey
	}
	return os.Getenv("SOULSCRIBE_AI_KEY")
}

// CacheEnabled returns the default cache preference, true unless disabled.
func (c *Config) CacheEnabled() bool {
	if c.UseCache == nil {
		return true
	}
	return *c.UseCache
}

// DownloadDir returns the directory saved posts go to, defaulting to the
// current directory.
func (c *Config) DownloadDir() string {
	if c.OutputDir == "" {
		return "."
	}
	return c.OutputDir
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "soulscribe", "config.yaml")
}

func CachePath() string {
	return filepath.Join(xdg.CacheHome, "soulscribe", "soulscribe.db")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if cfg.AI != nil {
		switch cfg.AI.Provider {
		case "", "claude", "openai":
		default:
			return fmt.Errorf("ai: unknown provider %q (valid: claude, openai)", cfg.AI.Provider)
		}
	}
	if cfg.OutputDir != "" {
		if info, err := os.Stat(cfg.OutputDir); err == nil && !info.IsDir() {
			return fmt.Errorf("output_dir %q is not a directory", cfg.OutputDir)
		}
	}
	return nil
}
