package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
// Environment variables override the file; flags override both.
type Config struct {
	Database string     `yaml:"database" env:"TASKTRACK_DB" env-default:"tasktrack.db"`
	StateDir string     `yaml:"state_dir" env:"TASKTRACK_STATE_DIR"`
	LogLevel string     `yaml:"log_level" env:"TASKTRACK_LOG_LEVEL" env-default:"info"`
	Seed     SeedConfig `yaml:"seed"`
}

// SeedConfig holds the population sizes used by tasktrack-seed
type SeedConfig struct {
	Users int `yaml:"users" env:"TASKTRACK_SEED_USERS" env-default:"12"`
	Tasks int `yaml:"tasks" env:"TASKTRACK_SEED_TASKS" env-default:"40"`
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		configPath = ""
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from path; a missing or empty path yields defaults plus env overrides
func LoadFrom(path string) (*Config, error) {
	var config Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		}
	}

	if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	config.applyDefaults()

	return &config, nil
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tasktrack", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tasktrack", "config.yaml"), nil
}

// LogDir is where log files are written
func (c *Config) LogDir() string {
	return filepath.Join(c.StateDir, "logs")
}

// SlogLevel parses LogLevel, defaulting to info for unknown values
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// applyDefaults fills in values that have no static default
func (c *Config) applyDefaults() {
	if c.StateDir == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			c.StateDir = filepath.Join(homeDir, ".tasktrack")
		} else {
			c.StateDir = ".tasktrack"
		}
	}
	if strings.HasPrefix(c.StateDir, "~/") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			c.StateDir = filepath.Join(homeDir, c.StateDir[2:])
		}
	}
	if c.Seed.Users < 0 {
		c.Seed.Users = 0
	}
	if c.Seed.Tasks < 0 {
		c.Seed.Tasks = 0
	}
}
