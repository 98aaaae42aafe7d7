package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "leesbaar.yaml"
	// UserConfigDir is the directory for user-level config
	UserConfigDir = ".config/leesbaar"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"
	// EnvConfigFile names an extra config file applied last
	EnvConfigFile = "LEESBAAR_CONFIG"
)

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger   *slog.Logger
	homeDir  string
	startDir string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithHomeDir overrides the directory the user config is looked up in.
func WithHomeDir(dir string) LoaderOption {
	return func(l *Loader) {
		l.homeDir = dir
	}
}

// WithStartDir overrides the directory the project config search starts from.
func WithStartDir(dir string) LoaderOption {
	return func(l *Loader) {
		l.startDir = dir
	}
}

// NewLoader creates a new configuration loader
func NewLoader(logger *slog.Logger, opts ...LoaderOption) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Loader{logger: logger}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. User config (~/.config/leesbaar/config.yaml)
// 3. Project config (leesbaar.yaml in current or parent directories)
// 4. The file named by LEESBAAR_CONFIG
//
// Each layer only overrides the keys it sets.
func (l *Loader) Load() (*Config, error) {
	// Start with defaults
	config := DefaultConfig()

	// Load user config
	if userConfigPath := l.userConfigPath(); userConfigPath != "" {
		if err := loadLayer(config, userConfigPath); err == nil {
			l.logger.Debug("Loaded user config", slog.String("path", userConfigPath))
		} else if !errors.Is(err, os.ErrNotExist) {
			l.logger.Warn("Failed to load user config", slog.String("path", userConfigPath), slog.String("error", err.Error()))
		}
	}

	// Load project config
	projectConfigPath := l.findProjectConfig()
	if projectConfigPath != "" {
		if err := loadLayer(config, projectConfigPath); err == nil {
			l.logger.Debug("Loaded project config", slog.String("path", projectConfigPath))
		} else {
			l.logger.Warn("Failed to load project config", slog.String("path", projectConfigPath), slog.String("error", err.Error()))
		}
	} else {
		l.logger.Debug("No project config found")
	}

	// Explicit override; failing to read it is an error
	if envPath := os.Getenv(EnvConfigFile); envPath != "" {
		if err := loadLayer(config, envPath); err != nil {
			return nil, err
		}
		l.logger.Debug("Loaded config from environment", slog.String("path", envPath))
	}

	// Validate final config
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// loadLayer decodes path over a copy of config and keeps the result only when
// the whole file decodes; a rejected layer leaves config untouched.
func loadLayer(config *Config, path string) error {
	next := *config
	if err := loadInto(&next, path); err != nil {
		return err
	}
	*config = next
	return nil
}

// EnsureUserConfig creates the user config file with defaults if it doesn't exist
func (l *Loader) EnsureUserConfig() error {
	userConfigPath := l.userConfigPath()

	// Check if it already exists
	if _, err := os.Stat(userConfigPath); err == nil {
		return nil // Already exists
	}

	// Create default config
	config := DefaultConfig()
	if err := config.SaveToFile(userConfigPath); err != nil {
		return err
	}

	l.logger.Info("Created default user config", slog.String("path", userConfigPath))
	return nil
}

// userConfigPath returns the path to the user config file
func (l *Loader) userConfigPath() string {
	home := l.homeDir
	if home == "" {
		var err error
		if home, err = os.UserHomeDir(); err != nil {
			return ""
		}
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

// findProjectConfig searches for leesbaar.yaml in current and parent directories
func (l *Loader) findProjectConfig() string {
	dir := l.startDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return ""
		}
		dir = cwd
	}

	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			break
		}
		dir = parent
	}

	return ""
}
