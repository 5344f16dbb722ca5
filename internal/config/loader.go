package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles configuration loading
type Loader struct {
	configPath string
	v          *viper.Viper
}

// NewLoader creates a new config loader
func NewLoader(configPath string) *Loader {
	return &Loader{
		configPath: configPath,
		v:          viper.New(),
	}
}

// Load loads the configuration from file
func (l *Loader) Load() (*Config, error) {
	configPath := l.configPath
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, ".bhasha", "bhasha.json")
	}

	l.v.SetConfigFile(configPath)
	l.v.SetConfigType("json")

	// Read environment variables
	l.v.SetEnvPrefix("BHASHA")
	l.v.AutomaticEnv()

	cfg := DefaultConfig()

	// Missing file falls back to defaults; a present but unreadable file
	// is an error.
	if _, err := os.Stat(configPath); err == nil {
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := l.v.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	// Set data directory if not specified
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".bhasha")
	}

	// Derive paths not specified explicitly
	if cfg.Store.Path == "" {
		cfg.Store.Path = filepath.Join(cfg.DataDir, "chat_histories.json")
	}
	if cfg.Store.Backup.Dir == "" {
		cfg.Store.Backup.Dir = filepath.Join(cfg.DataDir, "backups")
	}
	if cfg.Speech.ScratchDir == "" {
		cfg.Speech.ScratchDir = filepath.Join(cfg.DataDir, "audio")
	}

	return cfg, nil
}

// Watch re-reads the config file when it changes and hands the result to
// onChange. Reload failures are reported through onError and keep the old
// configuration in effect.
func (l *Loader) Watch(onChange func(*Config), onError func(error)) {
	l.v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := l.Load()
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onChange(cfg)
	})
	l.v.WatchConfig()
}
