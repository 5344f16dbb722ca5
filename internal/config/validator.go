package config

import (
	"fmt"
	"strings"
)

// Validator validates configuration values
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks a full configuration before the service starts.
func (v *Validator) Validate(cfg *Config) error {
	if err := v.ValidateServer(cfg.Server); err != nil {
		return err
	}
	if err := v.ValidateCompletion(cfg.Completion); err != nil {
		return err
	}
	if err := v.ValidateLogLevel(cfg.Logging.Level); err != nil {
		return err
	}
	if cfg.Store.Backup.Enabled && cfg.Store.Backup.Schedule == "" {
		return fmt.Errorf("backup schedule cannot be empty when backups are enabled")
	}
	return nil
}

// ValidateServer validates the HTTP server settings
func (v *Validator) ValidateServer(cfg ServerConfig) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", cfg.Port)
	}
	if cfg.RateLimitPerMinute < 0 {
		return fmt.Errorf("rate limit cannot be negative")
	}
	return nil
}

// ValidateCompletion validates the completion provider settings
func (v *Validator) ValidateCompletion(cfg CompletionConfig) error {
	switch cfg.Provider {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("unsupported completion provider: %s", cfg.Provider)
	}

	if cfg.APIKey == "" {
		return fmt.Errorf("%s API key cannot be empty", cfg.Provider)
	}
	if cfg.Provider == "anthropic" && !strings.HasPrefix(cfg.APIKey, "sk-ant-") {
		return fmt.Errorf("invalid Anthropic API key format (should start with sk-ant-)")
	}

	if cfg.Model == "" {
		return fmt.Errorf("model name cannot be empty")
	}
	if cfg.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", cfg.MaxTokens)
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %g", cfg.Temperature)
	}
	return nil
}

// ValidateLogLevel validates a log level name
func (v *Validator) ValidateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}
}
