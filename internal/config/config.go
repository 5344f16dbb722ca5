package config

// Config represents the main Bhasha configuration
type Config struct {
	// Server
	Server ServerConfig `json:"server" mapstructure:"server"`

	// Completion provider
	Completion CompletionConfig `json:"completion" mapstructure:"completion"`

	// Session store
	Store StoreConfig `json:"store" mapstructure:"store"`

	// Speech synthesis
	Speech SpeechConfig `json:"speech" mapstructure:"speech"`

	// Logging
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`

	// Data directory
	DataDir string `json:"data_dir" mapstructure:"data_dir"`
}

// ServerConfig holds the HTTP server configuration
type ServerConfig struct {
	Host               string   `json:"host" mapstructure:"host"`
	Port               int      `json:"port" mapstructure:"port"`
	CORSOrigins        []string `json:"cors_origins" mapstructure:"cors_origins"`
	RateLimitPerMinute int      `json:"rate_limit_per_minute" mapstructure:"rate_limit_per_minute"`
}

// CompletionConfig holds the completion API configuration
type CompletionConfig struct {
	Provider    string  `json:"provider" mapstructure:"provider"` // openai, anthropic
	APIKey      string  `json:"api_key" mapstructure:"api_key"`
	BaseURL     string  `json:"base_url" mapstructure:"base_url"` // OpenAI-compatible hosts (e.g. Groq)
	Model       string  `json:"model" mapstructure:"model"`
	MaxTokens   int     `json:"max_tokens" mapstructure:"max_tokens"`
	Temperature float64 `json:"temperature" mapstructure:"temperature"`
}

// StoreConfig holds session store configuration
type StoreConfig struct {
	Path   string       `json:"path" mapstructure:"path"`
	Backup BackupConfig `json:"backup" mapstructure:"backup"`
}

// BackupConfig holds store snapshot configuration
type BackupConfig struct {
	Enabled  bool   `json:"enabled" mapstructure:"enabled"`
	Schedule string `json:"schedule" mapstructure:"schedule"` // cron syntax
	Dir      string `json:"dir" mapstructure:"dir"`
}

// SpeechConfig holds TTS configuration
type SpeechConfig struct {
	ScratchDir string `json:"scratch_dir" mapstructure:"scratch_dir"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level   string `json:"level" mapstructure:"level"` // debug, info, warn, error
	File    string `json:"file" mapstructure:"file"`
	Console bool   `json:"console" mapstructure:"console"`
	Pretty  bool   `json:"pretty" mapstructure:"pretty"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:               "0.0.0.0",
			Port:               8000,
			CORSOrigins:        []string{"*"},
			RateLimitPerMinute: 100,
		},
		Completion: CompletionConfig{
			Provider:    "openai",
			BaseURL:     "https://api.groq.com/openai/v1",
			Model:       "llama-3.3-70b-versatile",
			MaxTokens:   1000,
			Temperature: 0.7,
		},
		Store: StoreConfig{
			Backup: BackupConfig{
				Enabled:  false,
				Schedule: "@hourly",
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
			Pretty:  false,
		},
	}
}
