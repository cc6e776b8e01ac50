package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Cache  CacheConfig  `mapstructure:"cache"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Host     string `mapstructure:"host"      validate:"required"`
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// MaxBodyBytes caps the accepted request body size; oversized requests
	// are rejected with 413.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes" validate:"required,gt=0"`

	// RequestTimeout bounds the total handling time of a single request,
	// including the model call.
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"required,gt=0"`
}

// MaxBodyMB returns the body size limit in whole megabytes, for use in
// client-facing error messages.
func (c ServerConfig) MaxBodyMB() int64 {
	return c.MaxBodyBytes / (1024 * 1024)
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// GeminiAPIKey is deliberately not tagged required: mock mode runs
	// without credentials. Load enforces its presence otherwise.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	ModelName       string  `mapstructure:"model_name"        validate:"required"`
	Temperature     float32 `mapstructure:"temperature"       validate:"gte=0,lte=2"`
	MaxOutputTokens int32   `mapstructure:"max_output_tokens" validate:"required,gt=0"`

	// SafetyThreshold selects the blocking threshold applied to all four
	// harm categories.
	SafetyThreshold string `mapstructure:"safety_threshold" validate:"required,oneof=none low medium high"`

	// MockMode swaps the Gemini engine for the deterministic mock.
	MockMode bool `mapstructure:"mock_mode"`
}

// CacheConfig contains answer-cache settings. The cache is optional; when
// disabled the other fields are ignored.
type CacheConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	RedisAddr     string        `mapstructure:"redis_addr" validate:"required_if=Enabled true"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db" validate:"gte=0"`
	TTL           time.Duration `mapstructure:"ttl"      validate:"gte=0"`
}
