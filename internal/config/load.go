package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables.
// Environment variables take precedence over defaults; variables prefixed
// with STUDYBUDDY_ win over the legacy unprefixed names. Returns a populated
// Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// Initialize a new viper instance
	v := viper.New()

	// Defaults double as the key registry: env lookups only happen for keys
	// viper already knows about.
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.max_body_bytes", 16*1024*1024)
	v.SetDefault("server.request_timeout", "2m")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", "gemini-2.5-pro-exp-03-25")
	v.SetDefault("llm.temperature", 0.2)
	v.SetDefault("llm.max_output_tokens", 2048)
	v.SetDefault("llm.safety_threshold", "medium")
	v.SetDefault("llm.mock_mode", false)
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)
	v.SetDefault("cache.ttl", "10m")

	// Configure to read from environment variables with STUDYBUDDY_ prefix
	v.SetEnvPrefix("STUDYBUDDY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Legacy variable names kept for existing deployments. The prefixed
	// form always wins; aliases are consulted in the order listed.
	envAliases := []struct {
		key     string
		aliases []string
	}{
		{key: "server.host", aliases: []string{"HOST"}},
		{key: "server.port", aliases: []string{"PORT"}},
		{key: "llm.gemini_api_key", aliases: []string{"GOOGLE_API_KEY", "GEMINI_API_KEY"}},
		{key: "llm.model_name", aliases: []string{"GEMINI_MODEL_NAME"}},
		{key: "llm.temperature", aliases: []string{"GEMINI_TEMPERATURE"}},
		{key: "llm.max_output_tokens", aliases: []string{"GEMINI_MAX_OUTPUT_TOKENS"}},
		{key: "llm.mock_mode", aliases: []string{"MOCK_MODE"}},
	}
	for _, binding := range envAliases {
		args := append([]string{binding.key}, binding.aliases...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("failed to bind environment variables for %s: %w", binding.key, err)
		}
	}

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// The API key is essential unless mock mode is enabled. Checked here
	// instead of with a struct tag so mock mode can run without credentials.
	if !cfg.LLM.MockMode && cfg.LLM.GeminiAPIKey == "" {
		return nil, fmt.Errorf(
			"config validation failed: GOOGLE_API_KEY not found. Please set it in your .env file or enable MOCK_MODE=true")
	}

	// Validate config
	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
