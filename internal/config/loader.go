// Package config provides configuration management using the Singleton pattern.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultConfigName = "config"
	defaultConfigType = "yaml"
	envPrefix         = "ARENA"

	// Provider credential environment variables. These follow each vendor's
	// conventional names and are the ONLY source of secrets: config files
	// never carry API keys.
	EnvOpenAIKey    = "OPENAI_API_KEY"
	EnvAnthropicKey = "ANTHROPIC_API_KEY"
	EnvTogetherKey  = "TOGETHER_API_KEY"
)

// loadConfig loads the configuration from environment variables and files.
// Priority order (highest to lowest):
// 1. Credential env vars (OPENAI_API_KEY, ANTHROPIC_API_KEY, TOGETHER_API_KEY)
// 2. Environment variables (prefixed with ARENA_)
// 3. config.yaml
// 4. Default values
func loadConfig(configPath string) (*Configuration, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Configure Viper
	v.SetConfigName(defaultConfigName)
	v.SetConfigType(defaultConfigType)

	// Add config search paths
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/agent-arena")
		v.AddConfigPath("$HOME/.agent-arena")
	}

	// Enable environment variable override
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Read configuration file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, &ConfigError{
				Op:  "read",
				Err: fmt.Errorf("failed to read config file: %w", err),
			}
		}
		// Config file not found is OK - defaults plus env are sufficient.
	}

	// Unmarshal configuration
	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigError{
			Op:  "unmarshal",
			Err: fmt.Errorf("failed to unmarshal config: %w", err),
		}
	}

	// Credentials come from the environment only. Absence is a valid state:
	// the provider reports unconfigured when one of its agents is used.
	cfg.Credentials.OpenAI = strings.TrimSpace(os.Getenv(EnvOpenAIKey))
	cfg.Credentials.Anthropic = strings.TrimSpace(os.Getenv(EnvAnthropicKey))
	cfg.Credentials.Together = strings.TrimSpace(os.Getenv(EnvTogetherKey))

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout_seconds", 30)
	v.SetDefault("server.write_timeout_seconds", 60)
	v.SetDefault("server.shutdown_timeout_seconds", 15)
	v.SetDefault("server.completion_timeout_seconds", 20)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
