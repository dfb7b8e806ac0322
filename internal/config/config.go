// Package config provides configuration management using the Singleton pattern.
// It loads configuration from environment variables and config.yaml using Viper.
package config

import (
	"fmt"
	"sync"

	"github.com/internstack/agent-arena/internal/domain"
)

// Configuration holds all application configuration values.
type Configuration struct {
	// Server configuration
	Server ServerConfig `json:"server" mapstructure:"server"`

	// Agents optionally replaces the built-in agent catalog.
	Agents []domain.Agent `json:"agents" mapstructure:"agents"`

	// Logging configuration
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`

	// Credentials holds the per-provider API secrets, read from the
	// environment only. Never serialized and never read from config files.
	Credentials domain.Credentials `json:"-" mapstructure:"-"`
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	// Host is the server bind address.
	Host string `json:"host" mapstructure:"host"`

	// Port is the server port number.
	Port int `json:"port" mapstructure:"port"`

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeoutSeconds int `json:"read_timeout_seconds" mapstructure:"read_timeout_seconds"`

	// WriteTimeout is the maximum duration before timing out writes of the response.
	// Must leave room for the slower of the two upstream completion calls.
	WriteTimeoutSeconds int `json:"write_timeout_seconds" mapstructure:"write_timeout_seconds"`

	// ShutdownTimeout is the maximum duration to wait for active connections to finish.
	ShutdownTimeoutSeconds int `json:"shutdown_timeout_seconds" mapstructure:"shutdown_timeout_seconds"`

	// CompletionTimeoutSeconds bounds each upstream completion call.
	CompletionTimeoutSeconds int `json:"completion_timeout_seconds" mapstructure:"completion_timeout_seconds"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `json:"level" mapstructure:"level"`

	// Format is the log format (json, text).
	Format string `json:"format" mapstructure:"format"`
}

// configInstance holds the singleton configuration instance.
var (
	configInstance *Configuration
	configOnce     sync.Once
	configErr      error
)

// GetConfig returns the singleton Configuration instance.
// It initializes the configuration on first call using the default config path.
// Returns an error if configuration loading fails.
func GetConfig() (*Configuration, error) {
	configOnce.Do(func() {
		configInstance, configErr = loadConfig("")
	})
	return configInstance, configErr
}

// GetConfigWithPath returns the singleton Configuration instance with a custom config path.
// Returns an error if configuration loading fails.
func GetConfigWithPath(configPath string) (*Configuration, error) {
	configOnce.Do(func() {
		configInstance, configErr = loadConfig(configPath)
	})
	return configInstance, configErr
}

// MustGetConfig returns the singleton Configuration instance.
// It panics if the configuration cannot be loaded.
func MustGetConfig() *Configuration {
	cfg, err := GetConfig()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}

// ResetConfig resets the singleton instance.
// This is primarily used for testing purposes.
func ResetConfig() {
	configOnce = sync.Once{}
	configInstance = nil
	configErr = nil
}

// Validate validates the configuration and returns an error if required fields
// are missing or out of range.
func (c *Configuration) Validate() error {
	var validationErrors []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		validationErrors = append(validationErrors, "server.port must be between 1 and 65535")
	}

	if c.Server.CompletionTimeoutSeconds <= 0 {
		validationErrors = append(validationErrors, "server.completion_timeout_seconds must be positive")
	}

	// Validate the agent catalog override, when present.
	seen := make(map[string]bool)
	for i, agent := range c.Agents {
		if !agent.IsValid() {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"agents[%d]: id, name, model and a supported provider (openai, anthropic, together) are required", i))
		}
		if seen[agent.ID] {
			validationErrors = append(validationErrors, fmt.Sprintf("agents[%d]: duplicate id %q", i, agent.ID))
		}
		seen[agent.ID] = true
	}

	if c.Logging.Level != "" && !isValidLogLevel(c.Logging.Level) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level '%s' is invalid, must be one of: debug, info, warn, error",
			c.Logging.Level,
		))
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}

// isValidLogLevel checks if the log level is valid.
func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// AgentCatalog returns the agent catalog to register: the config override
// when present, the built-in default otherwise.
func (c *Configuration) AgentCatalog() []domain.Agent {
	if len(c.Agents) > 0 {
		return c.Agents
	}
	return domain.DefaultAgents()
}
