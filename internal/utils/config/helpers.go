package config

import "time"

// ConfigHelpers provides convenient access to global configuration
type ConfigHelpers struct {
	config *GlobalConfig
}

// NewConfigHelpers creates a new config helpers instance
func NewConfigHelpers(config *GlobalConfig) *ConfigHelpers {
	return &ConfigHelpers{config: config}
}

// HTTPTimeout returns the remote fetch timeout as a duration
func (c *ConfigHelpers) HTTPTimeout() time.Duration {
	return time.Duration(c.config.HTTPTimeoutSeconds) * time.Second
}

// LogLevel returns the configured log level
func (c *ConfigHelpers) LogLevel() string {
	return c.config.Logging.Level
}

// IsDebugMode returns true if debug logging is enabled
func (c *ConfigHelpers) IsDebugMode() bool {
	return c.config.Logging.Level == "debug"
}

// VerifyArtifact returns true if exported artifacts should be inspected
func (c *ConfigHelpers) VerifyArtifact() bool {
	return c.config.VerifyArtifact
}

// Provider returns the configured provider name
func (c *ConfigHelpers) Provider() string {
	return c.config.Provider
}

// ExportCommand returns the export command template override, if any
func (c *ConfigHelpers) ExportCommand() string {
	return c.config.ExportCommand
}

// GetConfig returns the underlying global config (for advanced usage)
func (c *ConfigHelpers) GetConfig() *GlobalConfig {
	return c.config
}
