package config

import "fmt"

// ConfigError represents missing or malformed configuration. Var names the
// offending environment variable.
type ConfigError struct {
	Var     string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s - %s", e.Var, e.Message)
}

// NewConfigError creates a new configuration error
func NewConfigError(envVar, message string) *ConfigError {
	return &ConfigError{
		Var:     envVar,
		Message: message,
	}
}
