package config

import "fmt"

// ConfigError is returned when a value required by the requested operation is missing.
type ConfigError struct {
	Field string
	Env   string
	Hint  string
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("%s is required", e.Field)
	if e.Env != "" {
		msg += fmt.Sprintf(" (set %s)", e.Env)
	}
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

// ValidationError представляет ошибку валидации с дополнительной информацией
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
