package config

import (
	"fmt"
	"strings"

	"github.com/aatumaykin/cronpatch/internal/channels/telegram"
	"github.com/aatumaykin/cronpatch/internal/constants"
	"github.com/aatumaykin/cronpatch/internal/logger"
)

// Validate проверяет общие для всех команд поля конфигурации.
// Получатель и модель проверяются командами, которым они нужны.
func (c *Config) Validate() []error {
	var errs []error

	if c.Jobs.Path == "" {
		errs = append(errs, &ValidationError{Field: "jobs.path", Message: "is required"})
	}

	if _, ok := logger.ParseLevel(c.Logging.Level); !ok {
		errs = append(errs, &ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid value %q (expected: debug, info, warn, error)", c.Logging.Level),
		})
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, &ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid value %q (expected: json, text)", c.Logging.Format),
		})
	}

	if c.Logging.Output == "" {
		errs = append(errs, &ValidationError{Field: "logging.output", Message: "is required"})
	}

	if c.Backups.Keep < 0 {
		errs = append(errs, &ValidationError{Field: "backups.keep", Message: "must not be negative"})
	}
	if c.Backups.MaxAgeDays < 0 {
		errs = append(errs, &ValidationError{Field: "backups.max_age_days", Message: "must not be negative"})
	}

	return errs
}

// ValidateModel checks the model assigned by set-model. Any non-empty id is accepted:
// cursor/auto, auto and composer-1.5 are all valid targets.
func ValidateModel(model string) error {
	if strings.TrimSpace(model) == "" {
		return &ValidationError{
			Field:   "model.target",
			Message: fmt.Sprintf("is required (e.g. %s)", constants.DefaultModel),
		}
	}
	return nil
}

// ValidateDefaultTo checks that a configured default recipient is a Telegram chat id or
// @username. The value itself never appears in the error.
func (c *Config) ValidateDefaultTo() error {
	if c.Delivery.DefaultTo == "" {
		return nil
	}
	if _, err := telegram.ParseRecipient(c.Delivery.DefaultTo); err != nil {
		return &ValidationError{
			Field:   "delivery.default_to",
			Message: fmt.Sprintf("expected a telegram chat id or @username (value: %s)", MaskRecipient(c.Delivery.DefaultTo)),
		}
	}
	return nil
}

// RequireDefaultTo returns a ConfigError when no default recipient is configured.
func (c *Config) RequireDefaultTo() error {
	if c.Delivery.DefaultTo == "" {
		return &ConfigError{
			Field: "delivery.default_to",
			Env:   constants.EnvPrefix + "DEFAULT_TO",
			Hint:  "delivery fixes need the Telegram chat id that receives announce jobs",
		}
	}
	return nil
}
