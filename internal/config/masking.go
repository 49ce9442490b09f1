package config

import (
	"strings"

	"github.com/aatumaykin/cronpatch/internal/logger"
)

// maskSecret маскирует значение, оставляя только первые и последние символы
func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}

	// Если значение слишком короткое, маскируем полностью
	if len(secret) < 6 {
		return "***"
	}

	keep := 2
	if len(secret) >= 12 {
		keep = 4
	}
	return secret[:keep] + strings.Repeat("*", len(secret)-2*keep) + secret[len(secret)-keep:]
}

// MaskRecipient маскирует chat id для логов; @username выводится как есть
func MaskRecipient(to string) string {
	if strings.HasPrefix(to, "@") {
		return to
	}
	return maskSecret(to)
}

// LogFields возвращает итоговую конфигурацию в виде полей лога, без раскрытия chat id
func (c *Config) LogFields() []logger.Field {
	return []logger.Field{
		{Key: "jobs", Value: c.Jobs.Path},
		{Key: "default_channel", Value: c.Delivery.DefaultChannel},
		{Key: "default_to", Value: MaskRecipient(c.Delivery.DefaultTo)},
		{Key: "legacy_to", Value: c.Delivery.LegacyTo},
		{Key: "model", Value: c.Model.Target},
		{Key: "backups_keep", Value: c.Backups.Keep},
		{Key: "backups_max_age_days", Value: c.Backups.MaxAgeDays},
		{Key: "metrics_textfile", Value: c.Metrics.Textfile},
	}
}
