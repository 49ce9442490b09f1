// Package config provides configuration loading and validation for cronpatch.
// Values are layered, later sources winning over earlier ones:
//
//   - built-in defaults
//   - TOML file (~/.openclaw/cronpatch.toml by default)
//   - .env file, then OPENCLAW_CRON_* environment variables
//   - command line flags
//
// Configuration structure:
//   - [jobs]: location of the OpenClaw cron jobs file
//   - [delivery]: default Telegram recipient and the legacy placeholder
//   - [model]: model assigned by set-model
//   - [logging]: logging level, format, and output
//   - [backups]: retention of the jobs.json.bak.<millis> files
//   - [metrics]: optional node-exporter textfile for run metrics
//
// String values in the TOML file may reference the environment with ${VAR} or
// ${VAR:default}. For example: default_to = "${TELEGRAM_CHAT_ID}"
package config

// Config represents the resolved cronpatch configuration.
type Config struct {
	Jobs     JobsConfig     `toml:"jobs"`
	Delivery DeliveryConfig `toml:"delivery"`
	Model    ModelConfig    `toml:"model"`
	Logging  LoggingConfig  `toml:"logging"`
	Backups  BackupsConfig  `toml:"backups"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

// JobsConfig представляет расположение файла cron jobs
type JobsConfig struct {
	Path string `toml:"path" env:"JOBS"`
}

// DeliveryConfig представляет политику нормализации delivery
type DeliveryConfig struct {
	// DefaultChannel всегда "telegram", из файла и окружения не читается
	DefaultChannel string `toml:"-"`
	DefaultTo      string `toml:"default_to" env:"DEFAULT_TO"`
	LegacyTo       string `toml:"legacy_to" env:"LEGACY_TO"`
}

// ModelConfig представляет конфигурацию set-model
type ModelConfig struct {
	Target string `toml:"target" env:"MODEL"`
}

// LoggingConfig представляет конфигурацию логирования
type LoggingConfig struct {
	Level  string `toml:"level" env:"LOG_LEVEL"`
	Format string `toml:"format" env:"LOG_FORMAT"`
	Output string `toml:"output" env:"LOG_OUTPUT"`
}

// BackupsConfig представляет политику хранения резервных копий для prune-backups.
// Нулевые значения означают отсутствие ограничения.
type BackupsConfig struct {
	Keep       int `toml:"keep" env:"BACKUP_KEEP"`
	MaxAgeDays int `toml:"max_age_days" env:"BACKUP_MAX_AGE_DAYS"`
}

// MetricsConfig представляет конфигурацию экспорта метрик
type MetricsConfig struct {
	Textfile string `toml:"textfile" env:"METRICS_FILE"`
}
