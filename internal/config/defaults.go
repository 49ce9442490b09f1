package config

import (
	"github.com/aatumaykin/cronpatch/internal/channels/telegram"
	"github.com/aatumaykin/cronpatch/internal/constants"
)

// Default returns the built-in configuration layer.
func Default() Config {
	return Config{
		Jobs: JobsConfig{
			Path: constants.DefaultJobsPath,
		},
		Delivery: DeliveryConfig{
			DefaultChannel: telegram.Channel,
		},
		Model: ModelConfig{
			Target: constants.DefaultModel,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}
