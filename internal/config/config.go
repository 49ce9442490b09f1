package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"golang.org/x/text/unicode/norm"

	"github.com/aatumaykin/cronpatch/internal/channels/telegram"
	"github.com/aatumaykin/cronpatch/internal/constants"
)

// Options controls where Load looks for configuration.
type Options struct {
	// ConfigPath is the TOML file; empty means constants.DefaultConfigPath.
	ConfigPath string
	// ConfigRequired makes a missing TOML file an error.
	ConfigRequired bool
	// EnvFile is an optional .env file loaded before the environment is read.
	EnvFile string
	// Flags is the highest-priority layer, usually filled from the command line.
	Flags Config
}

// Load собирает конфигурацию из всех источников и возвращает итоговую структуру.
// The result still has to be checked with Validate.
func Load(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		if err := LoadEnvOptional(opts.EnvFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", opts.EnvFile, err)
		}
	}

	envCfg, err := fromEnv()
	if err != nil {
		return nil, err
	}

	path := opts.ConfigPath
	if path == "" {
		path = constants.DefaultConfigPath
	}
	fileCfg, err := readFile(expandHome(path))
	switch {
	case errors.Is(err, fs.ErrNotExist) && !opts.ConfigRequired:
		fileCfg = Config{}
	case err != nil:
		return nil, err
	}

	// Первый слой имеет наивысший приоритет: mergo заполняет только пустые поля.
	cfg := new(Config)
	for _, layer := range []Config{opts.Flags, envCfg, fileCfg, Default()} {
		if err := mergo.Merge(cfg, layer); err != nil {
			return nil, fmt.Errorf("failed to merge config layers: %w", err)
		}
	}

	finalize(cfg)
	return cfg, nil
}

// readFile загружает конфигурацию из TOML файла
func readFile(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	expandEnvVars(&cfg)
	return cfg, nil
}

// fromEnv читает переменные OPENCLAW_CRON_*
func fromEnv() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: constants.EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// finalize приводит значения к каноничному виду
func finalize(c *Config) {
	c.Delivery.DefaultChannel = telegram.Channel

	c.Jobs.Path = expandHome(strings.TrimSpace(c.Jobs.Path))
	c.Metrics.Textfile = expandHome(strings.TrimSpace(c.Metrics.Textfile))

	c.Delivery.DefaultTo = normalize(c.Delivery.DefaultTo)
	c.Delivery.LegacyTo = normalize(c.Delivery.LegacyTo)
	c.Model.Target = normalize(c.Model.Target)
}

func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// expandEnvVars расширяет переменные окружения в строковых полях файла
func expandEnvVars(c *Config) {
	for _, field := range []*string{
		&c.Jobs.Path,
		&c.Delivery.DefaultTo,
		&c.Delivery.LegacyTo,
		&c.Model.Target,
		&c.Logging.Level,
		&c.Logging.Format,
		&c.Logging.Output,
		&c.Metrics.Textfile,
	} {
		*field = expandEnv(*field)
	}
}

// expandEnv расширяет переменную окружения формата ${VAR} или ${VAR:default}
func expandEnv(s string) string {
	if !strings.HasPrefix(s, "${") || !strings.HasSuffix(s, "}") {
		return s
	}

	content := s[2 : len(s)-1]
	if key, defaultVal, found := strings.Cut(content, ":"); found {
		if val := os.Getenv(key); val != "" {
			return val
		}
		return defaultVal
	}

	// Без значения по умолчанию
	return os.Getenv(content)
}

// expandHome расширяет ~ в пути
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}
