package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aatumaykin/cronpatch/internal/config"
	"github.com/aatumaykin/cronpatch/internal/constants"
	"github.com/aatumaykin/cronpatch/internal/logger"
	"github.com/aatumaykin/cronpatch/internal/metrics"
	"github.com/aatumaykin/cronpatch/internal/patcher"
)

// loadConfig resolves and validates the configuration, flags taking precedence.
func loadConfig(flags config.Config) (*config.Config, error) {
	flags.Jobs.Path = rootJobsPath
	flags.Logging.Level = rootLogLevel

	cfg, err := config.Load(config.Options{
		ConfigPath:     rootConfigPath,
		ConfigRequired: rootConfigPath != "",
		EnvFile:        rootEnvFile,
		Flags:          flags,
	})
	if err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return log, nil
}

// setup loads the configuration and builds the logger for a patch command.
func setup(flags config.Config) (*config.Config, *logger.Logger, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, nil, err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("configuration resolved", cfg.LogFields()...)
	return cfg, log, nil
}

// runPatch runs rules against the configured jobs file and exports run metrics
// when a textfile is configured.
func runPatch(ctx context.Context, command string, cfg *config.Config, log *logger.Logger,
	rules []patcher.Rule, dryRun bool) (patcher.Result, error) {
	run := metrics.NewRun(constants.MetricsNamespace, command)
	log = log.With(logger.Field{Key: "command", Value: command})

	p := patcher.New(cfg.Jobs.Path, rules, log,
		patcher.WithDryRun(dryRun),
		patcher.WithRecorder(run))

	res, err := p.Run(ctx)
	if err != nil {
		run.RunFailed(patcher.Kind(err))
	}
	run.Finish(time.Now())
	exportMetrics(cfg, log, run)

	return res, err
}

// exportMetrics writes the run metrics when a textfile is configured.
func exportMetrics(cfg *config.Config, log *logger.Logger, run *metrics.Run) {
	if cfg.Metrics.Textfile == "" {
		return
	}
	if err := run.WriteTextfile(cfg.Metrics.Textfile); err != nil {
		log.Warn("failed to write metrics textfile",
			logger.Field{Key: "path", Value: cfg.Metrics.Textfile},
			logger.Field{Key: "error", Value: err})
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
