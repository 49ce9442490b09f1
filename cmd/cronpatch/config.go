package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aatumaykin/cronpatch/internal/config"
	"github.com/aatumaykin/cronpatch/internal/constants"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect cronpatch configuration",
}

// configValidateCmd represents the config validate command
var configValidateCmd = &cobra.Command{
	Use:   "validate [config-file]",
	Short: "Validate the configuration",
	Long: `Load the configuration from all sources and report every problem found.
A config file given as argument must exist.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigValidate,
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration with recipients masked",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	path := rootConfigPath
	if len(args) > 0 {
		path = args[0]
	}

	out := cmd.OutOrStdout()

	cfg, err := config.Load(config.Options{
		ConfigPath:     path,
		ConfigRequired: path != "",
		EnvFile:        rootEnvFile,
		Flags:          config.Config{Jobs: config.JobsConfig{Path: rootJobsPath}},
	})
	if err != nil {
		fmt.Fprintf(out, constants.MsgConfigLoadError, err)
		return err
	}

	errs := cfg.Validate()
	for _, err := range []error{cfg.ValidateDefaultTo(), config.ValidateModel(cfg.Model.Target)} {
		if err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		fmt.Fprint(out, constants.MsgConfigValidationError)
		for _, e := range errs {
			fmt.Fprintf(out, constants.MsgConfigValidatePrefix, e)
		}
		return fmt.Errorf("configuration has %d error(s)", len(errs))
	}

	fmt.Fprint(out, constants.MsgConfigValid)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(config.Config{})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, f := range cfg.LogFields() {
		fmt.Fprintf(out, "%s = %v\n", f.Key, f.Value)
	}
	return nil
}
