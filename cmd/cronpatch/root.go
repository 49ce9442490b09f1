package main

import (
	"github.com/spf13/cobra"
)

var (
	rootConfigPath string
	rootEnvFile    string
	rootJobsPath   string
	rootLogLevel   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cronpatch",
	Short: "cronpatch - maintenance fixes for OpenClaw cron jobs",
	Long: `cronpatch rewrites ~/.openclaw/cron/jobs.json in place with narrow, idempotent fixes.
Every apply run writes a timestamped backup (jobs.json.bak.<unix-millis>) first.`,
	Version:      Version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootConfigPath, "config", "c", "", "path to cronpatch.toml (default ~/.openclaw/cronpatch.toml, optional)")
	rootCmd.PersistentFlags().StringVar(&rootEnvFile, "env-file", ".env", "optional .env file with OPENCLAW_CRON_* variables")
	rootCmd.PersistentFlags().StringVarP(&rootJobsPath, "jobs", "j", "", "path to the cron jobs file (env OPENCLAW_CRON_JOBS)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(fixDeliveryCmd)
	rootCmd.AddCommand(setModelCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(pruneBackupsCmd)
}
