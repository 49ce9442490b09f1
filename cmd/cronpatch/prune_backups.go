package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aatumaykin/cronpatch/internal/cleanup"
	"github.com/aatumaykin/cronpatch/internal/config"
	"github.com/aatumaykin/cronpatch/internal/constants"
	"github.com/aatumaykin/cronpatch/internal/metrics"
)

var (
	pruneKeep       int
	pruneMaxAgeDays int
	pruneDryRun     bool
)

// pruneBackupsCmd represents the prune-backups command
var pruneBackupsCmd = &cobra.Command{
	Use:   "prune-backups",
	Short: "Delete old jobs.json.bak.<millis> backups",
	Long: `Delete backups of the cron jobs file outside the retention policy.

The policy comes from --keep / --max-age-days, OPENCLAW_CRON_BACKUP_KEEP /
OPENCLAW_CRON_BACKUP_MAX_AGE_DAYS or the [backups] section of the config file.
Patch commands never delete backups; this command is the only thing that does.`,
	Args: cobra.NoArgs,
	RunE: runPruneBackups,
}

func init() {
	pruneBackupsCmd.Flags().IntVar(&pruneKeep, "keep", 0, "keep the N newest backups")
	pruneBackupsCmd.Flags().IntVar(&pruneMaxAgeDays, "max-age-days", 0, "delete backups older than N days")
	pruneBackupsCmd.Flags().BoolVar(&pruneDryRun, "dry-run", false, "print what would be deleted without deleting")
}

func runPruneBackups(cmd *cobra.Command, args []string) error {
	var flags config.Config
	flags.Backups.Keep = pruneKeep
	flags.Backups.MaxAgeDays = pruneMaxAgeDays

	cfg, log, err := setup(flags)
	if err != nil {
		return err
	}

	policy := retentionPolicy(cfg)
	if !policy.Enabled() {
		return &config.ConfigError{
			Field: "backups.keep",
			Env:   constants.EnvPrefix + "BACKUP_KEEP",
			Hint:  "or pass --keep / --max-age-days",
		}
	}

	run := metrics.NewRun(constants.MetricsNamespace, cmd.Name())
	stats, deleted, err := cleanup.NewRunner(policy).Run(cfg.Jobs.Path, pruneDryRun, log)
	if err != nil {
		run.RunFailed("cleanup")
	}
	if !pruneDryRun {
		run.BackupsPruned(stats.Deleted)
		run.Finish(time.Now())
		exportMetrics(cfg, log, run)
	}

	out := cmd.OutOrStdout()
	for _, b := range deleted {
		fmt.Fprintf(out, constants.MsgBackupPruned, b.Path)
	}

	switch {
	case err != nil:
		return err
	case stats.Deleted == 0:
		fmt.Fprintf(out, constants.MsgPruneNothing, stats.Found)
	case pruneDryRun:
		fmt.Fprintf(out, constants.MsgPruneDryRun, stats.Deleted, stats.Found)
	default:
		fmt.Fprintf(out, constants.MsgPruneSummary, stats.Deleted, stats.Found, stats.BytesFreed)
	}
	return nil
}

func retentionPolicy(cfg *config.Config) cleanup.Config {
	return cleanup.Config{Keep: cfg.Backups.Keep, MaxAgeDays: cfg.Backups.MaxAgeDays}
}
