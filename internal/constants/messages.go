package constants

// Console messages printed by the patch commands.

// Patch messages
const (
	// MsgFixedJob is printed for every job changed by fix-delivery.
	MsgFixedJob = "Fixed: %s\n"

	// MsgFixedJobReason is printed under MsgFixedJob for every rule that fired.
	MsgFixedJobReason = "  - %s: %s\n"

	// MsgModelSet is printed for every job changed by set-model.
	MsgModelSet = "Set model: %s (%s)\n"

	// MsgDryRun is printed instead of writing when --dry-run is set.
	MsgDryRun = "[dry-run] Would update %d job(s). Run without --dry-run to apply.\n"

	// MsgBackupWritten is printed once the backup file is on disk.
	MsgBackupWritten = "Backup written to %s\n"

	// MsgTotalUpdated is the summary line after a successful apply.
	MsgTotalUpdated = "Total updated: %d\n"

	// MsgTotalUpdatedModel is the set-model summary line after a successful apply.
	MsgTotalUpdatedModel = "Total updated: %d → model: %s\n"

	// MsgNoUpdates is printed when no job matched any rule.
	MsgNoUpdates = "No jobs needed updates.\n"

	// MsgNoUpdatesModel is printed by set-model when every job already uses the model.
	MsgNoUpdatesModel = "No jobs needed updates (all already %s).\n"

	// MsgRestoreHint tells the operator how to roll back.
	MsgRestoreHint = "Restore: cp %s %s\n"
)

// Backup retention messages
const (
	// MsgBackupPruned is printed for every backup removed (or that would be removed).
	MsgBackupPruned = "Pruned: %s\n"
	// MsgPruneDryRun is printed by prune-backups with --dry-run.
	MsgPruneDryRun = "[dry-run] Would delete %d of %d backup(s).\n"
	// MsgPruneSummary is the prune-backups summary line.
	MsgPruneSummary = "Deleted %d of %d backup(s), freed %d bytes.\n"
	// MsgPruneNothing is printed when every backup is within the retention policy.
	MsgPruneNothing = "No backups to prune (%d found).\n"
)

// Config messages
const (
	// MsgConfigLoadError is the error message when configuration loading fails.
	MsgConfigLoadError = "❌ Failed to load configuration: %v\n"

	// MsgConfigValidationError is the message when configuration validation fails.
	MsgConfigValidationError = "❌ Configuration validation failed:\n"

	// MsgConfigValid is the message when configuration is successfully loaded and validated.
	MsgConfigValid = "✅ Configuration is valid\n"

	// MsgConfigValidatePrefix is the prefix for configuration validation errors.
	MsgConfigValidatePrefix = "  - %v\n"
)

// Jobs list messages
const (
	// MsgJobsListHeader is the header for the jobs list display.
	MsgJobsListHeader = "Cron Jobs:\n-----------------\n"

	// MsgJobsListSep is the separator between jobs in the list.
	MsgJobsListSep = "-----------------\n"

	// MsgJobName is the label for the job name field.
	MsgJobName = "   Name:     %s\n"

	// MsgJobEnabled is the label for the enabled flag.
	MsgJobEnabled = "   Enabled:  %t\n"

	// MsgJobSchedule is the label for the job schedule field.
	MsgJobSchedule = "   Schedule: %s\n"

	// MsgJobNextRun is the label for the next computed run.
	MsgJobNextRun = "   Next run: %s\n"

	// MsgJobDelivery is the label for the delivery target.
	MsgJobDelivery = "   Delivery: %s\n"

	// MsgJobPayload is the label for payload kind and model.
	MsgJobPayload = "   Payload:  %s\n"

	// MsgJobsTotal is the message showing the total count of jobs.
	MsgJobsTotal = "Total: %d job(s)\n"

	// MsgJobsNotFound is the message when the jobs array is empty.
	MsgJobsNotFound = "No cron jobs found.\n"
)
