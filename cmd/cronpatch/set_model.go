package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aatumaykin/cronpatch/internal/config"
	"github.com/aatumaykin/cronpatch/internal/constants"
	"github.com/aatumaykin/cronpatch/internal/rules"
)

var setModelDryRun bool

// setModelCmd represents the set-model command
var setModelCmd = &cobra.Command{
	Use:   "set-model [model]",
	Short: "Assign a model to every agentTurn cron job",
	Long: `Set payload.model on every cron job whose payload kind is agentTurn.

The model defaults to ` + constants.DefaultModel + ` and can be set with the positional
argument, OPENCLAW_CRON_MODEL or model.target in the config file.`,
	Example: `  cronpatch set-model
  cronpatch set-model cursor/opus-4.6 --dry-run
  cronpatch set-model auto`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSetModel,
}

func init() {
	setModelCmd.Flags().BoolVar(&setModelDryRun, "dry-run", false, "print planned changes without writing anything")
}

func runSetModel(cmd *cobra.Command, args []string) error {
	var flags config.Config
	if len(args) > 0 {
		flags.Model.Target = strings.TrimSpace(args[0])
	}

	cfg, log, err := setup(flags)
	if err != nil {
		return err
	}
	model := cfg.Model.Target
	if err := config.ValidateModel(model); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	res, err := runPatch(commandContext(cmd), cmd.Name(), cfg, log, rules.Model(model), setModelDryRun)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if res.Updated == 0 {
		fmt.Fprintf(out, constants.MsgNoUpdatesModel, model)
		return nil
	}

	for _, change := range res.Changes {
		for _, applied := range change.Applied {
			fmt.Fprintf(out, constants.MsgModelSet, change.Job, applied.Reason)
		}
	}
	printOutcome(out, res, fmt.Sprintf(constants.MsgTotalUpdatedModel, res.Updated, model))
	return nil
}
