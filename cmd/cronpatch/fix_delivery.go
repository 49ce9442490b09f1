package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aatumaykin/cronpatch/internal/config"
	"github.com/aatumaykin/cronpatch/internal/constants"
	"github.com/aatumaykin/cronpatch/internal/rules"
)

var (
	fixDeliveryDryRun   bool
	fixDeliveryTo       string
	fixDeliveryLegacyTo string
)

// fixDeliveryCmd represents the fix-delivery command
var fixDeliveryCmd = &cobra.Command{
	Use:   "fix-delivery",
	Short: "Normalize delivery of cron jobs to the default Telegram recipient",
	Long: `Normalize the delivery section of every cron job:

  - a legacy placeholder recipient is replaced by the default recipient
  - telegram jobs without a recipient get the default recipient
  - announce jobs without a channel get telegram and the default recipient

The default recipient comes from --to, OPENCLAW_CRON_DEFAULT_TO or
delivery.default_to in the config file. Changed jobs always carry an explicit mode.`,
	Args: cobra.NoArgs,
	RunE: runFixDelivery,
}

func init() {
	fixDeliveryCmd.Flags().BoolVar(&fixDeliveryDryRun, "dry-run", false, "print planned changes without writing anything")
	fixDeliveryCmd.Flags().StringVar(&fixDeliveryTo, "to", "", "default recipient (telegram chat id or @username)")
	fixDeliveryCmd.Flags().StringVar(&fixDeliveryLegacyTo, "legacy-to", "", "legacy placeholder recipient to replace")
}

func runFixDelivery(cmd *cobra.Command, args []string) error {
	var flags config.Config
	flags.Delivery.DefaultTo = fixDeliveryTo
	flags.Delivery.LegacyTo = fixDeliveryLegacyTo

	cfg, log, err := setup(flags)
	if err != nil {
		return err
	}
	if err := cfg.RequireDefaultTo(); err != nil {
		return err
	}
	if err := cfg.ValidateDefaultTo(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	policy := rules.DeliveryPolicy{
		DefaultChannel: cfg.Delivery.DefaultChannel,
		DefaultTo:      cfg.Delivery.DefaultTo,
		LegacyTo:       cfg.Delivery.LegacyTo,
	}

	res, err := runPatch(commandContext(cmd), cmd.Name(), cfg, log, rules.Delivery(policy), fixDeliveryDryRun)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if res.Updated == 0 {
		fmt.Fprint(out, constants.MsgNoUpdates)
		return nil
	}

	for _, change := range res.Changes {
		fmt.Fprintf(out, constants.MsgFixedJob, change.Job)
		for _, applied := range change.Applied {
			fmt.Fprintf(out, constants.MsgFixedJobReason, applied.Rule, applied.Reason)
		}
	}
	printOutcome(out, res, fmt.Sprintf(constants.MsgTotalUpdated, res.Updated))
	return nil
}
