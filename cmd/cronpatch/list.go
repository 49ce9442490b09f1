package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aatumaykin/cronpatch/internal/config"
	"github.com/aatumaykin/cronpatch/internal/constants"
	"github.com/aatumaykin/cronpatch/internal/jobs"
	"github.com/aatumaykin/cronpatch/internal/patcher"
)

var listFormat string

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cron jobs with their schedule, delivery and model",
	Long:  `Print a read-only summary of every job in the cron jobs file. Nothing is written.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "text", "output format: text, json, yaml")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(config.Config{})
	if err != nil {
		return err
	}

	doc, _, err := patcher.Load(cfg.Jobs.Path)
	if err != nil {
		return err
	}
	summaries := jobs.SummarizeAll(doc, time.Now())

	out := cmd.OutOrStdout()
	switch strings.ToLower(listFormat) {
	case "text", "":
		printJobs(out, summaries)
		return nil
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(summaries)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(summaries); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (expected: text, json, yaml)", listFormat)
	}
}

func printJobs(out io.Writer, summaries []jobs.Summary) {
	if len(summaries) == 0 {
		fmt.Fprint(out, constants.MsgJobsNotFound)
		return
	}

	fmt.Fprint(out, constants.MsgJobsListHeader)
	for _, s := range summaries {
		fmt.Fprintf(out, constants.MsgJobName, s.Name)
		fmt.Fprintf(out, constants.MsgJobEnabled, s.Enabled)
		if s.Schedule != "" {
			fmt.Fprintf(out, constants.MsgJobSchedule, s.Schedule)
		}
		if s.NextRun != nil {
			fmt.Fprintf(out, constants.MsgJobNextRun, s.NextRun.Format(time.RFC3339))
		}
		if s.Mode != "" || s.Channel != "" || s.To != "" {
			fmt.Fprintf(out, constants.MsgJobDelivery, describeDelivery(s))
		}
		if s.Kind != "" {
			payload := s.Kind
			if s.Model != "" {
				payload += " (" + s.Model + ")"
			}
			fmt.Fprintf(out, constants.MsgJobPayload, payload)
		}
		if s.Problem != "" {
			fmt.Fprintf(out, "   Problem:  %s\n", s.Problem)
		}
		fmt.Fprint(out, constants.MsgJobsListSep)
	}
	fmt.Fprintf(out, constants.MsgJobsTotal, len(summaries))
}

func describeDelivery(s jobs.Summary) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{s.Mode, s.Channel, config.MaskRecipient(s.To)} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " → ")
}
