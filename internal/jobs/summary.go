// Package jobs renders a read-only view of the records in an OpenClaw cron jobs file.
package jobs

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/aatumaykin/cronpatch/internal/patcher"
)

// Schedule kinds used by OpenClaw.
const (
	ScheduleCron  = "cron"
	ScheduleEvery = "every"
	ScheduleAt    = "at"
)

// Summary is the flattened view of one job.
type Summary struct {
	Name     string     `json:"name" yaml:"name"`
	Enabled  bool       `json:"enabled" yaml:"enabled"`
	Schedule string     `json:"schedule,omitempty" yaml:"schedule,omitempty"`
	NextRun  *time.Time `json:"next_run,omitempty" yaml:"next_run,omitempty"`
	Mode     string     `json:"mode,omitempty" yaml:"mode,omitempty"`
	Channel  string     `json:"channel,omitempty" yaml:"channel,omitempty"`
	To       string     `json:"to,omitempty" yaml:"to,omitempty"`
	Kind     string     `json:"kind,omitempty" yaml:"kind,omitempty"`
	Model    string     `json:"model,omitempty" yaml:"model,omitempty"`
	Problem  string     `json:"problem,omitempty" yaml:"problem,omitempty"`
}

// parser accepts standard 5-field expressions plus descriptors such as @daily.
var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Summarize builds the view of rec. now is used to compute the next run.
func Summarize(rec patcher.Record, now time.Time) Summary {
	s := Summary{Name: rec.Name(), Enabled: true}

	if enabled, ok := rec["enabled"].(bool); ok {
		s.Enabled = enabled
	}

	if sched, ok := rec.Object("schedule"); ok {
		s.Schedule, s.NextRun, s.Problem = describeSchedule(sched, now)
	}

	if d, ok := rec.Object("delivery"); ok {
		s.Mode = str(d["mode"])
		s.Channel = str(d["channel"])
		s.To = str(d["to"])
	}

	if p, ok := rec.Object("payload"); ok {
		s.Kind = str(p["kind"])
		s.Model = str(p["model"])
	}

	return s
}

// SummarizeAll builds the views of every record in doc.
func SummarizeAll(doc *patcher.Document, now time.Time) []Summary {
	out := make([]Summary, 0, doc.Len())
	for _, rec := range doc.Records() {
		out = append(out, Summarize(rec, now))
	}
	return out
}

func describeSchedule(sched map[string]any, now time.Time) (string, *time.Time, string) {
	switch kind := str(sched["kind"]); kind {
	case ScheduleCron:
		expr := str(sched["expr"])
		spec := expr
		tz := str(sched["tz"])
		if tz != "" {
			spec = "CRON_TZ=" + tz + " " + expr
		}

		label := "cron " + expr
		if tz != "" {
			label += " (" + tz + ")"
		}

		parsed, err := parser.Parse(spec)
		if err != nil {
			return label, nil, fmt.Sprintf("invalid cron expression: %v", err)
		}
		next := parsed.Next(now)
		return label, &next, ""

	case ScheduleEvery:
		ms, ok := millis(sched["everyMs"])
		if !ok || ms <= 0 {
			return "every ?", nil, "missing everyMs"
		}
		every := time.Duration(ms) * time.Millisecond
		return "every " + every.String(), nil, ""

	case ScheduleAt:
		at, ok := atTime(sched)
		if !ok {
			return "at ?", nil, "missing at time"
		}
		label := "at " + at.UTC().Format(time.RFC3339)
		if at.After(now) {
			return label, &at, ""
		}
		return label, nil, ""

	default:
		return kind, nil, ""
	}
}

func atTime(sched map[string]any) (time.Time, bool) {
	if ms, ok := millis(sched["atMs"]); ok {
		return time.UnixMilli(ms), true
	}
	if s := str(sched["at"]); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// millis reads an integer that may have been decoded as json.Number or float64.
func millis(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case float64:
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
