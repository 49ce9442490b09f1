// Package patcher applies ordered field-level rules to the records of a cron
// jobs file and persists the result behind a timestamped backup.
//
// A run never writes anything unless at least one record changed. On apply the
// original bytes are copied to <path>.bak.<unix-millis> first; the patched
// document then replaces the source through a temporary file and a rename.
// Concurrent runs against the same file are not coordinated.
package patcher

import (
	"context"
	"time"

	"github.com/aatumaykin/cronpatch/internal/logger"
)

// RuleFunc inspects a record and either reports it unchanged or returns the
// replacement record and a short human-readable reason.
// Implementations must not mutate the record they are given.
type RuleFunc func(rec Record) (next Record, reason string, changed bool)

// Rule is a named transformation step.
type Rule struct {
	Name  string
	Apply RuleFunc
}

// Recorder receives per-run counters. See internal/metrics for the Prometheus implementation.
type Recorder interface {
	JobScanned()
	JobUpdated(rule string)
	BackupWritten()
}

type nopRecorder struct{}

func (nopRecorder) JobScanned()       {}
func (nopRecorder) JobUpdated(string) {}
func (nopRecorder) BackupWritten()    {}

// Applied describes one rule that changed a record.
type Applied struct {
	Rule   string
	Reason string
}

// Change describes one updated record.
type Change struct {
	Index   int
	Job     string
	Applied []Applied
}

// Result summarizes a run.
type Result struct {
	Path       string
	Total      int
	Updated    int
	Changes    []Change
	DryRun     bool
	Written    bool
	BackupPath string
}

// Patcher runs a fixed rule list against one jobs file.
type Patcher struct {
	path     string
	rules    []Rule
	dryRun   bool
	logger   *logger.Logger
	recorder Recorder
	now      func() time.Time
}

// Option configures a Patcher.
type Option func(*Patcher)

// WithDryRun makes Run compute changes without writing anything.
func WithDryRun(dryRun bool) Option {
	return func(p *Patcher) { p.dryRun = dryRun }
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(p *Patcher) {
		if r != nil {
			p.recorder = r
		}
	}
}

// WithClock overrides the clock used for the backup suffix.
func WithClock(now func() time.Time) Option {
	return func(p *Patcher) {
		if now != nil {
			p.now = now
		}
	}
}

// New creates a Patcher for the jobs file at path.
func New(path string, rules []Rule, log *logger.Logger, opts ...Option) *Patcher {
	if log == nil {
		log = logger.Nop()
	}
	p := &Patcher{
		path:     path,
		rules:    rules,
		logger:   log.With(logger.Field{Key: "file", Value: path}),
		recorder: nopRecorder{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run loads the jobs file, folds every rule over every record and, unless the
// run is a dry-run or nothing changed, writes the backup and the patched file.
func (p *Patcher) Run(ctx context.Context) (Result, error) {
	res := Result{Path: p.path, DryRun: p.dryRun}

	if len(p.rules) == 0 {
		return res, ErrNoRules
	}

	doc, raw, err := Load(p.path)
	if err != nil {
		return res, err
	}
	res.Total = doc.Len()

	res.Changes = p.transform(doc)
	res.Updated = len(res.Changes)

	if res.Updated == 0 {
		p.logger.Info("no jobs needed updates", logger.Field{Key: "total", Value: res.Total})
		return res, nil
	}
	if p.dryRun {
		p.logger.Info("dry-run, nothing written", logger.Field{Key: "updated", Value: res.Updated})
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}

	backupPath, err := writeBackup(p.path, raw, p.now())
	if err != nil {
		p.logger.Error("failed to write backup, source left untouched", err)
		return res, err
	}
	res.BackupPath = backupPath
	p.recorder.BackupWritten()
	p.logger.Debug("backup written", logger.Field{Key: "backup", Value: backupPath})

	if err := ctx.Err(); err != nil {
		return res, err
	}

	data, err := doc.Marshal()
	if err != nil {
		return res, err
	}
	if err := replaceFile(p.path, data); err != nil {
		p.logger.Error("failed to write patched jobs file", err,
			logger.Field{Key: "backup", Value: backupPath})
		return res, err
	}
	res.Written = true

	p.logger.Info("jobs file patched",
		logger.Field{Key: "updated", Value: res.Updated},
		logger.Field{Key: "backup", Value: backupPath})

	return res, nil
}

// transform applies the rules to every record in order, threading each rule's
// output into the next one, and stores the final records back into doc.
func (p *Patcher) transform(doc *Document) []Change {
	var changes []Change

	for i := 0; i < doc.Len(); i++ {
		p.recorder.JobScanned()

		rec := doc.Record(i)
		var applied []Applied
		for _, rule := range p.rules {
			next, reason, changed := rule.Apply(rec)
			if !changed {
				continue
			}
			rec = next
			applied = append(applied, Applied{Rule: rule.Name, Reason: reason})
			p.recorder.JobUpdated(rule.Name)
		}

		if len(applied) == 0 {
			continue
		}

		doc.SetRecord(i, rec)
		changes = append(changes, Change{Index: i, Job: rec.Name(), Applied: applied})

		for _, a := range applied {
			p.logger.Debug("job updated",
				logger.Field{Key: "job", Value: rec.Name()},
				logger.Field{Key: "rule", Value: a.Rule},
				logger.Field{Key: "reason", Value: a.Reason})
		}
	}

	return changes
}
