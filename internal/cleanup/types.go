// Package cleanup prunes the timestamped backups that patch runs leave next to the jobs file.
package cleanup

import (
	"os"
	"time"
)

// Stats holds statistics about a prune run.
type Stats struct {
	Found      int   // Backups found next to the jobs file
	Deleted    int   // Backups deleted (or that would be deleted on dry-run)
	BytesFreed int64 // Bytes freed
	Failed     int   // Backups that could not be deleted
}

// Config holds the retention policy.
type Config struct {
	Keep       int // Keep the N newest backups (0 = no count limit)
	MaxAgeDays int // Delete backups older than N days (0 = no age limit)
}

// Enabled reports whether the policy would ever delete anything.
func (c Config) Enabled() bool {
	return c.Keep > 0 || c.MaxAgeDays > 0
}

// Runner applies the retention policy.
type Runner struct {
	config Config
	now    func() time.Time
	remove func(path string) error
}

// NewRunner creates a new cleanup runner.
func NewRunner(config Config) *Runner {
	return &Runner{
		config: config,
		now:    time.Now,
		remove: os.Remove,
	}
}
