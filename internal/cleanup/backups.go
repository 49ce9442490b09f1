package cleanup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aatumaykin/cronpatch/internal/logger"
	"github.com/aatumaykin/cronpatch/internal/patcher"
)

// BackupInfo holds information about a backup file.
type BackupInfo struct {
	Path  string
	Taken time.Time // from the unix-millis suffix, not the mtime
	Size  int64
}

// ListBackups lists the backups of jobsPath, newest first.
// Files whose suffix is not a plain millisecond timestamp are ignored.
func (r *Runner) ListBackups(jobsPath string) ([]BackupInfo, error) {
	dir := filepath.Dir(jobsPath)
	prefix := filepath.Base(jobsPath) + patcher.BackupSuffix

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var backups []BackupInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}

		millis, err := strconv.ParseInt(strings.TrimPrefix(entry.Name(), prefix), 10, 64)
		if err != nil || millis <= 0 {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		backups = append(backups, BackupInfo{
			Path:  filepath.Join(dir, entry.Name()),
			Taken: time.UnixMilli(millis),
			Size:  info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Taken.After(backups[j].Taken)
	})

	return backups, nil
}

// ShouldDelete determines if the backup at position index (0 = newest) falls outside the policy.
func (r *Runner) ShouldDelete(index int, backup BackupInfo) bool {
	if r.config.Keep > 0 && index >= r.config.Keep {
		return true
	}

	if r.config.MaxAgeDays > 0 {
		ttl := time.Duration(r.config.MaxAgeDays) * 24 * time.Hour
		if r.now().Sub(backup.Taken) > ttl {
			return true
		}
	}

	return false
}

// Run deletes the backups of jobsPath that fall outside the policy.
// With dryRun nothing is removed; the result lists what would be.
// Failed deletions do not stop the run; they are joined into the returned error.
func (r *Runner) Run(jobsPath string, dryRun bool, log *logger.Logger) (Stats, []BackupInfo, error) {
	if log == nil {
		log = logger.Nop()
	}
	stats := Stats{}

	backups, err := r.ListBackups(jobsPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("jobs directory does not exist, skipping cleanup")
			return stats, nil, nil
		}
		log.Error("failed to list backups for cleanup", err)
		return stats, nil, err
	}
	stats.Found = len(backups)

	log.Debug("found backups for cleanup",
		logger.Field{Key: "count", Value: len(backups)})

	var (
		deleted []BackupInfo
		errs    []error
	)
	for i, backup := range backups {
		if !r.ShouldDelete(i, backup) {
			continue
		}

		if !dryRun {
			if err := r.remove(backup.Path); err != nil && !os.IsNotExist(err) {
				log.Error("failed to delete backup", err,
					logger.Field{Key: "backup", Value: backup.Path})
				stats.Failed++
				errs = append(errs, fmt.Errorf("failed to delete backup %s: %w", backup.Path, err))
				continue
			}
			log.Debug("deleted backup",
				logger.Field{Key: "backup", Value: backup.Path},
				logger.Field{Key: "size_bytes", Value: backup.Size})
		}

		stats.Deleted++
		stats.BytesFreed += backup.Size
		deleted = append(deleted, backup)
	}

	return stats, deleted, errors.Join(errs...)
}
