package patcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// BackupSuffix separates the source path from the millisecond timestamp.
const BackupSuffix = ".bak."

// openBackupFile is replaced in tests to simulate write failures.
var openBackupFile = os.OpenFile

// BackupPath returns the backup location for path taken at t.
func BackupPath(path string, t time.Time) string {
	return path + BackupSuffix + strconv.FormatInt(t.UnixMilli(), 10)
}

// writeBackup copies raw to a fresh backup file next to path. An existing
// backup with the same name is never overwritten.
func writeBackup(path string, raw []byte, t time.Time) (string, error) {
	backupPath := BackupPath(path, t)

	mode := fileMode(path)
	file, err := openBackupFile(backupPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, mode)
	if err != nil {
		return "", &WriteError{Stage: StageBackup, Path: backupPath, Err: err}
	}

	// A partial backup must not stay behind looking like a valid one.
	discard := func(err error) (string, error) {
		_ = file.Close()
		_ = os.Remove(backupPath)
		return "", &WriteError{Stage: StageBackup, Path: backupPath, Err: err}
	}

	if _, err := file.Write(raw); err != nil {
		return discard(err)
	}
	if err := file.Sync(); err != nil {
		return discard(err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(backupPath)
		return "", &WriteError{Stage: StageBackup, Path: backupPath, Err: err}
	}

	return backupPath, nil
}

// replaceFile writes data to a temporary sibling of path and renames it over path.
func replaceFile(path string, data []byte) error {
	tmpPath := filepath.Join(filepath.Dir(path),
		fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, fileMode(path))
	if err != nil {
		return &WriteError{Stage: StageWrite, Path: path, Err: err}
	}

	cleanup := func(err error) error {
		_ = file.Close()
		_ = os.Remove(tmpPath)
		return &WriteError{Stage: StageWrite, Path: path, Err: err}
	}

	if _, err := file.Write(data); err != nil {
		return cleanup(err)
	}
	if err := file.Sync(); err != nil {
		return cleanup(err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return &WriteError{Stage: StageWrite, Path: path, Err: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return &WriteError{Stage: StageWrite, Path: path, Err: err}
	}
	return nil
}

func fileMode(path string) os.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return 0644
	}
	return info.Mode().Perm()
}
