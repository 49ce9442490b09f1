package cleanup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aatumaykin/cronpatch/internal/patcher"
)

var now = time.UnixMilli(1700000000000)

func setupBackups(t *testing.T, ages ...time.Duration) (string, []string) {
	t.Helper()
	dir := t.TempDir()
	jobsPath := filepath.Join(dir, "jobs.json")
	require.NoError(t, os.WriteFile(jobsPath, []byte(`{"jobs":[]}`), 0644))

	var paths []string
	for _, age := range ages {
		path := patcher.BackupPath(jobsPath, now.Add(-age))
		require.NoError(t, os.WriteFile(path, []byte(`{"jobs":[]}`), 0644))
		paths = append(paths, path)
	}
	return jobsPath, paths
}

func newTestRunner(cfg Config) *Runner {
	r := NewRunner(cfg)
	r.now = func() time.Time { return now }
	return r
}

func TestListBackups(t *testing.T) {
	jobsPath, paths := setupBackups(t, 3*time.Hour, time.Hour, 2*time.Hour)
	dir := filepath.Dir(jobsPath)

	// Not backups of jobs.json
	for _, name := range []string{"jobs.json.bak.abc", "jobs.json.bak.", "other.json.bak.1700000000000", ".jobs.json.x.tmp"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "jobs.json.bak.1600000000000"), 0755))

	backups, err := newTestRunner(Config{}).ListBackups(jobsPath)
	require.NoError(t, err)
	require.Len(t, backups, 3)

	// newest first
	assert.Equal(t, paths[1], backups[0].Path)
	assert.Equal(t, paths[2], backups[1].Path)
	assert.Equal(t, paths[0], backups[2].Path)
	assert.True(t, now.Add(-time.Hour).Equal(backups[0].Taken))
	assert.Equal(t, int64(len(`{"jobs":[]}`)), backups[0].Size)
}

func TestShouldDelete(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		index  int
		age    time.Duration
		want   bool
	}{
		{name: "no policy", config: Config{}, index: 10, age: 1000 * time.Hour, want: false},
		{name: "within keep", config: Config{Keep: 3}, index: 2, want: false},
		{name: "beyond keep", config: Config{Keep: 3}, index: 3, want: true},
		{name: "young", config: Config{MaxAgeDays: 7}, index: 0, age: 6 * 24 * time.Hour, want: false},
		{name: "expired", config: Config{MaxAgeDays: 7}, index: 0, age: 8 * 24 * time.Hour, want: true},
		{name: "expired even within keep", config: Config{Keep: 5, MaxAgeDays: 1}, index: 0, age: 48 * time.Hour, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRunner(tt.config)
			got := r.ShouldDelete(tt.index, BackupInfo{Taken: now.Add(-tt.age)})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_KeepNewest(t *testing.T) {
	jobsPath, paths := setupBackups(t, time.Hour, 2*time.Hour, 3*time.Hour, 4*time.Hour)

	stats, deleted, err := newTestRunner(Config{Keep: 2}).Run(jobsPath, false, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Found)
	assert.Equal(t, 2, stats.Deleted)
	require.Len(t, deleted, 2)

	assert.FileExists(t, paths[0])
	assert.FileExists(t, paths[1])
	assert.NoFileExists(t, paths[2])
	assert.NoFileExists(t, paths[3])
	assert.FileExists(t, jobsPath)
}

func TestRun_DryRun(t *testing.T) {
	jobsPath, paths := setupBackups(t, time.Hour, 30*24*time.Hour)

	stats, deleted, err := newTestRunner(Config{MaxAgeDays: 7}).Run(jobsPath, true, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Deleted)
	require.Len(t, deleted, 1)
	assert.Equal(t, paths[1], deleted[0].Path)
	assert.FileExists(t, paths[1])
}

func TestRun_RemoveFailure(t *testing.T) {
	jobsPath, paths := setupBackups(t, time.Hour, 2*time.Hour, 3*time.Hour)

	r := newTestRunner(Config{Keep: 1})
	r.remove = func(path string) error {
		if path == paths[1] {
			return os.ErrPermission
		}
		return os.Remove(path)
	}

	stats, deleted, err := r.Run(jobsPath, false, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Contains(t, err.Error(), paths[1])

	assert.Equal(t, 1, stats.Deleted)
	assert.Equal(t, 1, stats.Failed)
	require.Len(t, deleted, 1)
	assert.Equal(t, paths[2], deleted[0].Path)
	assert.FileExists(t, paths[1])
	assert.NoFileExists(t, paths[2])
}

func TestRun_MissingDirectory(t *testing.T) {
	stats, deleted, err := newTestRunner(Config{Keep: 1}).Run(filepath.Join(t.TempDir(), "absent", "jobs.json"), false, nil)
	require.NoError(t, err)
	assert.Zero(t, stats.Found)
	assert.Empty(t, deleted)
}

func TestConfig_Enabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{Keep: 1}.Enabled())
	assert.True(t, Config{MaxAgeDays: 1}.Enabled())
}
