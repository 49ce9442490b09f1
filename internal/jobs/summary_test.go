package jobs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aatumaykin/cronpatch/internal/patcher"
)

var now = time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)

func load(t *testing.T, content string) *patcher.Document {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	doc, _, err := patcher.Load(path)
	require.NoError(t, err)
	return doc
}

func TestSummarize_CronSchedule(t *testing.T) {
	doc := load(t, `{"jobs":[{
		"name":"morning digest",
		"schedule":{"kind":"cron","expr":"0 9 * * *"},
		"delivery":{"mode":"announce","channel":"telegram","to":"123"},
		"payload":{"kind":"agentTurn","model":"cursor/auto","message":"digest"}
	}]}`)

	got := SummarizeAll(doc, now)
	require.Len(t, got, 1)

	s := got[0]
	assert.Equal(t, "morning digest", s.Name)
	assert.True(t, s.Enabled)
	assert.Equal(t, "cron 0 9 * * *", s.Schedule)
	require.NotNil(t, s.NextRun)
	assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), s.NextRun.UTC())
	assert.Equal(t, "announce", s.Mode)
	assert.Equal(t, "telegram", s.Channel)
	assert.Equal(t, "123", s.To)
	assert.Equal(t, "agentTurn", s.Kind)
	assert.Equal(t, "cursor/auto", s.Model)
	assert.Empty(t, s.Problem)
}

func TestSummarize_CronWithTimezone(t *testing.T) {
	doc := load(t, `{"jobs":[{"name":"tz","schedule":{"kind":"cron","expr":"0 9 * * *","tz":"Europe/Moscow"}}]}`)

	s := SummarizeAll(doc, now)[0]
	assert.Equal(t, "cron 0 9 * * * (Europe/Moscow)", s.Schedule)
	require.NotNil(t, s.NextRun)
	// 09:00 MSK is 06:00 UTC, already past on this day
	assert.Equal(t, time.Date(2026, 3, 11, 6, 0, 0, 0, time.UTC), s.NextRun.UTC())
}

func TestSummarize_InvalidCron(t *testing.T) {
	doc := load(t, `{"jobs":[{"name":"bad","schedule":{"kind":"cron","expr":"not a cron"}}]}`)

	s := SummarizeAll(doc, now)[0]
	assert.Nil(t, s.NextRun)
	assert.Contains(t, s.Problem, "invalid cron expression")
}

func TestSummarize_EveryAndAt(t *testing.T) {
	doc := load(t, `{"jobs":[
		{"name":"hourly","enabled":false,"schedule":{"kind":"every","everyMs":3600000}},
		{"name":"future","schedule":{"kind":"at","atMs":1773136800000}},
		{"name":"past","schedule":{"kind":"at","at":"2026-01-01T00:00:00Z"}},
		{"name":"broken","schedule":{"kind":"every"}}
	]}`)

	got := SummarizeAll(doc, now)
	require.Len(t, got, 4)

	assert.Equal(t, "every 1h0m0s", got[0].Schedule)
	assert.False(t, got[0].Enabled)

	assert.Equal(t, "at 2026-03-10T10:00:00Z", got[1].Schedule)
	require.NotNil(t, got[1].NextRun)

	assert.Equal(t, "at 2026-01-01T00:00:00Z", got[2].Schedule)
	assert.Nil(t, got[2].NextRun)

	assert.Equal(t, "missing everyMs", got[3].Problem)
}

func TestSummarize_MinimalRecord(t *testing.T) {
	s := Summarize(patcher.Record{"name": "bare"}, now)
	assert.Equal(t, Summary{Name: "bare", Enabled: true}, s)
}
