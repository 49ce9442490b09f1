package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const listJobs = `{"jobs":[
  {"name":"morning","schedule":{"kind":"cron","expr":"0 9 * * *"},
   "delivery":{"mode":"announce","channel":"telegram","to":"1234567890"},
   "payload":{"kind":"agentTurn","model":"cursor/auto"}},
  {"name":"hourly","enabled":false,"schedule":{"kind":"every","everyMs":3600000}}
]}`

func TestList_Text(t *testing.T) {
	dir := isolate(t)
	path := writeJobs(t, dir, listJobs)

	out, err := execute(t, "list", "--jobs", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Cron Jobs:")
	assert.Contains(t, out, "   Name:     morning\n")
	assert.Contains(t, out, "   Schedule: cron 0 9 * * *\n")
	assert.Contains(t, out, "   Next run: ")
	assert.Contains(t, out, "   Delivery: announce → telegram → 12******90\n")
	assert.Contains(t, out, "   Payload:  agentTurn (cursor/auto)\n")
	assert.Contains(t, out, "   Enabled:  false\n")
	assert.Contains(t, out, "Total: 2 job(s)\n")
	assert.NotContains(t, out, "1234567890")
}

func TestList_IgnoresCommandSpecificValues(t *testing.T) {
	dir := isolate(t)
	path := writeJobs(t, dir, listJobs)
	t.Setenv("OPENCLAW_CRON_DEFAULT_TO", "YOUR_TELEGRAM_ID")
	t.Setenv("OPENCLAW_CRON_MODEL", "auto")

	out, err := execute(t, "list", "--jobs", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 2 job(s)\n")
}

func TestList_Empty(t *testing.T) {
	dir := isolate(t)
	path := writeJobs(t, dir, `{"jobs":[]}`)

	out, err := execute(t, "list", "--jobs", path)
	require.NoError(t, err)
	assert.Equal(t, "No cron jobs found.\n", out)
}

func TestList_JSON(t *testing.T) {
	dir := isolate(t)
	path := writeJobs(t, dir, listJobs)

	out, err := execute(t, "list", "--jobs", path, "--format", "json")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "morning", got[0]["name"])
	assert.Equal(t, "cursor/auto", got[0]["model"])
	assert.Equal(t, false, got[1]["enabled"])
}

func TestList_YAML(t *testing.T) {
	dir := isolate(t)
	path := writeJobs(t, dir, listJobs)

	out, err := execute(t, "list", "--jobs", path, "-f", "yaml")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "hourly", got[1]["name"])
	assert.Equal(t, "every 1h0m0s", got[1]["schedule"])
}

func TestList_UnknownFormat(t *testing.T) {
	dir := isolate(t)
	path := writeJobs(t, dir, listJobs)

	_, err := execute(t, "list", "--jobs", path, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestList_MissingFile(t *testing.T) {
	dir := isolate(t)

	_, err := execute(t, "list", "--jobs", dir+"/absent.json")
	require.Error(t, err)
}
