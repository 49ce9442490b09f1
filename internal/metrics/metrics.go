// Package metrics collects per-run counters of a patch run and exports them
// for the node-exporter textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Run holds the metrics of a single cronpatch invocation.
type Run struct {
	registry *prometheus.Registry

	jobsScanned    prometheus.Counter
	jobsUpdated    *prometheus.CounterVec
	backupsWritten prometheus.Counter
	backupsPruned  prometheus.Counter
	runErrors      *prometheus.CounterVec
	lastRun        prometheus.Gauge
}

// NewRun creates a fresh registry for the named command (fix-delivery, set-model, prune-backups).
func NewRun(namespace, command string) *Run {
	labels := prometheus.Labels{"command": command}

	r := &Run{
		registry: prometheus.NewRegistry(),
		jobsScanned: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Name:        "jobs_scanned_total",
				Help:        "Number of cron job records inspected",
				ConstLabels: labels,
			},
		),
		jobsUpdated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Name:        "jobs_updated_total",
				Help:        "Number of rule applications that changed a cron job record",
				ConstLabels: labels,
			},
			[]string{"rule"},
		),
		backupsWritten: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Name:        "backups_written_total",
				Help:        "Number of backup files written",
				ConstLabels: labels,
			},
		),
		backupsPruned: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Name:        "backups_pruned_total",
				Help:        "Number of old backup files deleted by the retention policy",
				ConstLabels: labels,
			},
		),
		runErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Name:        "run_errors_total",
				Help:        "Number of failed runs by error kind",
				ConstLabels: labels,
			},
			[]string{"kind"},
		),
		lastRun: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace:   namespace,
				Name:        "last_run_timestamp_seconds",
				Help:        "Unix time of the last run",
				ConstLabels: labels,
			},
		),
	}

	r.registry.MustRegister(r.jobsScanned, r.jobsUpdated, r.backupsWritten, r.backupsPruned, r.runErrors, r.lastRun)
	return r
}

func (r *Run) JobScanned() {
	r.jobsScanned.Inc()
}

func (r *Run) JobUpdated(rule string) {
	r.jobsUpdated.WithLabelValues(rule).Inc()
}

func (r *Run) BackupWritten() {
	r.backupsWritten.Inc()
}

func (r *Run) BackupsPruned(n int) {
	r.backupsPruned.Add(float64(n))
}

// RunFailed counts a failed run under the given error kind.
func (r *Run) RunFailed(kind string) {
	r.runErrors.WithLabelValues(kind).Inc()
}

// Finish stamps the run time.
func (r *Run) Finish(t time.Time) {
	r.lastRun.Set(float64(t.Unix()))
}

// Registry exposes the underlying registry.
func (r *Run) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes the metrics atomically to path in the text exposition format.
func (r *Run) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
