// Package metrics counts what one run did and can dump the counters in the
// Prometheus text format, for node_exporter's textfile collector.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run holds the counters of a single invocation on a private registry.
type Run struct {
	reg *prometheus.Registry

	RowsScanned  *prometheus.CounterVec
	RowsMatched  *prometheus.CounterVec
	FilesWritten *prometheus.CounterVec
	RecordErrors *prometheus.CounterVec
	LastRun      prometheus.Gauge
	Duration     prometheus.Gauge
}

func NewRun() *Run {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Run{
		reg: reg,
		RowsScanned: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "csv2nfo_rows_scanned_total",
				Help: "Dataset rows read per media kind",
			},
			[]string{"kind"},
		),
		RowsMatched: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "csv2nfo_rows_matched_total",
				Help: "Rows selected by the search per media kind",
			},
			[]string{"kind"},
		),
		FilesWritten: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "csv2nfo_files_written_total",
				Help: "NFO files written per media kind",
			},
			[]string{"kind"},
		),
		RecordErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "csv2nfo_record_errors_total",
				Help: "Records that could not be rendered",
			},
			[]string{"kind", "reason"},
		),
		LastRun: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "csv2nfo_last_run_timestamp_seconds",
				Help: "Unix time the run finished",
			},
		),
		Duration: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "csv2nfo_last_run_duration_seconds",
				Help: "Wall time of the run",
			},
		),
	}
}

// Gatherer exposes the registry, mainly for tests.
func (r *Run) Gatherer() prometheus.Gatherer { return r.reg }

// Finish stamps the run time and duration.
func (r *Run) Finish(started time.Time) {
	now := time.Now()
	r.LastRun.Set(float64(now.Unix()))
	r.Duration.Set(now.Sub(started).Seconds())
}

// WriteTextfile dumps all counters to path.
func (r *Run) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
