// Package metrics records per-run gauges and exports them in the Prometheus
// text format for the node_exporter textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"rnaseqde/internal/gene"
)

// Run holds the gauges of a single analysis. Each Run owns its registry so
// tests and repeated runs never share state.
type Run struct {
	reg *prometheus.Registry

	tested      prometheus.Gauge
	significant prometheus.Gauge
	untestable  prometheus.Gauge
	duration    prometheus.Gauge
	lastSuccess prometheus.Gauge
}

// New registers the run gauges on a fresh registry.
func New() *Run {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Run{
		reg: reg,
		tested: f.NewGauge(prometheus.GaugeOpts{
			Name: "rnaseq_genes_tested",
			Help: "Number of genes tested in the last run",
		}),
		significant: f.NewGauge(prometheus.GaugeOpts{
			Name: "rnaseq_genes_significant",
			Help: "Number of genes below the adjusted p-value threshold in the last run",
		}),
		untestable: f.NewGauge(prometheus.GaugeOpts{
			Name: "rnaseq_genes_untestable",
			Help: "Number of genes whose t-test was undefined in the last run",
		}),
		duration: f.NewGauge(prometheus.GaugeOpts{
			Name: "rnaseq_run_duration_seconds",
			Help: "Wall time of the last run",
		}),
		lastSuccess: f.NewGauge(prometheus.GaugeOpts{
			Name: "rnaseq_last_success_timestamp_seconds",
			Help: "Unix time of the last successful run",
		}),
	}
}

// Observe records the outcome of the statistics and filter stages.
func (r *Run) Observe(all, significant gene.Table) {
	r.tested.Set(float64(len(all)))
	r.significant.Set(float64(len(significant)))
	r.untestable.Set(float64(all.Untestable()))
}

// Finish records the run duration and success time.
func (r *Run) Finish(elapsed time.Duration, now time.Time) {
	r.duration.Set(elapsed.Seconds())
	r.lastSuccess.Set(float64(now.Unix()))
}

// Gatherer exposes the registry.
func (r *Run) Gatherer() prometheus.Gatherer { return r.reg }

// WriteTextfile writes the gauges to path atomically.
func (r *Run) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.Gatherer()); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
