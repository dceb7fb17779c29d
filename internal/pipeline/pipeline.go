// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"rnaseqde/internal/annotate"
	"rnaseqde/internal/config"
	"rnaseqde/internal/gene"
	"rnaseqde/internal/metrics"
	"rnaseqde/internal/output"
	"rnaseqde/internal/report"
	"rnaseqde/internal/simulate"
	"rnaseqde/internal/stats"
)

// Result is what a run produced.
type Result struct {
	Table       gene.Table // every gene, with statistics
	Significant gene.Table // annotated subset below alpha
	ReportPath  string
}

// Run executes one analysis. It returns the first error encountered; only
// file writes and cancellation can fail.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger) (Result, error) {
	start := time.Now()
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	m := metrics.New()

	tab := simulate.Generate(simulate.NewSource(cfg.Seed), cfg.Params())
	log.Debug("generated counts",
		zap.Int("genes", len(tab)),
		zap.Int("replicates", cfg.Replicates),
		zap.Float64("rate_a", cfg.RateA),
		zap.Float64("rate_b", cfg.RateB),
		zap.Uint64("seed", cfg.Seed))
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	stats.Analyze(tab, cfg.EqualVar)
	log.Info("tested genes",
		zap.Int("genes", len(tab)),
		zap.Int("untestable", tab.Untestable()),
		zap.String("test", testName(cfg.EqualVar)))
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	sig := annotate.Select(tab, cfg.Alpha, cfg.Annotations)
	m.Observe(tab, sig)
	log.Info("selected differentially expressed genes",
		zap.Int("significant", len(sig)),
		zap.Float64("alpha", cfg.Alpha))
	for _, r := range sig {
		log.Debug("significant gene",
			zap.String("gene", r.ID),
			zap.Float64("mean_a", r.MeanA),
			zap.Float64("mean_b", r.MeanB),
			zap.Float64("adj_p", r.AdjPValue),
			zap.Int("go_terms", len(cfg.Annotations.Terms(r.ID))))
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	res := Result{Table: tab, Significant: sig, ReportPath: cfg.Output}
	if err := report.WriteFile(cfg.Output, sig); err != nil {
		return res, err
	}
	log.Info("wrote report", zap.String("path", cfg.Output))

	if cfg.Table != "" {
		if err := output.WriteTableFile(cfg.Table, cfg.TableFormat, withAnnotations(tab, sig)); err != nil {
			return res, err
		}
		log.Info("wrote table", zap.String("path", cfg.Table), zap.String("format", cfg.TableFormat))
	}

	if cfg.MetricsFile != "" {
		m.Finish(time.Since(start), time.Now())
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			return res, err
		}
		log.Debug("wrote metrics", zap.String("path", cfg.MetricsFile))
	}
	return res, nil
}

func testName(equalVar bool) string {
	if equalVar {
		return "student"
	}
	return "welch"
}

// withAnnotations copies tab and carries over the annotations of the
// selected genes, for export only.
func withAnnotations(tab, sig gene.Table) gene.Table {
	byID := make(map[string]string, len(sig))
	for _, r := range sig {
		byID[r.ID] = r.Annotation
	}
	out := make(gene.Table, len(tab))
	copy(out, tab)
	for i := range out {
		out[i].Annotation = byID[out[i].ID]
	}
	return out
}
