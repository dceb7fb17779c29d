// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"rnaseqde/internal/config"
	"rnaseqde/internal/logging"
	"rnaseqde/internal/output"
	"rnaseqde/internal/pipeline"
	"rnaseqde/internal/report"
	"rnaseqde/internal/version"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitRuntime   = 3
	ExitCancelled = 130
)

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageErr(err error) error { return &exitError{code: ExitUsage, err: err} }

// flagValues holds raw flag values; only flags the user set override the
// configuration.
type flagValues struct {
	configPath  string
	output      string
	genes       []string
	rateA       float64
	rateB       float64
	replicates  int
	seed        uint64
	alpha       float64
	equalVar    bool
	table       string
	tableFormat string
	metricsFile string

	verbose bool
	quiet   bool
	version bool
}

func newCommand(stdout, stderr io.Writer) *cobra.Command {
	var fv flagValues
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "rnaseq-de",
		Short: "Simulated RNA-Seq differential expression report",
		Long: `rnaseq-de simulates replicate read counts for a gene list under two
conditions, tests each gene with a two-sample t-test, corrects the p-values
with Benjamini–Hochberg, and writes a plain-text report of the genes below
the significance threshold together with their GO annotations.

With no flags it runs the built-in analysis and writes ` + report.DefaultPath + `.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if fv.version {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "rnaseq-de version %s\n", version.Version)
				return err
			}
			cfg, err := resolveConfig(cmd, fv)
			if err != nil {
				return usageErr(err)
			}
			return run(cmd.Context(), cfg, fv, cmd.OutOrStdout(), stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageErr(err) })

	f := cmd.Flags()
	f.StringVarP(&fv.configPath, "config", "c", "", "YAML configuration file")
	f.StringVarP(&fv.output, "output", "o", def.Output, "report path")
	f.StringArrayVarP(&fv.genes, "gene", "g", nil, "gene identifier (repeatable; replaces the gene list)")
	f.Float64Var(&fv.rateA, "rate-a", def.RateA, "Poisson rate for condition A")
	f.Float64Var(&fv.rateB, "rate-b", def.RateB, "Poisson rate for condition B")
	f.IntVarP(&fv.replicates, "replicates", "n", def.Replicates, "replicates per condition")
	f.Uint64Var(&fv.seed, "seed", def.Seed, "random seed")
	f.Float64Var(&fv.alpha, "alpha", def.Alpha, "adjusted p-value threshold")
	f.BoolVar(&fv.equalVar, "equal-var", def.EqualVar, "assume equal variances (Student) instead of Welch")
	f.StringVar(&fv.table, "table", "", "also export the full gene table to this path")
	f.StringVar(&fv.tableFormat, "table-format", def.TableFormat, "table export format: tsv | json")
	f.StringVar(&fv.metricsFile, "metrics-file", "", "write run metrics in Prometheus text format")
	f.BoolVarP(&fv.verbose, "verbose", "v", false, "debug logging")
	f.BoolVarP(&fv.quiet, "quiet", "q", false, "only log warnings and errors")
	f.BoolVar(&fv.version, "version", false, "print version and exit")
	return cmd
}

// resolveConfig layers defaults, the config file, then explicitly set flags.
func resolveConfig(cmd *cobra.Command, fv flagValues) (config.Config, error) {
	cfg := config.Default()
	if fv.configPath != "" {
		var err error
		if cfg, err = config.Load(fv.configPath); err != nil {
			return cfg, err
		}
	}

	set := cmd.Flags().Changed
	if set("output") {
		cfg.Output = fv.output
	}
	if set("gene") {
		cfg.Genes = fv.genes
	}
	if set("rate-a") {
		cfg.RateA = fv.rateA
	}
	if set("rate-b") {
		cfg.RateB = fv.rateB
	}
	if set("replicates") {
		cfg.Replicates = fv.replicates
	}
	if set("seed") {
		cfg.Seed = fv.seed
	}
	if set("alpha") {
		cfg.Alpha = fv.alpha
	}
	if set("equal-var") {
		cfg.EqualVar = fv.equalVar
	}
	if set("table") {
		cfg.Table = fv.table
	}
	if set("table-format") {
		cfg.TableFormat = fv.tableFormat
	}
	if set("metrics-file") {
		cfg.MetricsFile = fv.metricsFile
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, cfg config.Config, fv flagValues, stdout, stderr io.Writer) error {
	log := logging.New(stderr, fv.verbose, fv.quiet)
	defer func() { _ = log.Sync() }()

	res, err := pipeline.Run(ctx, cfg, log)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return &exitError{code: ExitCancelled, err: err}
		}
		return &exitError{code: ExitRuntime, err: err}
	}

	outw := bufio.NewWriter(stdout)
	_, _ = fmt.Fprintln(outw, report.Confirmation(res.ReportPath))
	if err := outw.Flush(); err != nil && !output.IsBrokenPipe(err) {
		return &exitError{code: ExitRuntime, err: err}
	}
	return nil
}

// RunContext parses argv, runs the analysis, and returns the exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	cmd := newCommand(stdout, stderr)
	cmd.SetArgs(argv)
	err := cmd.ExecuteContext(parent)
	if err == nil {
		return ExitOK
	}

	_, _ = fmt.Fprintln(stderr, "error:", err)
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.code == ExitUsage {
			_, _ = fmt.Fprintln(stderr, "Run 'rnaseq-de --help' for usage.")
		}
		return ee.code
	}
	// cobra's own argument validation
	return ExitUsage
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
