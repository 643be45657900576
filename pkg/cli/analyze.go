package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gcat/gcat/internal/engine"
	"github.com/gcat/gcat/internal/watcher"
	"github.com/gcat/gcat/pkg/config"
	"github.com/gcat/gcat/pkg/report"
	"github.com/gcat/gcat/pkg/types"
	"github.com/spf13/cobra"
)

// ErrAnalysisFailed is returned when no quantity could be analysed
var ErrAnalysisFailed = errors.New("analysis failed for every quantity")

type analyzeFlags struct {
	grids      gridFlags
	studyFile  string
	quantity   string
	unit       string
	f1, f2, f3 float64
	watch      bool
}

func (c *CLI) newAnalyzeCmd() *cobra.Command {
	var opts analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute the apparent order, extrapolated value and GCI",
		Long: `Run the grid convergence procedure on a study file or on a single quantity
given on the command line.

Solver settings given by flag, GCAT_ environment variable or gcat.yaml
override those of the study file.`,
		Example: `  gcat analyze --study cavity.yaml --format json
  gcat analyze --n1 18000 --n2 8000 --n3 4500 --area 1 --f1 6.063 --f2 5.972 --f3 5.863
  gcat analyze --study cavity.yaml --watch --notify`,
		Args: cobra.NoArgs,
		RunE: c.run(func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(c.viper, cmd.Flags(),
				keyFormat, keySafety, keyOmega, keyTolerance, keyMaxIter, keyMaxResidual,
				keyParallelism, keyFailFast, keyNotify); err != nil {
				return err
			}
			return c.runAnalyze(cmd.Context(), &opts)
		}),
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.studyFile, "study", "s", "", "study file (JSON or YAML)")
	opts.grids.register(cmd)
	opts.grids.registerSizes(cmd)
	flags.Float64Var(&opts.f1, "f1", 0, "solution on the fine grid")
	flags.Float64Var(&opts.f2, "f2", 0, "solution on the medium grid")
	flags.Float64Var(&opts.f3, "f3", 0, "solution on the coarse grid")
	flags.StringVar(&opts.quantity, "name", "f", "name of the quantity given by --f1..--f3")
	flags.StringVar(&opts.unit, "unit", "", "unit of the quantity given by --f1..--f3")
	addSolverFlags(flags)
	flags.String(keyFormat, "text", "output format (text, json, yaml)")
	flags.Int(keyParallelism, 0, "quantities analysed concurrently (0: all)")
	flags.Bool(keyFailFast, false, "stop at the first quantity that fails")
	flags.Bool(keyNotify, false, "send a desktop notification when an analysis finishes")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "re-run the analysis whenever the study file changes")

	cmd.MarkFlagsRequiredTogether("f1", "f2", "f3")
	cmd.MarkFlagsMutuallyExclusive("study", "f1")
	cmd.MarkFlagsMutuallyExclusive("study", "n1")
	cmd.MarkFlagsMutuallyExclusive("study", "h1")
	cmd.MarkFlagsOneRequired("study", "f1")

	return cmd
}

func (c *CLI) runAnalyze(ctx context.Context, opts *analyzeFlags) error {
	format, err := report.ParseFormat(c.viper.GetString(keyFormat))
	if err != nil {
		return err
	}
	renderer := report.NewRenderer(format, c.output, c.config.NoColor)
	render := func(r *types.Report) error { return renderer.Render(r) }

	analyzer := engine.NewDependencyFactory(c.logger, engineSettings(c.viper)).CreateAnalyzer(nil)

	if opts.watch {
		if opts.studyFile == "" {
			return fmt.Errorf("--watch requires --study")
		}
		return c.watchStudy(ctx, opts.studyFile, analyzer, render)
	}

	var study *types.Study
	if opts.studyFile != "" {
		study, err = config.NewManager().LoadStudy(opts.studyFile)
		if err != nil {
			return err
		}
	} else {
		study, err = c.studyFromFlags(opts)
		if err != nil {
			return err
		}
	}
	applySolverSettings(c.viper, study)

	result, err := analyzer.Analyze(ctx, study)
	if err != nil {
		return err
	}
	if err := render(result); err != nil {
		return err
	}
	switch result.Status() {
	case types.AnalysisStatusFailed:
		return ErrAnalysisFailed
	case types.AnalysisStatusPartial:
		c.printWarning(fmt.Sprintf("%d of %d quantities failed", countFailed(result), len(result.Quantities)))
	}
	return nil
}

func countFailed(r *types.Report) int {
	n := 0
	for _, q := range r.Quantities {
		if q.Failed() {
			n++
		}
	}
	return n
}

func (c *CLI) studyFromFlags(opts *analyzeFlags) (*types.Study, error) {
	study := opts.grids.study(opts.quantity)
	study.Quantities = []types.Quantity{{
		Name:   opts.quantity,
		Unit:   opts.unit,
		Values: []float64{opts.f1, opts.f2, opts.f3},
	}}
	if err := config.NewManager().ValidateStudy(study); err != nil {
		return nil, err
	}
	return study, nil
}

func (c *CLI) watchStudy(ctx context.Context, path string, analyzer *engine.Analyzer, render watcher.Renderer) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w, err := watcher.New(path, c.logger)
	if err != nil {
		return err
	}
	defer w.Close()

	c.printInfo(fmt.Sprintf("Watching %s, press Ctrl+C to stop", w.Path()))
	session := watcher.NewSession(path, analyzer, render, c.logger).
		WithOverrides(func(study *types.Study) { applySolverSettings(c.viper, study) })
	return session.Watch(ctx, w)
}
