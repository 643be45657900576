package engine

import (
	"context"
	"fmt"
	"math"
	"time"

	gcontext "github.com/gcat/gcat/pkg/context"
	"github.com/gcat/gcat/pkg/convergence"
	"github.com/gcat/gcat/pkg/interfaces"
	"github.com/gcat/gcat/pkg/logger"
	"github.com/gcat/gcat/pkg/types"
)

var _ interfaces.StudyAnalyzer = (*Analyzer)(nil)

// Analyzer runs the grid convergence pipeline over every quantity of a study
type Analyzer struct {
	opts     Options
	logger   logger.Logger
	notifier interfaces.Notifier
}

// NewAnalyzer creates an analyzer. The notifier may be nil.
func NewAnalyzer(opts Options, log logger.Logger, notifier interfaces.Notifier) *Analyzer {
	if opts.AsymptoticTolerance <= 0 {
		opts.AsymptoticTolerance = DefaultAsymptoticTolerance
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Analyzer{
		opts:     opts,
		logger:   log,
		notifier: notifier,
	}
}

// Check resolves the representative grid sizes and refinement ratios
// without analysing any quantity.
func (a *Analyzer) Check(study *types.Study) (types.GridSummary, error) {
	if study == nil {
		return types.GridSummary{}, ErrNilStudy
	}
	grids, err := study.ResolveGrids()
	if err != nil {
		return types.GridSummary{}, fmt.Errorf("resolving grids: %w", err)
	}
	return grids, nil
}

// Analyze computes the apparent order, the extrapolated value and the
// grid convergence indices of every quantity in the study.
//
// Quantity failures are recorded in the report unless FailFast is set,
// in which case the first failure is returned and no report is produced.
func (a *Analyzer) Analyze(ctx context.Context, study *types.Study) (*types.Report, error) {
	if study == nil {
		return nil, ErrNilStudy
	}

	ctx = gcontext.EnrichContext(gcontext.WithOperation(ctx, "analyze"))
	log := logger.WithContext(ctx, a.logger)
	start := time.Now()

	report, err := a.analyze(ctx, log, study)
	if err != nil {
		log.Error("Analysis failed", logger.WithField("study", study.Name), logger.WithField("error", err))
		if a.notifier != nil {
			a.notifier.NotifyAnalysisFailure(study.Name, err)
		}
		return nil, err
	}

	report.Duration = time.Since(start)
	status := report.Status()
	switch status {
	case types.AnalysisStatusSucceeded:
		log.Success("Analysis complete", logger.WithField("quantities", len(report.Quantities)))
	default:
		log.Warn("Analysis finished with failures", logger.WithField("status", status))
	}
	if a.notifier != nil {
		a.notifier.NotifyAnalysisSuccess(study.Name, status, report.Duration)
	}
	return report, nil
}

func (a *Analyzer) analyze(ctx context.Context, log logger.Logger, study *types.Study) (*types.Report, error) {
	if len(study.Quantities) == 0 {
		return nil, ErrNoQuantities
	}

	grids, err := a.Check(study)
	if err != nil {
		return nil, err
	}

	opts := study.Solver.Options()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	safety := study.Solver.GetSafetyFactor()
	if !(safety > 0) {
		return nil, fmt.Errorf("safety factor %g must be positive: %w", safety, convergence.ErrInvalidParameter)
	}

	log.Debug("Resolved grids",
		logger.WithField("r21", grids.RefinementRatio21),
		logger.WithField("r32", grids.RefinementRatio32))

	results := make([]types.QuantityResult, len(study.Quantities))
	group, gctx := NewSafeGroup(ctx, log)
	if a.opts.Parallelism > 0 {
		group.SetLimit(a.opts.Parallelism)
	}

	for i, q := range study.Quantities {
		i, q := i, q
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			qctx := gcontext.WithQuantity(gctx, q.Name)
			qlog := logger.WithContext(qctx, a.logger)

			res, err := a.analyzeQuantity(grids, q, &opts, safety)
			if err != nil {
				if a.opts.FailFast {
					return fmt.Errorf("quantity %q: %w", q.Name, err)
				}
				qlog.Warn("Quantity analysis failed", logger.WithField("error", err))
				res.Error = err.Error()
			} else {
				qlog.Debug("Quantity analysed",
					logger.WithField("order", res.Order),
					logger.WithField("iterations", res.Iterations))
			}
			results[i] = res
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &types.Report{
		ID:           gcontext.GetRunID(ctx),
		Study:        study.Name,
		GeneratedAt:  time.Now(),
		SafetyFactor: safety,
		Grids:        grids,
		Quantities:   results,
	}, nil
}

// analyzeQuantity follows the three-grid procedure: apparent order,
// extrapolation and GCI for the fine pair, GCI for the coarse pair and
// the asymptotic range check.
func (a *Analyzer) analyzeQuantity(grids types.GridSummary, q types.Quantity, opts *convergence.SolverOptions, safety float64) (types.QuantityResult, error) {
	res := types.QuantityResult{Name: q.Name, Unit: q.Unit}
	if len(q.Values) != len(types.GridLevels) {
		return res, fmt.Errorf("expected %d values, got %d: %w", len(types.GridLevels), len(q.Values), convergence.ErrInvalidParameter)
	}

	h := grids.Sizes()
	f1, f2, f3 := q.Values[0], q.Values[1], q.Values[2]
	r21, r32 := grids.RefinementRatio21, grids.RefinementRatio32

	sol, err := convergence.SolveApparentOrder(h[0], h[1], h[2], f1, f2, f3, opts)
	if err != nil {
		return res, fmt.Errorf("apparent order: %w", err)
	}
	p := sol.Order
	res.Order = p
	res.Iterations = sol.Iterations
	res.Oscillatory = sol.Oscillatory

	if res.Extrapolated, err = convergence.RichardsonExtrapolation(h[0], h[1], f1, f2, p); err != nil {
		return res, fmt.Errorf("extrapolation: %w", err)
	}
	if res.RelativeError21, err = convergence.RelativeError(f1, f2); err != nil {
		return res, fmt.Errorf("relative error 21: %w", err)
	}
	if res.RelativeError32, err = convergence.RelativeError(f2, f3); err != nil {
		return res, fmt.Errorf("relative error 32: %w", err)
	}
	if res.ExtrapolatedError, err = convergence.ExtrapolatedRelativeError(f1, res.Extrapolated); err != nil {
		return res, fmt.Errorf("extrapolated error: %w", err)
	}
	if res.GCIFine21, err = convergence.GCIFine(f1, f2, r21, p, safety); err != nil {
		return res, fmt.Errorf("GCI21: %w", err)
	}
	if res.GCICoarse21, err = convergence.GCICoarse(f1, f2, r21, p, safety); err != nil {
		return res, fmt.Errorf("GCI21: %w", err)
	}
	if res.GCIFine32, err = convergence.GCIFine(f2, f3, r32, p, safety); err != nil {
		return res, fmt.Errorf("GCI32: %w", err)
	}
	if res.GCICoarse32, err = convergence.GCICoarse(f2, f3, r32, p, safety); err != nil {
		return res, fmt.Errorf("GCI32: %w", err)
	}
	if res.AsymptoticRatio, err = convergence.AsymptoticRatio(res.GCIFine21, res.GCIFine32, r21, p); err != nil {
		return res, fmt.Errorf("asymptotic ratio: %w", err)
	}
	res.InAsymptoticRange = math.Abs(res.AsymptoticRatio-1) <= a.opts.AsymptoticTolerance

	return res, nil
}
