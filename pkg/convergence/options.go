package convergence

const (
	// DefaultOmega is the default relaxation factor of the order solver.
	DefaultOmega = 0.5

	// DefaultTolerance is the default residual tolerance of the order solver.
	DefaultTolerance = 1e-5

	// DefaultMaxIterations caps the number of solver iterations.
	DefaultMaxIterations = 1_000_000

	// DefaultMaxResidual caps the magnitude of a single iteration residual.
	DefaultMaxResidual = 1e6

	// DefaultSafetyFactor is the GCI safety factor for studies with three
	// or more grids.
	DefaultSafetyFactor = 1.25

	// TwoGridSafetyFactor is the conservative GCI safety factor for
	// two-grid studies.
	TwoGridSafetyFactor = 3.0
)

// SolverOptions configures the apparent order of convergence solver.
//
// Fields:
//   - Omega: relaxation factor in [0, 1] blending the previous
//     iterate with the new estimate: p = (1-Omega)·p_old + Omega·p_raw.
//   - Tolerance: the solver stops once |p_new - p_old| ≤ Tolerance.
//   - MaxIterations: iteration budget; 0 means no iteration is allowed.
//   - MaxResidual: bound on |p_new - p_old|; exceeding it aborts.
type SolverOptions struct {
	Omega         float64
	Tolerance     float64
	MaxIterations int
	MaxResidual   float64
}

// DefaultSolverOptions returns the solver defaults
// {Omega: 0.5, Tolerance: 1e-5, MaxIterations: 1e6, MaxResidual: 1e6}.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Omega:         DefaultOmega,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		MaxResidual:   DefaultMaxResidual,
	}
}

// Validate reports ErrInvalidParameter for out-of-domain settings.
func (o SolverOptions) Validate() error {
	switch {
	case o.Omega < 0 || o.Omega > 1:
		return invalidf("relaxation factor omega=%g out of bounds [0, 1]", o.Omega)
	case !(o.Tolerance > 0):
		return invalidf("tolerance must be positive, got %g", o.Tolerance)
	case o.MaxIterations < 0:
		return invalidf("max iterations must be non-negative, got %d", o.MaxIterations)
	case !(o.MaxResidual > 0):
		return invalidf("max residual must be positive, got %g", o.MaxResidual)
	}
	return nil
}
