package convergence

import "math"

// Solution carries the apparent order of convergence together with the
// diagnostics of the iteration that produced it.
type Solution struct {
	// Order is the apparent order of convergence p.
	Order float64
	// Iterations is the number of relaxed fixed-point iterations performed.
	Iterations int
	// Residual is the last difference p_new - p_old.
	Residual float64
	// Oscillatory reports a negative ratio ε32/ε21, i.e. the solutions
	// alternate around the converged value.
	Oscillatory bool
}

// ApparentOrder computes the apparent order of convergence p from three
// grids h1 < h2 < h3 (fine, medium, coarse) and their solutions f1, f2, f3.
// A nil opts uses DefaultSolverOptions.
//
// See SolveApparentOrder for the algorithm and the error contract.
func ApparentOrder(h1, h2, h3, f1, f2, f3 float64, opts *SolverOptions) (float64, error) {
	sol, err := SolveApparentOrder(h1, h2, h3, f1, f2, f3, opts)
	if err != nil {
		return 0, err
	}
	return sol.Order, nil
}

// SolveApparentOrder solves the implicit equation for the apparent order
// of convergence with a relaxed fixed-point iteration.
//
// Algorithm:
//  1. r21 = h2/h1, r32 = h3/h2.
//  2. ε21 = f2 - f1, ε32 = f3 - f2, ratio = ε32/ε21.
//  3. s = +1 if ratio ≥ 0, else -1 (oscillatory convergence).
//  4. Seed p = |ln|ratio|| / ln(r21).
//  5. Repeat with the previous iterate p:
//     q     = ln((r21^p - s) / (r32^p - s))
//     p_raw = |ln|ratio| + q| / ln(r21)
//     p_new = (1-ω)·p + ω·p_raw
//     until |p_new - p| ≤ tol.
//
// Errors:
//   - ErrInvalidParameter: opts out of domain (checked first).
//   - ErrArithmeticDomain: r21 = 1, ε21 = 0, ε32 = 0, or an undefined
//     logarithm in the correction term q. The last one is raised inside
//     the loop, e.g. when an iterate lands on p = 0 with s = +1 so that
//     r32^p - s = 0; the returned Solution then holds the iterate that
//     broke down.
//   - ErrNotConverged: MaxIterations reached, or |p_new - p| above
//     MaxResidual, before the tolerance was met.
func SolveApparentOrder(h1, h2, h3, f1, f2, f3 float64, opts *SolverOptions) (Solution, error) {
	o := DefaultSolverOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return Solution{}, err
	}

	r21, err := RefinementRatio(h1, h2)
	if err != nil {
		return Solution{}, err
	}
	r32, err := RefinementRatio(h2, h3)
	if err != nil {
		return Solution{}, err
	}
	lnR21 := math.Log(r21)
	if lnR21 == 0 || !finite(lnR21) {
		return Solution{}, domainf("refinement ratio r21=%g must be positive and differ from 1", r21)
	}

	eps21 := f2 - f1
	eps32 := f3 - f2
	if eps21 == 0 {
		return Solution{}, domainf("fine and medium solutions are identical (f1=f2=%g)", f1)
	}
	ratio := eps32 / eps21
	if ratio == 0 || !finite(ratio) {
		return Solution{}, domainf("solution difference ratio ε32/ε21=%g has no logarithm", ratio)
	}

	s := 1.0
	if ratio < 0 {
		s = -1.0
	}
	lnRatio := math.Log(math.Abs(ratio))

	sol := Solution{
		Order:       math.Abs(lnRatio) / lnR21,
		Residual:    math.Inf(1),
		Oscillatory: s < 0,
	}

	for math.Abs(sol.Residual) > o.Tolerance {
		if sol.Iterations >= o.MaxIterations {
			return sol, notConvergedf("no solution after %d iterations (residual %g)", sol.Iterations, sol.Residual)
		}

		q, err := orderCorrection(sol.Order, r21, r32, s)
		if err != nil {
			return sol, err
		}
		raw := math.Abs(lnRatio+q) / lnR21
		next := (1-o.Omega)*sol.Order + o.Omega*raw

		sol.Residual = next - sol.Order
		sol.Order = next
		sol.Iterations++

		// also catches NaN and ±Inf iterates
		if !(math.Abs(sol.Residual) <= o.MaxResidual) {
			return sol, notConvergedf("residual %g exceeds %g after %d iterations", sol.Residual, o.MaxResidual, sol.Iterations)
		}
	}

	return sol, nil
}

// orderCorrection returns q = ln((r21^p - s) / (r32^p - s)).
func orderCorrection(p, r21, r32, s float64) (float64, error) {
	num := math.Pow(r21, p) - s
	den := math.Pow(r32, p) - s
	if den == 0 {
		return 0, domainf("correction term undefined: r32^p - s = 0 (p=%g)", p)
	}
	arg := num / den
	if !(arg > 0) || math.IsInf(arg, 0) {
		return 0, domainf("correction term undefined: ln(%g) (p=%g)", arg, p)
	}
	return math.Log(arg), nil
}
