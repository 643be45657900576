// Package convergence implements the grid convergence diagnostics used to
// assess discretization uncertainty in mesh refinement studies.
//
// What is it?
//
//	Given a scalar output f computed on three grids of representative
//	sizes h1 < h2 < h3 (fine, medium, coarse), the package estimates:
//	  • the apparent order of convergence p (relaxed fixed-point solver)
//	  • the Richardson-extrapolated zero-spacing value
//	  • the fine- and coarse-grid Grid Convergence Index (GCI)
//	  • the asymptotic ratio that tells whether the grids lie in the
//	    asymptotic range of convergence
//
// The nomenclature follows Celik et al., "Procedure for Estimation and
// Reporting of Uncertainty Due to Discretization in CFD Applications",
// J. Fluids Eng. 130(7), 2008, and Roache, Annu. Rev. Fluid Mech. 29, 1997.
//
// Usage:
//
//	import "github.com/gcat/gcat/pkg/convergence"
//
//	p, err := convergence.ApparentOrder(h1, h2, h3, f1, f2, f3, nil)
//	if err != nil {
//	  // ErrInvalidParameter, ErrArithmeticDomain or ErrNotConverged
//	}
//	fExact, _ := convergence.RichardsonExtrapolation(h1, h2, f1, f2, p)
//	gci21, _ := convergence.GCIFine(f1, f2, h2/h1, p, convergence.DefaultSafetyFactor)
//
// Every function is pure and safe for concurrent use. Invalid results are
// reported through errors and never returned as NaN or ±Inf.
package convergence
