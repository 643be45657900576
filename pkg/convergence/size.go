package convergence

import (
	"fmt"
	"math"
)

// Dimension is the number of spatial dimensions of a mesh.
type Dimension int

const (
	// TwoD is a planar (area) mesh.
	TwoD Dimension = 2
	// ThreeD is a volume mesh.
	ThreeD Dimension = 3
)

// String implements fmt.Stringer.
func (d Dimension) String() string {
	return fmt.Sprintf("%dD", int(d))
}

// RepresentativeSize returns the characteristic element size
// h = (S/N)^(1/d) of a mesh with n elements covering a domain of the given
// measure (area for TwoD, volume for ThreeD).
func RepresentativeSize(n int, measure float64, dim Dimension) (float64, error) {
	if n <= 0 {
		return 0, invalidf("element count must be positive, got %d", n)
	}
	if measure < 0 || !finite(measure) {
		return 0, invalidf("domain measure must be a non-negative number, got %g", measure)
	}
	if dim != TwoD && dim != ThreeD {
		return 0, invalidf("dimension must be 2 or 3, got %d", int(dim))
	}
	return math.Pow(measure/float64(n), 1/float64(dim)), nil
}

// RefinementRatio returns hCoarse/hFine.
func RefinementRatio(hFine, hCoarse float64) (float64, error) {
	if hFine == 0 {
		return 0, domainf("refinement ratio with zero fine grid size")
	}
	return checked("refinement ratio", hCoarse/hFine)
}
