package types

import (
	"fmt"

	"github.com/gcat/gcat/pkg/convergence"
)

// ResolveGrids computes the representative size of every grid, from the
// explicit size when present or from the element count and the domain
// measure otherwise, and the refinement ratios r21 = h2/h1, r32 = h3/h2.
func (s *Study) ResolveGrids() (GridSummary, error) {
	if len(s.Grids) != len(GridLevels) {
		return GridSummary{}, fmt.Errorf("expected %d grids, got %d", len(GridLevels), len(s.Grids))
	}

	dim := s.Domain.Dimension()
	summary := GridSummary{
		Dimension: int(dim),
		Levels:    make([]GridResult, len(s.Grids)),
	}

	for i, g := range s.Grids {
		res := GridResult{Level: GridLevels[i], Name: g.Name, Elements: g.Elements}
		if g.HasSize() {
			res.Size = *g.Size
		} else {
			h, err := convergence.RepresentativeSize(g.Elements, s.Domain.Measure(), dim)
			if err != nil {
				return GridSummary{}, fmt.Errorf("%s grid: %w", GridLevels[i], err)
			}
			res.Size = h
		}
		summary.Levels[i] = res
	}

	var err error
	h := summary.Sizes()
	if summary.RefinementRatio21, err = convergence.RefinementRatio(h[0], h[1]); err != nil {
		return GridSummary{}, err
	}
	if summary.RefinementRatio32, err = convergence.RefinementRatio(h[1], h[2]); err != nil {
		return GridSummary{}, err
	}
	return summary, nil
}

// Sizes returns the representative sizes, finest first
func (g GridSummary) Sizes() []float64 {
	sizes := make([]float64, len(g.Levels))
	for i, l := range g.Levels {
		sizes[i] = l.Size
	}
	return sizes
}
