package types_test

import (
	"errors"
	"math"
	"testing"

	"github.com/gcat/gcat/pkg/convergence"
	"github.com/gcat/gcat/pkg/types"
)

func TestStudy_ResolveGrids_FromElements(t *testing.T) {
	study := &types.Study{
		Domain: types.Domain{Area: 1.0},
		Grids:  []types.Grid{{Elements: 400}, {Elements: 100}, {Elements: 25}},
	}

	summary, err := study.ResolveGrids()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{0.05, 0.1, 0.2}
	for i, h := range summary.Sizes() {
		if math.Abs(h-want[i]) > 1e-12 {
			t.Errorf("h%d: expected %g, got %g", i+1, want[i], h)
		}
	}
	if math.Abs(summary.RefinementRatio21-2) > 1e-12 || math.Abs(summary.RefinementRatio32-2) > 1e-12 {
		t.Errorf("expected ratios 2, got %g and %g", summary.RefinementRatio21, summary.RefinementRatio32)
	}
	if summary.Dimension != 2 {
		t.Errorf("expected 2D, got %d", summary.Dimension)
	}
	if summary.Levels[0].Level != types.GridLevelFine || summary.Levels[2].Level != types.GridLevelCoarse {
		t.Errorf("unexpected levels %+v", summary.Levels)
	}
}

func TestStudy_ResolveGrids_MixedExplicitSize(t *testing.T) {
	coarse := 0.3
	study := &types.Study{
		Domain: types.Domain{Volume: 1.0},
		Grids:  []types.Grid{{Elements: 8000}, {Elements: 1000}, {Size: &coarse}},
	}

	summary, err := study.ResolveGrids()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(summary.RefinementRatio21-2) > 1e-12 {
		t.Errorf("expected r21 = 2, got %g", summary.RefinementRatio21)
	}
	if math.Abs(summary.RefinementRatio32-3) > 1e-12 {
		t.Errorf("expected r32 = 3, got %g", summary.RefinementRatio32)
	}
}

func TestStudy_ResolveGrids_Errors(t *testing.T) {
	study := &types.Study{Domain: types.Domain{Area: 1}, Grids: []types.Grid{{Elements: 10}}}
	if _, err := study.ResolveGrids(); err == nil {
		t.Error("expected error for a single grid")
	}

	study.Grids = []types.Grid{{Elements: 10}, {Elements: 0}, {Elements: 5}}
	_, err := study.ResolveGrids()
	if !errors.Is(err, convergence.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}
