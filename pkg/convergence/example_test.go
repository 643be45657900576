package convergence_test

import (
	"fmt"

	"github.com/gcat/gcat/pkg/convergence"
)

// ExampleApparentOrder runs the full three-grid procedure on a sequence
// f = 1 + 0.1·h² sampled on h = 1, 2, 4.
func ExampleApparentOrder() {
	h1, h2, h3 := 1.0, 2.0, 4.0
	f1, f2, f3 := 1.1, 1.4, 2.6

	p, err := convergence.ApparentOrder(h1, h2, h3, f1, f2, f3, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fExact, _ := convergence.RichardsonExtrapolation(h1, h2, f1, f2, p)
	gci21, _ := convergence.GCIFine(f1, f2, h2/h1, p, convergence.DefaultSafetyFactor)
	gci32, _ := convergence.GCIFine(f2, f3, h3/h2, p, convergence.DefaultSafetyFactor)
	ratio, _ := convergence.AsymptoticRatio(gci21, gci32, h2/h1, p)

	fmt.Printf("p = %.4f\n", p)
	fmt.Printf("f_exact = %.4f\n", fExact)
	fmt.Printf("GCI21 = %.4f\n", gci21)
	fmt.Printf("asymptotic ratio = %.4f\n", ratio)
	// Output:
	// p = 2.0000
	// f_exact = 1.0000
	// GCI21 = 0.1136
	// asymptotic ratio = 1.2727
}

// ExampleRepresentativeSize derives h for a 2D mesh of 10 000 elements on a
// unit square.
func ExampleRepresentativeSize() {
	h, _ := convergence.RepresentativeSize(10000, 1.0, convergence.TwoD)
	fmt.Printf("h = %.4f\n", h)
	// Output:
	// h = 0.0100
}
