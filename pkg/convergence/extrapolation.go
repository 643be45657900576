package convergence

import "math"

// RichardsonExtrapolation estimates the continuum (zero grid spacing) value
// from the solutions f1 and f2 on grids h1 < h2 with apparent order p:
//
//	f_exact = (r^p·f1 - f2) / (r^p - 1),   r = h2/h1
//
// Equivalently f_exact = f1 + (f1 - f2)/(r^p - 1). It returns
// ErrArithmeticDomain when h1 = 0 or r^p = 1 (r = 1 or p = 0).
func RichardsonExtrapolation(h1, h2, f1, f2, p float64) (float64, error) {
	r, err := RefinementRatio(h1, h2)
	if err != nil {
		return 0, err
	}
	rp, err := ratioPowerMinusOne(r, p)
	if err != nil {
		return 0, err
	}
	return checked("richardson extrapolation", ((rp+1)*f1-f2)/rp)
}

// RelativeError returns |(f1 - f2) / f1|, with f1 the reference value.
// It returns ErrArithmeticDomain when f1 = 0.
func RelativeError(f1, f2 float64) (float64, error) {
	if f1 == 0 {
		return 0, domainf("relative error with zero reference value")
	}
	return checked("relative error", math.Abs((f1-f2)/f1))
}

// ExtrapolatedRelativeError returns |(fExact - f1) / fExact|, the error of
// the fine-grid solution relative to its Richardson extrapolation.
func ExtrapolatedRelativeError(f1, fExact float64) (float64, error) {
	return RelativeError(fExact, f1)
}

// GCIFine returns the fine-grid convergence index
//
//	GCI_fine = Fs·|(f1 - f2)/f1| / (r21^p - 1)
//
// with Fs the safety factor (DefaultSafetyFactor for three-grid studies).
func GCIFine(f1, f2, r21, p, safety float64) (float64, error) {
	e, err := RelativeError(f1, f2)
	if err != nil {
		return 0, err
	}
	rp, err := ratioPowerMinusOne(r21, p)
	if err != nil {
		return 0, err
	}
	return checked("fine grid convergence index", safety*e/rp)
}

// GCICoarse returns the coarse-grid convergence index
//
//	GCI_coarse = Fs·|(f1 - f2)/f1|·r21^p / (r21^p - 1)
//
// which equals GCIFine·r21^p.
func GCICoarse(f1, f2, r21, p, safety float64) (float64, error) {
	e, err := RelativeError(f1, f2)
	if err != nil {
		return 0, err
	}
	rp, err := ratioPowerMinusOne(r21, p)
	if err != nil {
		return 0, err
	}
	return checked("coarse grid convergence index", safety*e*(rp+1)/rp)
}

// AsymptoticRatio returns r21^p · GCI21_fine / GCI32_fine. Values close to
// one indicate the grids lie in the asymptotic range of convergence.
func AsymptoticRatio(gci21Fine, gci32Fine, r21, p float64) (float64, error) {
	if gci32Fine == 0 {
		return 0, domainf("asymptotic ratio with zero GCI32")
	}
	return checked("asymptotic ratio", math.Pow(r21, p)*(gci21Fine/gci32Fine))
}

// ratioPowerMinusOne returns r^p - 1, rejecting zero and non-finite values.
func ratioPowerMinusOne(r, p float64) (float64, error) {
	d := math.Pow(r, p) - 1
	if d == 0 || !finite(d) {
		return 0, domainf("r^p - 1 = %g for r=%g, p=%g", d, r, p)
	}
	return d, nil
}
