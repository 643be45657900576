package convergence

import (
	"fmt"
	"math"
)

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

func domainf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrArithmeticDomain, fmt.Sprintf(format, args...))
}

func notConvergedf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotConverged, fmt.Sprintf(format, args...))
}

// finite reports whether x is neither NaN nor ±Inf.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// checked rejects NaN and ±Inf results of the named computation.
func checked(what string, v float64) (float64, error) {
	if !finite(v) {
		return 0, domainf("%s is not finite (%g)", what, v)
	}
	return v, nil
}
