package convergence

import "errors"

// Sentinel errors returned (possibly wrapped) by the package. Use errors.Is
// to classify them.
var (
	// ErrInvalidParameter indicates a configuration value outside its
	// valid domain, e.g. a relaxation factor outside [0, 1]. It is
	// reported before any computation takes place.
	ErrInvalidParameter = errors.New("convergence: invalid parameter")

	// ErrArithmeticDomain indicates a division by zero, or a logarithm or
	// power of a degenerate value, caused by input data that violates the
	// implicit preconditions (distinct ordered grids, non-zero reference).
	ErrArithmeticDomain = errors.New("convergence: arithmetic domain error")

	// ErrNotConverged indicates the apparent order solver exhausted its
	// iteration or residual budget before meeting the tolerance.
	ErrNotConverged = errors.New("convergence: iterative process did not converge")
)
