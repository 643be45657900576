// Package validation provides study validation functionality
package validation

import (
	"fmt"
	"math"

	"github.com/gcat/gcat/pkg/config"
	"github.com/gcat/gcat/pkg/types"
)

// MinRecommendedRatio is the smallest refinement ratio for which the
// discretization error is reliably separated from other error sources.
const MinRecommendedRatio = 1.3

// StudyValidator validates refinement studies
type StudyValidator struct {
	manager *config.Manager
}

// NewStudyValidator creates a new study validator
func NewStudyValidator() *StudyValidator {
	return &StudyValidator{
		manager: config.NewManager(),
	}
}

// ValidationError represents a validation error
type ValidationError struct {
	Subject string
	Field   string
	Message string
	Level   ValidationLevel
}

// ValidationLevel represents error severity
type ValidationLevel string

const (
	ValidationLevelError   ValidationLevel = "error"
	ValidationLevelWarning ValidationLevel = "warning"
	ValidationLevelInfo    ValidationLevel = "info"
)

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s.%s: %s", e.Level, e.Subject, e.Field, e.Message)
}

// ValidationResult contains validation results
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// AddError adds an error to the validation result
func (r *ValidationResult) AddError(subject, field, message string, level ValidationLevel) {
	r.Errors = append(r.Errors, ValidationError{
		Subject: subject,
		Field:   field,
		Message: message,
		Level:   level,
	})
	if level == ValidationLevelError {
		r.Valid = false
	}
}

// Count returns the number of issues with the given level
func (r *ValidationResult) Count(level ValidationLevel) int {
	n := 0
	for _, e := range r.Errors {
		if e.Level == level {
			n++
		}
	}
	return n
}

// Validate validates a study
func (v *StudyValidator) Validate(study *types.Study) *ValidationResult {
	result := &ValidationResult{Valid: true}

	// Structure first; nothing else is meaningful without it
	if err := v.manager.ValidateStudy(study); err != nil {
		result.AddError("study", "structure", err.Error(), ValidationLevelError)
		return result
	}

	v.validateSolver(study.Solver, result)
	v.validateGrids(study, result)
	v.validateQuantities(study, result)

	return result
}

func (v *StudyValidator) validateSolver(solver *types.SolverConfig, result *ValidationResult) {
	if err := solver.Options().Validate(); err != nil {
		result.AddError("solver", "options", err.Error(), ValidationLevelError)
	}

	safety := solver.GetSafetyFactor()
	switch {
	case !(safety > 0):
		result.AddError("solver", "safetyFactor", "safety factor must be positive", ValidationLevelError)
	case safety < 1.25:
		result.AddError("solver", "safetyFactor",
			fmt.Sprintf("safety factor %g is below the recommended 1.25 for three-grid studies", safety),
			ValidationLevelWarning)
	}
}

func (v *StudyValidator) validateGrids(study *types.Study, result *ValidationResult) {
	summary, err := study.ResolveGrids()
	if err != nil {
		result.AddError("grids", "size", err.Error(), ValidationLevelError)
		return
	}

	h := summary.Sizes()
	for i := 1; i < len(h); i++ {
		if h[i] <= h[i-1] {
			result.AddError(string(types.GridLevels[i]), "size",
				fmt.Sprintf("grid size %g must exceed the %s grid size %g", h[i], types.GridLevels[i-1], h[i-1]),
				ValidationLevelError)
		}
	}
	if !result.Valid {
		return
	}

	ratios := map[string]float64{"r21": summary.RefinementRatio21, "r32": summary.RefinementRatio32}
	for _, name := range []string{"r21", "r32"} {
		if r := ratios[name]; r < MinRecommendedRatio {
			result.AddError("grids", name,
				fmt.Sprintf("refinement ratio %.4f is below the recommended %.1f", r, MinRecommendedRatio),
				ValidationLevelWarning)
		}
	}
	if math.Abs(summary.RefinementRatio21-summary.RefinementRatio32) > 1e-9 {
		result.AddError("grids", "ratios", "non-uniform refinement, the apparent order is solved iteratively", ValidationLevelInfo)
	}
}

func (v *StudyValidator) validateQuantities(study *types.Study, result *ValidationResult) {
	if len(study.Quantities) == 0 {
		result.AddError("study", "quantities", "no quantities defined, only grid sizes can be checked", ValidationLevelWarning)
		return
	}

	for _, q := range study.Quantities {
		f1, f2, f3 := q.Values[0], q.Values[1], q.Values[2]

		if f1 == 0 || f2 == 0 {
			result.AddError(q.Name, "values", "fine and medium values must be non-zero for relative errors", ValidationLevelError)
		}
		if f1 == f2 {
			result.AddError(q.Name, "values", "fine and medium values are identical", ValidationLevelError)
			continue
		}
		if f2 == f3 {
			result.AddError(q.Name, "values", "medium and coarse values are identical", ValidationLevelError)
			continue
		}
		if (f3-f2)/(f2-f1) < 0 {
			result.AddError(q.Name, "values", "oscillatory convergence", ValidationLevelInfo)
		}
	}
}
