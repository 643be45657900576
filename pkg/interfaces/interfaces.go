// Package interfaces provides abstractions for dependency injection and testability
package interfaces

import (
	"context"
	"time"

	"github.com/gcat/gcat/pkg/types"
)

//go:generate mockgen -destination=../mocks/mocks.go -package=mocks github.com/gcat/gcat/pkg/interfaces Notifier,StudyAnalyzer

// Notifier reports the outcome of an analysis to the user
type Notifier interface {
	NotifyAnalysisSuccess(study string, status types.AnalysisStatus, duration time.Duration)
	NotifyAnalysisFailure(study string, err error)
}

// StudyAnalyzer runs the convergence pipeline on a study
type StudyAnalyzer interface {
	Analyze(ctx context.Context, study *types.Study) (*types.Report, error)
}
