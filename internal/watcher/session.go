package watcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/gcat/gcat/pkg/config"
	"github.com/gcat/gcat/pkg/interfaces"
	"github.com/gcat/gcat/pkg/logger"
	"github.com/gcat/gcat/pkg/types"
)

// Renderer presents a finished report
type Renderer func(*types.Report) error

// Session loads, analyses and renders one study file
type Session struct {
	path      string
	manager   *config.Manager
	analyzer  interfaces.StudyAnalyzer
	render    Renderer
	logger    logger.Logger
	overrides func(*types.Study)
}

// NewSession creates a session for the study at path
func NewSession(path string, analyzer interfaces.StudyAnalyzer, render Renderer, log logger.Logger) *Session {
	return &Session{
		path:     path,
		manager:  config.NewManager(),
		analyzer: analyzer,
		render:   render,
		logger:   log,
	}
}

// WithOverrides registers a function applied to every freshly loaded
// study before analysis, e.g. solver settings given on the command line.
func (s *Session) WithOverrides(fn func(*types.Study)) *Session {
	s.overrides = fn
	return s
}

// RunOnce performs a single load, analyze and render cycle
func (s *Session) RunOnce(ctx context.Context) error {
	study, err := s.manager.LoadStudy(s.path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", s.path, err)
	}
	if s.overrides != nil {
		s.overrides(study)
	}

	report, err := s.analyzer.Analyze(ctx, study)
	if err != nil {
		return err
	}
	return s.render(report)
}

// Watch runs the analysis once and then again on every change of the
// study file until ctx is done. Failed cycles are logged and watching
// continues.
func (s *Session) Watch(ctx context.Context, w *StudyWatcher) error {
	s.runLogged(ctx)
	err := w.Run(ctx, func() {
		s.logger.Info("Study changed, re-running analysis")
		s.runLogged(ctx)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *Session) runLogged(ctx context.Context) {
	if err := s.RunOnce(ctx); err != nil {
		s.logger.Error("Analysis cycle failed", logger.WithField("error", err))
	}
}
