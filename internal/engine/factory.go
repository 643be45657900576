package engine

import (
	"github.com/gcat/gcat/pkg/interfaces"
	"github.com/gcat/gcat/pkg/logger"
	"github.com/gcat/gcat/pkg/notifier"
)

// Settings are the tool-level knobs the CLI resolves from flags,
// environment and config file.
type Settings struct {
	Parallelism         int
	FailFast            bool
	AsymptoticTolerance float64
	// Notify enables desktop notifications, with a beep on failures
	Notify              bool
}

// DependencyFactory creates the default collaborators of an Analyzer
type DependencyFactory struct {
	logger   logger.Logger
	settings Settings
}

// NewDependencyFactory creates a new dependency factory
func NewDependencyFactory(log logger.Logger, settings Settings) *DependencyFactory {
	return &DependencyFactory{logger: log, settings: settings}
}

// CreateNotifier returns a desktop notifier when notifications are
// enabled, nil otherwise.
func (f *DependencyFactory) CreateNotifier() interfaces.Notifier {
	if !f.settings.Notify {
		return nil
	}
	return notifier.New(notifier.Config{Enabled: true, Sound: true}, f.logger)
}

// CreateAnalyzer wires an Analyzer from the factory settings. A non-nil
// override replaces the default notifier.
func (f *DependencyFactory) CreateAnalyzer(override interfaces.Notifier) *Analyzer {
	n := override
	if n == nil {
		n = f.CreateNotifier()
	}
	return NewAnalyzer(Options{
		Parallelism:         f.settings.Parallelism,
		FailFast:            f.settings.FailFast,
		AsymptoticTolerance: f.settings.AsymptoticTolerance,
	}, f.logger, n)
}
