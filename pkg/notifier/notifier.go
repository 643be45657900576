// Package notifier provides desktop notifications for analysis results
package notifier

import (
	"fmt"
	"time"

	"github.com/gcat/gcat/pkg/interfaces"
	"github.com/gcat/gcat/pkg/logger"
	"github.com/gcat/gcat/pkg/types"
	"github.com/gen2brain/beeep"
)

var _ interfaces.Notifier = (*AnalysisNotifier)(nil)

// AnalysisNotifier sends analysis notifications
type AnalysisNotifier struct {
	enabled bool
	sound   bool
	logger  logger.Logger
	notify  func(title, message, icon string) error
}

// Config represents notification configuration
type Config struct {
	Enabled bool
	// Sound plays a beep on failures
	Sound bool
}

// New creates a new analysis notifier
func New(config Config, log logger.Logger) *AnalysisNotifier {
	return &AnalysisNotifier{
		enabled: config.Enabled,
		sound:   config.Sound,
		logger:  log,
		notify:  beeep.Notify,
	}
}

// NotifyAnalysisSuccess notifies that a study was analysed
func (n *AnalysisNotifier) NotifyAnalysisSuccess(study string, status types.AnalysisStatus, duration time.Duration) {
	if !n.enabled {
		return
	}

	title := "✅ Convergence analysis"
	if status != types.AnalysisStatusSucceeded {
		title = "⚠️ Convergence analysis"
	}
	message := fmt.Sprintf("%s: %s in %s", study, status, formatDuration(duration))

	n.send(title, message, false)
}

// NotifyAnalysisFailure notifies that a study could not be analysed
func (n *AnalysisNotifier) NotifyAnalysisFailure(study string, err error) {
	if !n.enabled {
		return
	}

	title := "❌ Convergence analysis failed"
	message := fmt.Sprintf("%s: %v", study, err)

	n.send(title, message, n.sound)
}

func (n *AnalysisNotifier) send(title, message string, beep bool) {
	if err := n.notify(title, message, ""); err != nil {
		n.logger.Debug("Failed to send notification", logger.WithField("error", err))
		n.logger.Info(fmt.Sprintf("%s: %s", title, message))
	}

	if beep {
		if err := beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration); err != nil {
			n.logger.Debug("Failed to play sound", logger.WithField("error", err))
		}
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
}
