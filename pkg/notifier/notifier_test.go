package notifier

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gcat/gcat/pkg/logger"
	"github.com/gcat/gcat/pkg/types"
)

type sent struct {
	title, message string
}

func newTestNotifier(enabled bool) (*AnalysisNotifier, *[]sent) {
	var mu sync.Mutex
	var calls []sent
	n := New(Config{Enabled: enabled}, logger.Discard())
	n.notify = func(title, message, _ string) error {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, sent{title, message})
		return nil
	}
	return n, &calls
}

func TestNotifier_Success(t *testing.T) {
	n, calls := newTestNotifier(true)

	n.NotifyAnalysisSuccess("cavity", types.AnalysisStatusSucceeded, 1500*time.Millisecond)

	if len(*calls) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(*calls))
	}
	got := (*calls)[0]
	if !strings.HasPrefix(got.title, "✅") {
		t.Errorf("Unexpected title %q", got.title)
	}
	if got.message != "cavity: succeeded in 1.5s" {
		t.Errorf("Unexpected message %q", got.message)
	}
}

func TestNotifier_PartialUsesWarningTitle(t *testing.T) {
	n, calls := newTestNotifier(true)

	n.NotifyAnalysisSuccess("cavity", types.AnalysisStatusPartial, 20*time.Millisecond)

	if len(*calls) != 1 || !strings.HasPrefix((*calls)[0].title, "⚠️") {
		t.Fatalf("Expected warning notification, got %+v", *calls)
	}
	if !strings.HasSuffix((*calls)[0].message, "in 20ms") {
		t.Errorf("Unexpected message %q", (*calls)[0].message)
	}
}

func TestNotifier_Failure(t *testing.T) {
	n, calls := newTestNotifier(true)

	n.NotifyAnalysisFailure("cavity", errors.New("apparent order did not converge"))

	if len(*calls) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(*calls))
	}
	if (*calls)[0].message != "cavity: apparent order did not converge" {
		t.Errorf("Unexpected message %q", (*calls)[0].message)
	}
}

func TestNotifier_Disabled(t *testing.T) {
	n, calls := newTestNotifier(false)

	n.NotifyAnalysisSuccess("Test", types.AnalysisStatusSucceeded, time.Second)
	n.NotifyAnalysisFailure("Test", errors.New("test error"))

	if len(*calls) != 0 {
		t.Errorf("Expected no notifications when disabled, got %d", len(*calls))
	}
}

func TestNotifier_FallsBackToLog(t *testing.T) {
	var buf bytes.Buffer
	n := New(Config{Enabled: true}, logger.CreateLoggerWithOutput("info", &buf))
	n.notify = func(string, string, string) error { return errors.New("no notification daemon") }

	n.NotifyAnalysisFailure("cavity", errors.New("boom"))

	if !strings.Contains(buf.String(), "cavity: boom") {
		t.Errorf("Expected fallback log line, got %q", buf.String())
	}
}

func TestNotifier_ConcurrentNotifications(t *testing.T) {
	n, calls := newTestNotifier(true)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n.NotifyAnalysisSuccess("study", types.AnalysisStatusSucceeded, time.Second)
		}()
	}
	wg.Wait()

	if len(*calls) != 5 {
		t.Errorf("Expected 5 notifications, got %d", len(*calls))
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{2500 * time.Millisecond, "2.5s"},
		{90 * time.Second, "1m30s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func BenchmarkNotifier_Disabled(b *testing.B) {
	n := New(Config{Enabled: false}, logger.Discard())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n.NotifyAnalysisSuccess("Benchmark", types.AnalysisStatusSucceeded, time.Second)
	}
}
