package logger_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gcontext "github.com/gcat/gcat/pkg/context"
	"github.com/gcat/gcat/pkg/logger"
	"github.com/sirupsen/logrus"
)

func TestCreateLogger(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := logger.CreateLogger("", "info", &buf)
	if err != nil {
		t.Fatal(err)
	}
	if closer != nil {
		t.Error("expected no closer without a log file")
	}
	log.Info("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("expected output on writer, got %q", buf.String())
	}
}

func TestCreateLogger_File(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "gcat.log")

	log, closer, err := logger.CreateLogger(path, "info", &buf)
	if err != nil {
		t.Fatal(err)
	}
	log.Warn("residual high", logger.WithField("residual", 0.5))
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "WARN: residual high {residual=0.5}") {
		t.Errorf("expected entry in log file, got %q", data)
	}
	if strings.Contains(string(data), "\x1b[") {
		t.Errorf("log file must be plain, got %q", data)
	}
	if !strings.Contains(buf.String(), "residual high") {
		t.Errorf("expected entry on writer too, got %q", buf.String())
	}
}

func TestCreateLogger_UnwritableFile(t *testing.T) {
	_, _, err := logger.CreateLogger(filepath.Join(t.TempDir(), "missing", "gcat.log"), "info", io.Discard)
	if err == nil {
		t.Fatal("expected error for a log file in a missing directory")
	}
}

func TestFormatter_UnstyledLevelsUseTheirName(t *testing.T) {
	f := &logger.CustomFormatter{TimestampFormat: "15:04:05", DisableColors: true}

	for level, want := range map[logrus.Level]string{
		logrus.TraceLevel: "TRACE: deep",
		logrus.FatalLevel: "FATAL: deep",
		logrus.PanicLevel: "PANIC: deep",
	} {
		out, err := f.Format(&logrus.Entry{Level: level, Message: "deep", Data: logrus.Fields{}, Time: time.Now()})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(out), want) || strings.Contains(string(out), "SUCCESS") {
			t.Errorf("level %s: got %q, want %q", level, out, want)
		}
	}
}

func TestLogger_WithQuantity(t *testing.T) {
	var buf bytes.Buffer
	log := logger.CreateLoggerWithOutput("info", &buf)

	log.WithQuantity("drag").Info("solving apparent order")

	output := buf.String()
	if !strings.Contains(output, "[drag] solving apparent order") {
		t.Errorf("expected quantity prefix in log output, got %q", output)
	}
}

func TestLogger_Success(t *testing.T) {
	var buf bytes.Buffer
	log := logger.CreateLoggerWithOutput("info", &buf)

	log.Success("analysis completed")

	if !strings.Contains(buf.String(), "✅ analysis completed") {
		t.Error("expected success message in log output")
	}
}

func TestLogger_FieldsAreSorted(t *testing.T) {
	var buf bytes.Buffer
	log := logger.CreateLoggerWithOutput("info", &buf)

	log.Info("converged",
		logger.WithField("order", 2.0),
		logger.WithField("iterations", 7),
	)

	if !strings.Contains(buf.String(), "{iterations=7, order=2}") {
		t.Errorf("expected sorted fields, got %q", buf.String())
	}
}

func TestLogger_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.CreateLoggerWithOutput("error", &buf)

	log.Debug("should not appear")
	log.Info("should not appear")
	log.Warn("should not appear")
	log.Error("should appear")

	output := buf.String()
	if strings.Contains(output, "should not appear") {
		t.Error("lower level logs should not appear with error level")
	}
	if !strings.Contains(output, "should appear") {
		t.Error("error level log should appear")
	}
}

func TestLogger_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.CreateLoggerWithOutput("loud", &buf)

	log.Debug("hidden")
	log.Info("shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected info level, got %q", buf.String())
	}
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	base := logger.CreateLoggerWithOutput("info", &buf)

	ctx := gcontext.WithRunID(context.Background(), "run-42")
	ctx = gcontext.WithOperation(ctx, "analyze")

	logger.WithContext(ctx, base).Info("started")

	output := buf.String()
	if !strings.Contains(output, "run_id=run-42") || !strings.Contains(output, "operation=analyze") {
		t.Errorf("expected context fields, got %q", output)
	}
}

func TestWithContext_KeepsQuantity(t *testing.T) {
	var buf bytes.Buffer
	base := logger.CreateLoggerWithOutput("debug", &buf)

	ctx := gcontext.WithRunID(context.Background(), "run-7")
	logger.WithContext(ctx, base).WithQuantity("lift").Debug("iterating", logger.WithField("residual", 0.5))

	output := buf.String()
	for _, want := range []string{"[lift] iterating", "run_id=run-7", "residual=0.5"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in %q", want, output)
		}
	}
}

func TestConsoleLogger(t *testing.T) {
	var out, errOut bytes.Buffer
	console := logger.NewConsoleLogger(&out, &errOut)

	console.Info("info line")
	console.Success("done")
	console.Warn("careful")
	console.Error("boom")

	if !strings.Contains(out.String(), "info line") || !strings.Contains(out.String(), "done") {
		t.Errorf("unexpected stdout %q", out.String())
	}
	if !strings.Contains(errOut.String(), "boom") || !strings.Contains(errOut.String(), "careful") {
		t.Errorf("expected error and warning on stderr writer, got %q", errOut.String())
	}
	if strings.Contains(out.String(), "careful") {
		t.Errorf("warning leaked to stdout: %q", out.String())
	}
}
