// Package logger provides structured logging with quantity-specific support
package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Logger interface for abstracted logging
type Logger interface {
	Info(message string, fields ...Field)
	Error(message string, fields ...Field)
	Warn(message string, fields ...Field)
	Debug(message string, fields ...Field)
	Success(message string, fields ...Field)
	WithQuantity(quantity string) Logger
}

// Field represents a structured logging field
type Field struct {
	Key   string
	Value interface{}
}

// WithField creates a new field
func WithField(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

const prefix = "📐"

// StudyLogger implements Logger on top of logrus. A non-empty quantity is
// attached to every entry it writes.
type StudyLogger struct {
	logger   *logrus.Logger
	quantity string
}

// levelStyle is how a level is labelled on the terminal.
type levelStyle struct {
	label string
	color *color.Color
}

var levelStyles = map[logrus.Level]levelStyle{
	logrus.ErrorLevel: {"ERROR", color.New(color.FgRed, color.Bold)},
	logrus.WarnLevel:  {"WARN", color.New(color.FgYellow, color.Bold)},
	logrus.InfoLevel:  {"INFO", color.New(color.FgCyan)},
	logrus.DebugLevel: {"DEBUG", color.New(color.FgWhite, color.Faint)},
}

var (
	plainColor    = color.New(color.Reset)
	quantityColor = color.New(color.FgBlue)
	fieldsColor   = color.New(color.FgWhite, color.Faint)
)

// CustomFormatter renders entries as single lines:
//
//	📐 [15:04:05] INFO: [drag] message {key=value}
type CustomFormatter struct {
	TimestampFormat string
	DisableColors   bool
}

func (f *CustomFormatter) paint(c *color.Color, s string) string {
	if f.DisableColors {
		return s
	}
	return c.Sprint(s)
}

// Format implements logrus.Formatter
func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	style, ok := levelStyles[entry.Level]
	if !ok {
		style = levelStyle{strings.ToUpper(entry.Level.String()), plainColor}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s: ", prefix, entry.Time.Format(f.TimestampFormat), f.paint(style.color, style.label))
	if q, ok := entry.Data["quantity"]; ok {
		fmt.Fprintf(&b, "[%s] ", f.paint(quantityColor, fmt.Sprint(q)))
	}
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != "quantity" {
			keys = append(keys, k)
		}
	}
	if len(keys) > 0 {
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = fmt.Sprintf("%s=%v", k, entry.Data[k])
		}
		b.WriteString(f.paint(fieldsColor, " {"+strings.Join(pairs, ", ")+"}"))
	}
	b.WriteByte('\n')

	return []byte(b.String()), nil
}

// CreateLogger creates a logger writing to output and, when logFile is set,
// appending every entry to that file too. Colors are off so the file stays
// plain. The returned closer releases the file and is nil without one.
func CreateLogger(logFile, logLevel string, output io.Writer) (Logger, io.Closer, error) {
	if logFile == "" {
		return newLogger(logLevel, output, true), nil, nil
	}
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return newLogger(logLevel, io.MultiWriter(output, file), true), file, nil
}

// CreateLoggerWithOutput creates a logger with custom output (for testing)
func CreateLoggerWithOutput(logLevel string, output io.Writer) Logger {
	return newLogger(logLevel, output, true)
}

// Discard returns a logger that drops every message
func Discard() Logger {
	return newLogger("error", io.Discard, true)
}

func newLogger(logLevel string, output io.Writer, disableColors bool) *StudyLogger {
	log := logrus.New()

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&CustomFormatter{
		TimestampFormat: "15:04:05",
		DisableColors:   disableColors,
	})
	log.SetOutput(output)

	return &StudyLogger{logger: log}
}

// WithQuantity creates a new logger bound to a quantity of interest
func (l *StudyLogger) WithQuantity(quantity string) Logger {
	return &StudyLogger{
		logger:   l.logger,
		quantity: quantity,
	}
}

func (l *StudyLogger) entry(fields []Field) *logrus.Entry {
	data := make(logrus.Fields, len(fields)+1)
	if l.quantity != "" {
		data["quantity"] = l.quantity
	}
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return l.logger.WithFields(data)
}

func (l *StudyLogger) Info(message string, fields ...Field) { l.entry(fields).Info(message) }

func (l *StudyLogger) Error(message string, fields ...Field) { l.entry(fields).Error(message) }

func (l *StudyLogger) Warn(message string, fields ...Field) { l.entry(fields).Warn(message) }

func (l *StudyLogger) Debug(message string, fields ...Field) { l.entry(fields).Debug(message) }

// Success logs at info level with a check mark.
func (l *StudyLogger) Success(message string, fields ...Field) {
	l.entry(fields).Info("✅ " + message)
}

// ConsoleLogger provides plain console output for CLI messages
type ConsoleLogger struct {
	out io.Writer
	err io.Writer
}

// NewConsoleLogger creates a console logger for CLI output
func NewConsoleLogger(out, err io.Writer) *ConsoleLogger {
	return &ConsoleLogger{out: out, err: err}
}

// Info prints info message
func (c *ConsoleLogger) Info(message string) {
	fmt.Fprintf(c.out, "%s %s %s\n", prefix, color.CyanString("[gcat]"), message)
}

// Error prints error message
func (c *ConsoleLogger) Error(message string) {
	fmt.Fprintf(c.err, "%s %s %s\n", prefix, color.RedString("[gcat]"), message)
}

// Warn prints a warning on the error writer so rendered reports stay clean
func (c *ConsoleLogger) Warn(message string) {
	fmt.Fprintf(c.err, "%s %s %s\n", prefix, color.YellowString("[gcat]"), message)
}

// Success prints success message
func (c *ConsoleLogger) Success(message string) {
	fmt.Fprintf(c.out, "%s %s ✅ %s\n", prefix, color.GreenString("[gcat]"), message)
}
