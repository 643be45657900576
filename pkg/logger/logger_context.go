package logger

import (
	"context"

	gcontext "github.com/gcat/gcat/pkg/context"
)

// contextFields lists the tracing values carried by ctx as log fields.
func contextFields(ctx context.Context) []Field {
	if ctx == nil {
		return nil
	}

	var fields []Field
	if id := gcontext.GetRunID(ctx); id != "" {
		fields = append(fields, WithField("run_id", id))
	}
	if q := gcontext.GetQuantity(ctx); q != "" {
		fields = append(fields, WithField("quantity", q))
	}
	if op := gcontext.GetOperation(ctx); op != "" {
		fields = append(fields, WithField("operation", op))
	}
	if d := gcontext.GetDuration(ctx); d > 0 {
		fields = append(fields, WithField("duration_ms", d.Milliseconds()))
	}
	return fields
}

// WithContext returns a logger that prefixes every entry with the run,
// quantity and operation stored in ctx.
func WithContext(ctx context.Context, log Logger) Logger {
	if ctx == nil {
		return log
	}
	return &contextualLogger{ctx: ctx, logger: log}
}

type contextualLogger struct {
	ctx    context.Context
	logger Logger
}

// Explicit fields come last so they win over context values.
func (cl *contextualLogger) with(fields []Field) []Field {
	return append(contextFields(cl.ctx), fields...)
}

func (cl *contextualLogger) Info(message string, fields ...Field) {
	cl.logger.Info(message, cl.with(fields)...)
}

func (cl *contextualLogger) Error(message string, fields ...Field) {
	cl.logger.Error(message, cl.with(fields)...)
}

func (cl *contextualLogger) Warn(message string, fields ...Field) {
	cl.logger.Warn(message, cl.with(fields)...)
}

func (cl *contextualLogger) Debug(message string, fields ...Field) {
	cl.logger.Debug(message, cl.with(fields)...)
}

func (cl *contextualLogger) Success(message string, fields ...Field) {
	cl.logger.Success(message, cl.with(fields)...)
}

func (cl *contextualLogger) WithQuantity(quantity string) Logger {
	return &contextualLogger{ctx: cl.ctx, logger: cl.logger.WithQuantity(quantity)}
}
