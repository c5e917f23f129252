package d2d

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/d2d/internal/com"
)

// nopHandler discards every record and reports every level as disabled.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for d2d and the engines it loads.
// By default, d2d produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior). Factories
// created before the call switch to the new logger too.
//
// Log levels used by d2d:
//   - [slog.LevelDebug]: object lifecycle (handles cloned and released)
//   - [slog.LevelInfo]: factory and device creation
//   - [slog.LevelWarn]: failed engine calls, handles leaked without Release
//
// Engine diagnostics are further filtered by the factory's DebugLevel.
//
// Example:
//
//	// Enable info-level logging to stderr:
//	d2d.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	d2d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	// Leak warnings are emitted by the ownership layer.
	com.SetLogger(l)
}

// Logger returns the current logger used by d2d.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// engineHandler forwards engine diagnostics to whatever logger is current
// when the record is emitted.
type engineHandler struct{}

func (engineHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return Logger().Handler().Enabled(ctx, level)
}

func (engineHandler) Handle(ctx context.Context, r slog.Record) error {
	return Logger().Handler().Handle(ctx, r)
}

func (engineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return Logger().Handler().WithAttrs(attrs)
}

func (engineHandler) WithGroup(name string) slog.Handler {
	return Logger().Handler().WithGroup(name)
}

// engineLogger is handed to every factory.
var engineLogger = slog.New(engineHandler{})
