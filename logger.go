package spine

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while a renderer on another goroutine logs.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for spine and its sub-packages.
// By default, spine produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by spine:
//   - [slog.LevelDebug]: per-frame diagnostics (attachment changes, clip
//     sessions, scratch growth, slots skipped for a missing texture)
//   - [slog.LevelInfo]: lifecycle events (skeleton data resolved)
//   - [slog.LevelWarn]: recoverable faults (load failure, truncated
//     clip output)
//
// Example:
//
//	spine.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by spine.
// Sub-packages (preview) call this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
