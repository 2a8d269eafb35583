package gridfont

import "context"
import "sync/atomic"
import "log/slog"

// nopHandler is a slog.Handler that silently discards all records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	nopLogger := slog.New(nopHandler{})
	loggerPtr.Store(nopLogger)
}

// SetLogger configures the logger used by gridfont. By default the
// package produces no log output. Pass nil to restore the default
// silent behavior.
//
// gridfont logs sparingly:
//  - [slog.LevelWarn]: font sources that couldn't be loaded.
//  - [slog.LevelDebug]: codepoints silently rendered as blank space.
//
// SetLogger is safe for concurrent use.
func SetLogger(logger *slog.Logger) {
	if logger == nil { logger = slog.New(nopHandler{}) }
	loggerPtr.Store(logger)
}

// Logger returns the logger currently used by gridfont.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
