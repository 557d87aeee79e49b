// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gemstone

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

var (
	hooksMu sync.RWMutex
	hooks   []func(*slog.Logger)
)

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for gemstone and all its sub-packages.
// By default, gemstone produces no log output.
//
// Pass nil to restore the default silent behavior.
//
// Log levels used by gemstone:
//   - [slog.LevelDebug]: per-frame diagnostics (smoothed grades, texel size, pipeline state)
//   - [slog.LevelInfo]: lifecycle events (asset resolved, GPU adapter selected)
//   - [slog.LevelWarn]: non-fatal fallbacks (asset missing, GPU unavailable)
//
// Example:
//
//	gemstone.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	hooksMu.RLock()
	defer hooksMu.RUnlock()
	for _, fn := range hooks {
		fn(l)
	}
}

// Logger returns the current logger used by gemstone.
// Sub-packages call this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// OnLoggerChange registers fn to receive the logger now and on every later
// SetLogger call. Packages that keep their own logger, such as internal/gpu,
// register here.
func OnLoggerChange(fn func(*slog.Logger)) {
	if fn == nil {
		return
	}
	hooksMu.Lock()
	hooks = append(hooks, fn)
	hooksMu.Unlock()
	fn(Logger())
}
