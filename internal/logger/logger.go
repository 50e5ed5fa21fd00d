// Package logger provides per-subsystem slog loggers.
//
//	var log = logger.Logger("proxy")
//
//	log.Info("client connected", "addr", addr)
//
// Levels and format come from PROXY_LOG_LEVEL and PROXY_LOG_FORMAT, or from
// Configure once the configuration file has been read. Loggers created before
// Configure pick up the new levels.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	output   io.Writer = os.Stderr
	outputMu sync.RWMutex

	handlers sync.Map // map[string]*subsystemHandler
	loggers  sync.Map // map[string]*slog.Logger
)

type dynamicWriter struct{}

func (dynamicWriter) Write(p []byte) (int, error) {
	outputMu.RLock()
	w := output
	outputMu.RUnlock()
	return w.Write(p)
}

// Logger returns the logger of subsystem. Repeated calls return the same
// logger.
func Logger(subsystem string) *slog.Logger {
	if l, ok := loggers.Load(subsystem); ok {
		return l.(*slog.Logger)
	}
	h := newHandler(subsystem, ConfigFromEnv())
	actual, loaded := loggers.LoadOrStore(subsystem, slog.New(h))
	if !loaded {
		handlers.Store(subsystem, h)
	}
	return actual.(*slog.Logger)
}

// SetOutput redirects every logger to w.
func SetOutput(w io.Writer) {
	outputMu.Lock()
	output = w
	outputMu.Unlock()
}

// Configure replaces the active configuration and applies it to every
// logger created so far.
func Configure(cfg *Config) {
	configMu.Lock()
	config = cfg
	configMu.Unlock()

	handlers.Range(func(key, value any) bool {
		value.(*subsystemHandler).reset(cfg)
		return true
	})
}

type subsystemHandler struct {
	subsystem string
	mu        sync.RWMutex
	level     slog.Level
	inner     slog.Handler
}

func newHandler(subsystem string, cfg *Config) *subsystemHandler {
	h := &subsystemHandler{subsystem: subsystem}
	h.reset(cfg)
	return h
}

func (h *subsystemHandler) reset(cfg *Config) {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Key = "ts"
			}
			return a
		},
	}
	var inner slog.Handler
	if cfg.Format == FormatJSON {
		inner = slog.NewJSONHandler(dynamicWriter{}, opts)
	} else {
		inner = slog.NewTextHandler(dynamicWriter{}, opts)
	}
	inner = inner.WithAttrs([]slog.Attr{slog.String("subsystem", h.subsystem)})

	h.mu.Lock()
	h.level = cfg.LevelForSubsystem(h.subsystem)
	h.inner = inner
	h.mu.Unlock()
}

func (h *subsystemHandler) handler() slog.Handler {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.inner
}

func (h *subsystemHandler) Enabled(_ context.Context, level slog.Level) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return level >= h.level
}

func (h *subsystemHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.handler().Handle(ctx, r)
}

func (h *subsystemHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &derivedHandler{inner: h.handler().WithAttrs(attrs), root: h}
}

func (h *subsystemHandler) WithGroup(name string) slog.Handler {
	return &derivedHandler{inner: h.handler().WithGroup(name), root: h}
}

// derivedHandler follows the level of its subsystem. It keeps the format that
// was active when it was derived.
type derivedHandler struct {
	inner slog.Handler
	root  *subsystemHandler
}

func (h *derivedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.root.Enabled(ctx, level)
}

func (h *derivedHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.inner.Handle(ctx, r)
}

func (h *derivedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &derivedHandler{inner: h.inner.WithAttrs(attrs), root: h.root}
}

func (h *derivedHandler) WithGroup(name string) slog.Handler {
	return &derivedHandler{inner: h.inner.WithGroup(name), root: h.root}
}
