package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Exported 3 parameters (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks reports export and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnExportStart(_ context.Context, nodes, parameters int) {
	h.logger.Debug("export started", "nodes", nodes, "parameters", parameters)
}

func (h *logHooks) OnParameterExported(_ context.Context, parameter, done, total int) {
	h.logger.Debug("parameter exported", "parameter", parameter, "progress", done, "of", total)
}

func (h *logHooks) OnExportComplete(_ context.Context, parameters int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("export failed", "parameters", parameters, "error", err)
		return
	}
	h.logger.Debug("export complete", "parameters", parameters, "duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnRenderStart(_ context.Context, parameter int, format string) {
	h.logger.Debug("render started", "parameter", parameter, "format", format)
}

func (h *logHooks) OnRenderComplete(_ context.Context, parameter int, format string, d time.Duration, err error) {
	h.logger.Debug("render complete", "parameter", parameter, "format", format, "duration", d.Round(time.Millisecond), "error", err)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
