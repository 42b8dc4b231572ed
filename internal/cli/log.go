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

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Built 10 slides (412ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks reports pipeline and raster cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnComposeStart(_ context.Context, theme string) {
	h.logger.Debug("compose start", "theme", theme)
}

func (h *logHooks) OnComposeComplete(_ context.Context, theme string, slides int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("compose failed", "theme", theme, "err", err)
		return
	}
	h.logger.Debug("compose done", "theme", theme, "slides", slides, "duration", d.Round(time.Microsecond))
}

func (h *logHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debug("render start", "format", format)
}

func (h *logHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("render done", "format", format, "bytes", size, "duration", d.Round(time.Microsecond))
}

func (h *logHooks) OnArtifactWritten(_ context.Context, format, path string) {
	h.logger.Debug("wrote artifact", "format", format, "path", path)
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
