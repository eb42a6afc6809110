package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/svglayer/pkg/observability"
)

// logHooks reports library events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

func registerLogHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetRenderHooks(h)
	observability.SetUploadHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

func (h logHooks) OnRenderStart(_ context.Context, format string, drawables int) {
	h.logger.Debug("render start", "format", format, "drawables", drawables)
}

func (h logHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("render done", "format", format, "bytes", size, "took", d.Round(time.Microsecond))
}

func (h logHooks) OnUpload(_ context.Context, zIndex, size int, d time.Duration, err error) {
	h.logger.Debug("upload", "z-index", zIndex, "bytes", size, "took", d.Round(time.Millisecond), "err", err)
}

func (h logHooks) OnUploadSkipped(_ context.Context, zIndex int) {
	h.logger.Debug("upload skipped", "z-index", zIndex)
}

func (h logHooks) OnClear(_ context.Context, zIndex int, err error) {
	h.logger.Debug("layer cleared", "z-index", zIndex, "err", err)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "path", path, "status", status, "took", d.Round(time.Millisecond))
}

func (h logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "err", err)
}
