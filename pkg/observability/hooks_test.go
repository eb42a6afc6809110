package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, "svg", 3)
	r.OnRenderComplete(ctx, "svg", 1024, time.Millisecond, nil)

	u := NoopUploadHooks{}
	u.OnUpload(ctx, 1, 1024, time.Second, nil)
	u.OnUploadSkipped(ctx, 1)
	u.OnClear(ctx, -1, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "layer")
	c.OnCacheMiss(ctx, "layer")
	c.OnCacheSet(ctx, "layer", 64)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "api.eyeson.team", "/rooms/x/layers")
	h.OnResponse(ctx, "POST", "api.eyeson.team", "/rooms/x/layers", 201, time.Second)
	h.OnError(ctx, "POST", "api.eyeson.team", "/rooms/x/layers", nil)
}

type testRenderHooks struct {
	NoopRenderHooks
	starts int
}

func (h *testRenderHooks) OnRenderStart(context.Context, string, int) { h.starts++ }

type testUploadHooks struct {
	NoopUploadHooks
	skipped int
}

func (h *testUploadHooks) OnUploadSkipped(context.Context, int) { h.skipped++ }

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Upload().(NoopUploadHooks); !ok {
		t.Error("Upload() should return NoopUploadHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	render := &testRenderHooks{}
	upload := &testUploadHooks{}
	SetRenderHooks(render)
	SetUploadHooks(upload)

	Render().OnRenderStart(context.Background(), "svg", 1)
	Upload().OnUploadSkipped(context.Background(), 1)
	if render.starts != 1 || upload.skipped != 1 {
		t.Errorf("custom hooks not called: starts=%d skipped=%d", render.starts, upload.skipped)
	}

	SetRenderHooks(nil)
	if Render() != RenderHooks(render) {
		t.Error("SetRenderHooks(nil) should keep the current hooks")
	}

	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
}
