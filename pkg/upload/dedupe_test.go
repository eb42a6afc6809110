package upload

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/matzehuels/svglayer/pkg/cache"
	"github.com/matzehuels/svglayer/pkg/scene"
)

func countingServer(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var posts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			posts.Add(1)
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)
	return server, &posts
}

func TestDeduperSkipsUnchanged(t *testing.T) {
	server, posts := countingServer(t)
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	d := NewDeduper(newTestClient(server.URL), fc)
	ctx := context.Background()

	for i, want := range []bool{true, false} {
		sent, err := d.Send(ctx, "key", []byte(testSVG), 1)
		if err != nil {
			t.Fatal(err)
		}
		if sent != want {
			t.Errorf("send %d: sent = %v, want %v", i, sent, want)
		}
	}

	if sent, _ := d.Send(ctx, "key", []byte(testSVG+" "), 1); !sent {
		t.Error("changed content was not sent")
	}
	if sent, _ := d.Send(ctx, "key", []byte(testSVG), 2); !sent {
		t.Error("other z-index was not sent")
	}
	if posts.Load() != 3 {
		t.Errorf("posts = %d, want 3", posts.Load())
	}
}

const bannerScene = `
[[gradients]]
name  = "banner"
stops = ["0% #1e3c72", "100% #2a5298"]

[[filters]]
name          = "shadow"
type          = "drop-shadow"
std_deviation = 3

[[items]]
type       = "text-box"
text       = "Jane Doe"
font_size  = 24
color      = "banner"
box_filter = "shadow"
`

func TestDeduperSkipsRebuiltSceneWithDefinitions(t *testing.T) {
	server, posts := countingServer(t)
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	d := NewDeduper(newTestClient(server.URL), fc)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		sc, err := scene.Decode([]byte(bannerScene), scene.FormatTOML)
		if err != nil {
			t.Fatal(err)
		}
		layer, err := sc.Build()
		if err != nil {
			t.Fatal(err)
		}
		if len(layer.Definitions()) != 2 {
			t.Fatalf("definitions = %d, want 2", len(layer.Definitions()))
		}
		if _, err := d.Send(ctx, "key", []byte(layer.SVG()), 1); err != nil {
			t.Fatalf("upload %d: %v", i, err)
		}
	}
	if posts.Load() != 1 {
		t.Errorf("unchanged scene uploaded %d times, want 1", posts.Load())
	}
}

func TestDeduperForgetAndClear(t *testing.T) {
	server, posts := countingServer(t)
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	d := NewDeduper(newTestClient(server.URL), fc)
	ctx := context.Background()

	_, _ = d.Send(ctx, "key", []byte(testSVG), 1)
	if err := d.Forget(ctx, "key", 1); err != nil {
		t.Fatal(err)
	}
	if sent, _ := d.Send(ctx, "key", []byte(testSVG), 1); !sent {
		t.Error("Send after Forget was skipped")
	}
	if err := d.Clear(ctx, "key", 1); err != nil {
		t.Fatal(err)
	}
	if sent, _ := d.Send(ctx, "key", []byte(testSVG), 1); !sent {
		t.Error("Send after Clear was skipped")
	}
	if posts.Load() != 3 {
		t.Errorf("posts = %d, want 3", posts.Load())
	}
}

func TestDeduperNilCacheAlwaysSends(t *testing.T) {
	server, posts := countingServer(t)
	d := NewDeduper(newTestClient(server.URL), nil)
	for i := 0; i < 2; i++ {
		if sent, err := d.Send(context.Background(), "key", []byte(testSVG), 1); err != nil || !sent {
			t.Fatalf("Send = %v, %v", sent, err)
		}
	}
	if posts.Load() != 2 {
		t.Errorf("posts = %d, want 2", posts.Load())
	}
}

func TestDeduperScopedKeyer(t *testing.T) {
	server, _ := countingServer(t)
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	a := NewDeduper(newTestClient(server.URL), fc, WithKeyer(cache.NewScopedKeyer(nil, "a:")))
	b := NewDeduper(newTestClient(server.URL), fc, WithKeyer(cache.NewScopedKeyer(nil, "b:")))

	_, _ = a.Send(ctx, "key", []byte(testSVG), 1)
	if sent, _ := b.Send(ctx, "key", []byte(testSVG), 1); !sent {
		t.Error("scopes share dedupe state")
	}
}
