package graphics

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/gogpu/gg-graphics/display"
	"github.com/gogpu/gg-graphics/surface"
)

func recordScene(g *Graphics) {
	g.LineStyle(2, surface.Color("red"), 1, WithLineJoin(surface.LineJoinRound)).
		BeginFill(surface.Color("blue"), 0.5).
		DrawRect(0, 0, 10, 10).
		EndFill().
		BeginPath().
		DrawCircle(1, 1, 2).
		EndFill()
}

var sceneCalls = []string{
	"lineWidth=2",
	"strokeStyle=red",
	"lineAlpha=1",
	"lineJoin=round",
	"fillStyle=blue",
	"fillAlpha=0.5",
	"rect(0,0,10,10)",
	"stroke()",
	"fill()",
	"beginPath()",
	"arc(3,3,2,0.0000,6.2832,false)",
	"stroke()",
	"fill()",
}

func TestRenderReplaysLog(t *testing.T) {
	g := newTestGraphics()
	recordScene(g)

	for i := 0; i < 2; i++ {
		tgt := newRawTarget()
		if err := g.Render(tgt); err != nil {
			t.Fatalf("Render: %v", err)
		}
		if !reflect.DeepEqual(tgt.ctx.calls, sceneCalls) {
			t.Errorf("render %d calls =\n%v\nwant\n%v", i, tgt.ctx.calls, sceneCalls)
		}
	}
}

func TestCacheReplaysIntoNewSurface(t *testing.T) {
	surfaces := &fakeSurfaces{}
	g := New(WithSize(20.5, 9), WithSurfaceFactory(surfaces.New))
	recordScene(g)

	d, err := g.Cache(false)
	if err != nil {
		t.Fatalf("Cache: %v", err)
	}
	if len(surfaces.made) != 1 {
		t.Fatalf("surfaces made = %d, want 1", len(surfaces.made))
	}
	s := surfaces.made[0]
	if d != surface.Drawable(s) || g.Cached() != d {
		t.Error("Cache did not store and return the new surface")
	}
	if s.Width() != 21 || s.Height() != 9 {
		t.Errorf("cache surface = %dx%d, want 21x9", s.Width(), s.Height())
	}
	if !reflect.DeepEqual(s.ctx.calls, sceneCalls) {
		t.Errorf("cache replay calls = %v, want %v", s.ctx.calls, sceneCalls)
	}
}

func TestRenderBlitsCacheThenReplaysAfterUncache(t *testing.T) {
	g := newTestGraphics()
	recordScene(g)
	if _, err := g.Cache(false); err != nil {
		t.Fatalf("Cache: %v", err)
	}

	cached := newRawTarget()
	if err := g.Render(cached); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if want := []string{"drawImage((10,10),0,0)"}; !reflect.DeepEqual(cached.ctx.calls, want) {
		t.Errorf("cached render calls = %v, want %v", cached.ctx.calls, want)
	}

	g.Uncache()
	replayed := newRawTarget()
	if err := g.Render(replayed); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !reflect.DeepEqual(replayed.ctx.calls, sceneCalls) {
		t.Errorf("uncached render calls = %v, want %v", replayed.ctx.calls, sceneCalls)
	}
}

func TestCacheIsFrozenSnapshot(t *testing.T) {
	g := newTestGraphics()
	g.DrawRect(0, 0, 1, 1)
	if _, err := g.Cache(false); err != nil {
		t.Fatalf("Cache: %v", err)
	}
	g.DrawRect(2, 2, 1, 1).EndFill()

	tgt := newRawTarget()
	if err := g.Render(tgt); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(tgt.ctx.calls) != 1 {
		t.Errorf("render after drawing = %v, want only the cached blit", tgt.ctx.calls)
	}
	if g.Len() != 4 {
		t.Errorf("Len() = %d, want 4", g.Len())
	}
}

func TestCacheToImage(t *testing.T) {
	g := newTestGraphics(WithSize(6, 4))
	recordScene(g)

	d, err := g.Cache(true)
	if err != nil {
		t.Fatalf("Cache(true): %v", err)
	}
	img, ok := d.(*surface.Image)
	if !ok {
		t.Fatalf("Cache(true) = %T, want *surface.Image", d)
	}
	if img.Width() != 6 || img.Height() != 4 {
		t.Errorf("image size = %dx%d, want 6x4", img.Width(), img.Height())
	}

	again, err := g.ToImage("image/bmp")
	if err != nil {
		t.Fatalf("ToImage: %v", err)
	}
	if again != img {
		t.Error("ToImage did not return the cached image")
	}
}

func TestToImageWithoutCacheBuildsOne(t *testing.T) {
	g := newTestGraphics()
	img, err := g.ToImage("")
	if err != nil {
		t.Fatalf("ToImage: %v", err)
	}
	if g.Cached() != surface.Drawable(img) {
		t.Error("ToImage without a cache did not store the image as the cache")
	}
}

func TestToImageFromRasterCache(t *testing.T) {
	g := newTestGraphics(WithSize(3, 2))
	raster, err := g.Cache(false)
	if err != nil {
		t.Fatalf("Cache: %v", err)
	}

	img, err := g.ToImage("image/bmp")
	if err != nil {
		t.Fatalf("ToImage: %v", err)
	}
	if !strings.HasPrefix(img.DataURL(), "data:image/bmp;base64,") {
		t.Errorf("DataURL() = %.30q, want a bmp data URL", img.DataURL())
	}
	if img.Width() != 3 || img.Height() != 2 {
		t.Errorf("image size = %dx%d, want 3x2", img.Width(), img.Height())
	}
	if g.Cached() != raster {
		t.Error("ToImage replaced the raster cache")
	}
}

func TestCacheFactoryError(t *testing.T) {
	boom := errors.New("boom")
	g := New(WithSurfaceFactory(fakeFactory(boom)))
	if _, err := g.Cache(false); !errors.Is(err, boom) {
		t.Errorf("Cache() error = %v, want %v", err, boom)
	}
	if g.Cached() != nil {
		t.Error("failed Cache stored a cache")
	}
	if err := g.Render(display.NewStage(1, 1)); !errors.Is(err, boom) {
		t.Errorf("Render() error = %v, want %v", err, boom)
	}
}

func TestCacheToImageErrorKeepsPreviousCache(t *testing.T) {
	boom := errors.New("boom")
	surfaces := &fakeSurfaces{urlErr: boom}
	g := New(WithSize(4, 4), WithSurfaceFactory(surfaces.New))
	g.DrawRect(0, 0, 1, 1)

	if d, err := g.Cache(true); !errors.Is(err, boom) || d != nil {
		t.Fatalf("Cache(true) = %v, %v, want nil, %v", d, err, boom)
	}
	if g.Cached() != nil {
		t.Errorf("Cached() = %T after failed Cache(true), want nil", g.Cached())
	}

	tgt := newRawTarget()
	if err := g.Render(tgt); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if want := []string{"rect(0,0,1,1)"}; !reflect.DeepEqual(tgt.ctx.calls, want) {
		t.Errorf("render calls = %v, want %v", tgt.ctx.calls, want)
	}

	raster, err := g.Cache(false)
	if err != nil {
		t.Fatalf("Cache(false): %v", err)
	}
	if _, err := g.Cache(true); !errors.Is(err, boom) {
		t.Fatalf("Cache(true) error = %v, want %v", err, boom)
	}
	if g.Cached() != raster {
		t.Error("failed Cache(true) replaced the previous cache")
	}
}

func TestZeroSizeToImage(t *testing.T) {
	g := New(WithSurfaceFactory(fakeFactory(nil)))
	g.DrawRect(0, 0, 1, 1)

	img, err := g.ToImage("")
	if err != nil {
		t.Fatalf("ToImage: %v", err)
	}
	if img.Width() != 0 || img.Height() != 0 || !img.Image().Bounds().Empty() {
		t.Errorf("image = %dx%d, want empty", img.Width(), img.Height())
	}
	if img.DataURL() != surface.EmptyDataURL {
		t.Errorf("DataURL() = %q, want %q", img.DataURL(), surface.EmptyDataURL)
	}
}

func TestRenderOnCompositionTarget(t *testing.T) {
	surfaces := &fakeSurfaces{}
	g := New(WithSize(4, 4), WithSurfaceFactory(surfaces.New))
	g.X, g.Y = 1, 1
	recordScene(g)

	st := display.NewStage(8, 8)
	for i := 0; i < 2; i++ {
		if err := g.Render(st); err != nil {
			t.Fatalf("Render: %v", err)
		}
	}
	if st.Composed() != 2 {
		t.Errorf("Composed() = %d, want 2", st.Composed())
	}
	if len(surfaces.made) != 1 {
		t.Errorf("surfaces made = %d, want 1 (drawable reused)", len(surfaces.made))
	}
	if _, ok := g.CurrentDrawable().(*surface.Image); !ok {
		t.Errorf("drawable = %T, want *surface.Image", g.CurrentDrawable())
	}

	g.Clear()
	if g.CurrentDrawable() != nil {
		t.Error("drawable survived Clear")
	}
}
