package display

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/gogpu/gg-graphics/surface"
)

func solid(w, h int, c color.RGBA) *surface.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return surface.NewImage(img)
}

func TestUID(t *testing.T) {
	a, b := UID("Graphics"), UID("Graphics")
	if a == b {
		t.Errorf("UID returned %q twice", a)
	}
	if !strings.HasPrefix(a, "Graphics") || len(a) == len("Graphics") {
		t.Errorf("UID = %q, want Graphics<n>", a)
	}
}

func TestRenderWithoutDrawable(t *testing.T) {
	o := &Object{ID: "node"}
	err := o.Render(NewStage(4, 4), nil)
	if !errors.Is(err, ErrNoDrawable) {
		t.Errorf("Render() error = %v, want ErrNoDrawable", err)
	}
}

func TestRenderComposesOnStage(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	o := &Object{ID: "node", X: 2, Y: 1}
	o.SetDrawable(solid(2, 2, red))

	st := NewStage(6, 6)
	if err := o.Render(st, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if st.Composed() != 1 {
		t.Errorf("Composed() = %d, want 1", st.Composed())
	}
	if got := st.Image().RGBAAt(3, 2); got != red {
		t.Errorf("pixel (3,2) = %v, want %v", got, red)
	}
	if got := st.Image().RGBAAt(1, 1); got.A != 0 {
		t.Errorf("pixel (1,1) = %v, want transparent", got)
	}
}

type fixedSource struct {
	d     surface.Drawable
	calls int
}

func (f *fixedSource) Drawable(Target) (surface.Drawable, error) {
	f.calls++
	return f.d, nil
}

func TestRenderUsesSource(t *testing.T) {
	o := &Object{ID: "node"}
	src := &fixedSource{d: solid(1, 1, color.RGBA{B: 255, A: 255})}
	st := NewStage(2, 2)
	if err := o.Render(st, src); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if src.calls != 1 {
		t.Errorf("source calls = %d, want 1", src.calls)
	}
	if o.CurrentDrawable() != nil {
		t.Error("Render stored the source drawable on the object")
	}
}

func TestSetDrawableNilClears(t *testing.T) {
	o := &Object{}
	o.SetDrawable(solid(1, 1, color.RGBA{A: 255}))
	o.SetDrawable(nil)
	if _, err := o.Drawable(nil); !errors.Is(err, ErrNoDrawable) {
		t.Errorf("Drawable() error = %v, want ErrNoDrawable", err)
	}
}
