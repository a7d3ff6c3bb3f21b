package termview

import (
	"image"
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/gg-graphics/display"
	"github.com/gogpu/gg-graphics/surface"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

// twoRows is a 2x2 image: red on top, blue below, right column half
// transparent.
func twoRows() *surface.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, A: 128})
	return surface.NewImage(img)
}

func cell(t *testing.T, s tcell.Screen, x, y int) (rune, tcell.Color, tcell.Color) {
	t.Helper()
	r, _, style, _ := s.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	return r, fg, bg
}

func TestComposeHalfBlocks(t *testing.T) {
	s := newScreen(t, 8, 4)
	tgt := New(s)
	obj := &display.Object{ID: "node", X: 1, Y: 2}

	if err := tgt.Compose(obj, twoRows()); err != nil {
		t.Fatalf("Compose: %v", err)
	}

	r, fg, bg := cell(t, s, 1, 1)
	if r != HalfBlock {
		t.Errorf("rune = %q, want %q", r, HalfBlock)
	}
	if want := tcell.NewRGBColor(255, 0, 0); fg != want {
		t.Errorf("fg = %v, want %v", fg, want)
	}
	if want := tcell.NewRGBColor(0, 0, 255); bg != want {
		t.Errorf("bg = %v, want %v", bg, want)
	}

	// Half-transparent red over the default black background.
	_, fg, bg = cell(t, s, 2, 1)
	if r, g, b := fg.RGB(); r < 126 || r > 129 || g != 0 || b != 0 {
		t.Errorf("blended fg = %d,%d,%d, want dark red", r, g, b)
	}
	if bg.Valid() {
		t.Errorf("transparent pixel changed bg to %v", bg)
	}

	if r, _, _ := cell(t, s, 0, 1); r == HalfBlock {
		t.Error("cell left of the node was drawn")
	}
}

func TestComposeOddRowKeepsOtherHalf(t *testing.T) {
	s := newScreen(t, 4, 4)
	green := tcell.NewRGBColor(0, 255, 0)
	s.SetContent(0, 0, ' ', nil, tcell.StyleDefault.Foreground(green))

	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{B: 255, A: 255})

	tgt := New(s)
	if err := tgt.Compose(&display.Object{Y: 1}, surface.NewImage(img)); err != nil {
		t.Fatalf("Compose: %v", err)
	}
	_, fg, bg := cell(t, s, 0, 0)
	if fg != green {
		t.Errorf("fg = %v, want the existing %v", fg, green)
	}
	if want := tcell.NewRGBColor(0, 0, 255); bg != want {
		t.Errorf("bg = %v, want %v", bg, want)
	}
}

func TestComposeClipsToScreen(t *testing.T) {
	s := newScreen(t, 2, 1)
	tgt := New(s, WithBackground(color.White))
	if err := tgt.Compose(&display.Object{X: -1, Y: -1}, twoRows()); err != nil {
		t.Fatalf("Compose: %v", err)
	}
	// Only image pixel (1, 1) lands on screen, as the top half of cell (0, 0).
	r, fg, _ := cell(t, s, 0, 0)
	if r != HalfBlock || fg.Valid() {
		t.Errorf("cell (0,0) = %q fg %v, want half block with no fg (transparent pixel)", r, fg)
	}
	if r, _, _ := cell(t, s, 1, 0); r == HalfBlock {
		t.Error("cell (1,0) outside the image was drawn")
	}
}

func TestBackgroundOption(t *testing.T) {
	s := newScreen(t, 2, 1)
	tgt := New(s, WithBackground(color.White))
	if err := tgt.Compose(&display.Object{X: -1}, twoRows()); err != nil {
		t.Fatalf("Compose: %v", err)
	}
	_, fg, _ := cell(t, s, 0, 0)
	if r, g, b := fg.RGB(); r != 255 || g < 126 || g > 129 || b != g {
		t.Errorf("fg = %d,%d,%d, want red blended over white", r, g, b)
	}
}

func TestComposeWithoutDrawable(t *testing.T) {
	tgt := New(newScreen(t, 1, 1))
	if err := tgt.Compose(&display.Object{}, nil); err != display.ErrNoDrawable {
		t.Errorf("Compose(nil) = %v, want ErrNoDrawable", err)
	}
	if tgt.Context2D() != nil {
		t.Error("Context2D() != nil")
	}
}
