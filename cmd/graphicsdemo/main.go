// Command graphicsdemo records a small scene with gg-graphics, renders it
// with and without a raster cache, and writes the result to a file or shows
// it in the terminal.
package main

import (
	"encoding/base64"
	"errors"
	"flag"
	"log"
	"math"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	graphics "github.com/gogpu/gg-graphics"
	_ "github.com/gogpu/gg-graphics/canvas"
	"github.com/gogpu/gg-graphics/display"
	"github.com/gogpu/gg-graphics/surface"
	"github.com/gogpu/gg-graphics/termview"
)

func main() {
	var (
		width   = flag.Int("width", 320, "image width")
		height  = flag.Int("height", 200, "image height")
		output  = flag.String("output", "demo.png", "output file")
		mime    = flag.String("mime", "image/png", "output MIME type (png, jpeg, bmp, tiff)")
		term    = flag.Bool("term", false, "show the scene in the terminal instead of writing a file")
		backend = flag.String("backend", "", "surface backend (default: best available)")
	)
	flag.Parse()

	opts := []graphics.Option{graphics.WithSize(float64(*width), float64(*height)), graphics.WithID("demo")}
	newSurface := surface.NewSurfaceWithOptions
	if *backend != "" {
		newSurface = surface.FactoryByName(*backend)
		opts = append(opts, graphics.WithSurfaceFactory(newSurface))
	}
	g := graphics.New(opts...)
	drawScene(g, float64(*width), float64(*height))
	if err := g.Err(); err != nil {
		log.Fatalf("Failed to record scene: %v", err)
	}

	if *term {
		if err := showInTerminal(g); err != nil {
			log.Fatalf("Terminal: %v", err)
		}
		return
	}

	size := surface.Options{Width: *width, Height: *height}
	s, err := newSurface(size)
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}
	if err := g.Render(display.CanvasTarget{Surface: s}); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	// The cached path must produce the same pixels as the replay.
	if _, err := g.Cache(false); err != nil {
		log.Fatalf("Failed to cache: %v", err)
	}
	cached, err := newSurface(size)
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}
	if err := g.Render(display.CanvasTarget{Surface: cached}); err != nil {
		log.Fatalf("Failed to render cache: %v", err)
	}

	url, err := cached.DataURL(*mime)
	if err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}
	if err := writeDataURL(*output, url); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d, %d commands)\n", *output, *width, *height, g.Len())
}

func drawScene(g *graphics.Graphics, w, h float64) {
	// Background
	g.BeginLinearGradientFill(0, 0, 0, h,
		[]surface.Color{"#1a3366", "#335580"}, []float64{0, 1}).
		DrawRect(0, 0, w, h).
		EndFill()

	// Overlapping translucent circles
	g.LineStyle(2, surface.Color("white"), 0.8)
	for i, c := range []surface.Color{"tomato", "limegreen", "royalblue"} {
		x := w*0.15 + float64(i)*w*0.08
		y := h*0.25 + float64(i%2)*h*0.12
		g.BeginFill(c, 0.7).DrawCircle(x, y, h*0.2).EndFill()
	}

	// Rounded panel
	g.LineStyle(3, surface.Color("gold"), 1, graphics.WithLineJoin(surface.LineJoinRound)).
		BeginRadialGradientFill(w*0.7, h*0.4, 0, w*0.7, h*0.4, h*0.35,
			[]surface.Color{"white", "orange", "darkorange"}, []float64{0, 0.4, 1}).
		DrawRoundRect(w*0.55, h*0.15, w*0.3, h*0.5, 12).
		EndFill()

	// Ellipse and a star path
	g.LineStyle(1, surface.Color("rgb(255 255 255 / 50%)"), 1).
		BeginFill(surface.Color("#9933cc"), 0.6).
		DrawEllipse(w*0.1, h*0.65, w*0.3, h*0.25).
		EndFill()

	cx, cy, r := w*0.75, h*0.82, h*0.12
	g.LineStyle(2, surface.Color("yellow"), 1, graphics.WithLineCap(surface.LineCapRound)).
		BeginFill(surface.Color("khaki"), 0.9).
		BeginPath()
	for i := 0; i < 10; i++ {
		rr := r
		if i%2 == 1 {
			rr = r * 0.45
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		x, y := cx+rr*math.Cos(a), cy+rr*math.Sin(a)
		if i == 0 {
			g.MoveTo(x, y)
		} else {
			g.LineTo(x, y)
		}
	}
	g.ClosePath().EndFill()
}

// writeDataURL decodes a base64 data URL and writes its payload to name.
func writeDataURL(name, url string) error {
	_, payload, ok := strings.Cut(url, ";base64,")
	if !ok {
		return errors.New("not a base64 data URL")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return err
	}
	return os.WriteFile(name, data, 0o644)
}

func showInTerminal(g *graphics.Graphics) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	// Each cell holds two pixel rows; scale the node to fit the screen.
	cols, rows := screen.Size()
	g.Width, g.Height = float64(cols), float64(rows*2)
	g.Clear()
	drawScene(g, g.Width, g.Height)

	if err := g.Render(termview.New(screen)); err != nil {
		return err
	}
	screen.Show()

	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
