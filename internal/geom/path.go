package geom

import "math"

// Element is one segment of a Path.
type Element interface {
	isElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ P Point }

// LineTo adds a straight segment.
type LineTo struct{ P Point }

// CubicTo adds a cubic Bézier segment.
type CubicTo struct{ C1, C2, P Point }

// Close closes the current subpath.
type Close struct{}

func (MoveTo) isElement()  {}
func (LineTo) isElement()  {}
func (CubicTo) isElement() {}
func (Close) isElement()   {}

// EndPoint returns the point an element finishes at. Close has none.
func EndPoint(e Element) (Point, bool) {
	switch e := e.(type) {
	case MoveTo:
		return e.P, true
	case LineTo:
		return e.P, true
	case CubicTo:
		return e.P, true
	}
	return Point{}, false
}

// Path is a canvas-style path: segments accumulate until Reset, a segment
// with no current point starts the subpath, and a segment added after Close
// opens a new subpath at the closed one's first point.
type Path struct {
	elems      []Element
	start      Point
	current    Point
	hasCurrent bool
	closed     bool
}

// Reset empties the path.
func (p *Path) Reset() {
	p.elems = p.elems[:0]
	p.hasCurrent = false
	p.closed = false
}

// Elements returns the path segments. The slice must not be modified.
func (p *Path) Elements() []Element {
	return p.elems
}

// Empty reports whether the path has no segments.
func (p *Path) Empty() bool {
	return len(p.elems) == 0
}

// CurrentPoint returns the pen position and whether there is one.
func (p *Path) CurrentPoint() (Point, bool) {
	return p.current, p.hasCurrent
}

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt Point) {
	p.elems = append(p.elems, MoveTo{P: pt})
	p.start = pt
	p.current = pt
	p.hasCurrent = true
	p.closed = false
}

// LineTo draws a line from the current point, or moves there when there is
// no current point.
func (p *Path) LineTo(pt Point) {
	if !p.hasCurrent {
		p.MoveTo(pt)
		return
	}
	p.reopen()
	p.elems = append(p.elems, LineTo{P: pt})
	p.current = pt
}

// CubicTo adds a cubic Bézier. With no current point the subpath starts at c1.
func (p *Path) CubicTo(c1, c2, pt Point) {
	if !p.hasCurrent {
		p.MoveTo(c1)
	}
	p.reopen()
	p.elems = append(p.elems, CubicTo{C1: c1, C2: c2, P: pt})
	p.current = pt
}

// Close closes the current subpath. It is a no-op without a current point.
func (p *Path) Close() {
	if !p.hasCurrent || p.closed {
		return
	}
	p.elems = append(p.elems, Close{})
	p.current = p.start
	p.closed = true
}

func (p *Path) reopen() {
	if p.closed {
		p.elems = append(p.elems, MoveTo{P: p.start})
		p.closed = false
	}
}

// Rect adds a closed rectangle subpath; the pen ends at (x, y).
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(Pt(x, y))
	p.LineTo(Pt(x+w, y))
	p.LineTo(Pt(x+w, y+h))
	p.LineTo(Pt(x, y+h))
	p.Close()
}

// Arc adds a circular arc with the HTML canvas rules: it is joined to the
// current point by a straight line, a sweep of 2π or more in the drawing
// direction is a full circle, and otherwise the sweep is taken modulo 2π.
// Positive angles turn clockwise on screen. radius must not be negative.
func (p *Path) Arc(cx, cy, radius, startAngle, endAngle float64, anticlockwise bool) {
	sweep := arcSweep(startAngle, endAngle, anticlockwise)

	first := Pt(cx+radius*math.Cos(startAngle), cy+radius*math.Sin(startAngle))
	if p.hasCurrent {
		p.LineTo(first)
	} else {
		p.MoveTo(first)
	}
	if sweep == 0 || radius == 0 {
		return
	}

	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)
	a := startAngle
	for i := 0; i < n; i++ {
		p.arcSegment(cx, cy, radius, a, a+step)
		a += step
	}
}

func arcSweep(start, end float64, anticlockwise bool) float64 {
	const twoPi = 2 * math.Pi
	if !anticlockwise {
		if end-start >= twoPi {
			return twoPi
		}
		s := math.Mod(end-start, twoPi)
		if s < 0 {
			s += twoPi
		}
		return s
	}
	if start-end >= twoPi {
		return -twoPi
	}
	s := math.Mod(start-end, twoPi)
	if s < 0 {
		s += twoPi
	}
	return -s
}

// arcSegment appends one cubic approximating an arc of at most 90 degrees.
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	da := a2 - a1
	alpha := math.Sin(da) * (math.Sqrt(4+3*math.Tan(da/2)*math.Tan(da/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1, y1 := cx+r*cos1, cy+r*sin1
	x2, y2 := cx+r*cos2, cy+r*sin2

	p.CubicTo(
		Pt(x1-alpha*r*sin1, y1+alpha*r*cos1),
		Pt(x2+alpha*r*sin2, y2-alpha*r*cos2),
		Pt(x2, y2),
	)
}
