package stroke

import (
	"math"

	"github.com/gogpu/gg-graphics/internal/geom"
	"github.com/gogpu/gg-graphics/surface"
)

// Style is the stroke configuration. An unset cap means butt and an unset
// join means miter, the canvas defaults.
type Style struct {
	Width      float64
	Cap        surface.LineCap
	Join       surface.LineJoin
	MiterLimit float64
}

// DefaultTolerance is the maximum flattening error in pixels.
const DefaultTolerance = 0.25

// Expander turns stroked paths into outlines. The zero value is not usable;
// call NewExpander.
type Expander struct {
	style     Style
	tolerance float64

	forward  *builder
	backward *builder
	out      *builder

	startPt   geom.Point
	startNorm geom.Vec2
	startTan  geom.Vec2
	lastPt    geom.Point
	lastTan   geom.Vec2
	lastNorm  geom.Vec2

	joinThresh float64
}

// NewExpander returns an expander for style.
func NewExpander(style Style) *Expander {
	if style.Cap == surface.LineCapUnset {
		style.Cap = surface.LineCapButt
	}
	if style.Join == surface.LineJoinUnset {
		style.Join = surface.LineJoinMiter
	}
	return &Expander{style: style, tolerance: DefaultTolerance}
}

// SetTolerance sets the curve flattening tolerance. Non-positive values are
// ignored.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand returns the outline of elements stroked with the expander's style.
func (e *Expander) Expand(elements []geom.Element) []geom.Element {
	e.forward = newBuilder()
	e.backward = newBuilder()
	e.out = newBuilder()
	e.joinThresh = 2 * e.tolerance / e.style.Width

	for _, el := range elements {
		switch el := el.(type) {
		case geom.MoveTo:
			e.finishOpen()
			e.startPt = el.P
			e.lastPt = el.P
		case geom.LineTo:
			e.lineTo(el.P)
		case geom.CubicTo:
			pts := flattenCubic(e.lastPt, el.C1, el.C2, el.P, e.tolerance)
			for _, p := range pts[1:] {
				e.lineTo(p)
			}
		case geom.Close:
			e.lineTo(e.startPt)
			e.finishClosed()
		}
	}
	e.finishOpen()
	return e.out.elems
}

func (e *Expander) lineTo(p geom.Point) {
	tan := p.Sub(e.lastPt)
	if tan.LengthSquared() <= 1e-12 {
		return
	}
	e.join(tan)
	e.lastTan = tan

	norm := tan.Perp().Scale(0.5 * e.style.Width / tan.Length())
	e.forward.lineTo(p.Add(norm.Neg()))
	e.backward.lineTo(p.Add(norm))
	e.lastPt = p
	e.lastNorm = norm
}

// join connects the segment starting at lastPt with direction tan to the
// previous one.
func (e *Expander) join(tan geom.Vec2) {
	norm := tan.Perp().Scale(0.5 * e.style.Width / tan.Length())
	p0 := e.lastPt

	if e.forward.empty() {
		e.forward.moveTo(p0.Add(norm.Neg()))
		e.backward.moveTo(p0.Add(norm))
		e.startTan = tan
		e.startNorm = norm
		return
	}

	ab, cd := e.lastTan, tan
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	hypot := math.Hypot(cross, dot)

	// Nearly collinear: connect without a visible join.
	if dot > 0 && math.Abs(cross) < hypot*e.joinThresh {
		e.forward.lineTo(p0.Add(norm.Neg()))
		e.backward.lineTo(p0.Add(norm))
		return
	}

	switch e.style.Join {
	case surface.LineJoinMiter:
		if 2*hypot < (hypot+dot)*e.style.MiterLimit*e.style.MiterLimit {
			e.miter(p0, norm, ab, cd, cross)
		}
	case surface.LineJoinRound:
		lastNorm := ab.Perp().Scale(0.5 * e.style.Width / ab.Length())
		angle := math.Atan2(cross, dot)
		if angle > 0 {
			arc(e.forward, p0, lastNorm.Neg(), angle)
		} else {
			arc(e.backward, p0, lastNorm, angle)
		}
	}
	e.forward.lineTo(p0.Add(norm.Neg()))
	e.backward.lineTo(p0.Add(norm))
}

// miter adds the miter tip on the outer side of the turn.
func (e *Expander) miter(p0 geom.Point, norm, ab, cd geom.Vec2, cross float64) {
	lastNorm := ab.Perp().Scale(0.5 * e.style.Width / ab.Length())
	switch {
	case cross > 0:
		prev, cur := p0.Add(lastNorm.Neg()), p0.Add(norm.Neg())
		h := ab.Cross(cur.Sub(prev)) / cross
		e.forward.lineTo(cur.Add(cd.Scale(-h)))
		e.backward.lineTo(p0)
	case cross < 0:
		prev, cur := p0.Add(lastNorm), p0.Add(norm)
		h := ab.Cross(cur.Sub(prev)) / cross
		e.backward.lineTo(cur.Add(cd.Scale(-h)))
		e.forward.lineTo(p0)
	}
}

// finishOpen emits the current open subpath with its caps.
func (e *Expander) finishOpen() {
	if e.forward.empty() {
		return
	}
	e.out.append(e.forward)
	e.cap(e.lastPt, e.lastNorm.Neg(), false)
	e.appendReversed(e.backward)
	e.cap(e.startPt, e.startNorm, true)

	e.forward = newBuilder()
	e.backward = newBuilder()
}

// finishClosed emits the current closed subpath as two rings.
func (e *Expander) finishClosed() {
	if e.forward.empty() {
		return
	}
	e.join(e.startTan)

	e.out.append(e.forward)
	e.out.close()
	if n := len(e.backward.elems); n > 0 {
		last, _ := geom.EndPoint(e.backward.elems[n-1])
		e.out.moveTo(last)
	}
	e.appendReversed(e.backward)
	e.out.close()

	e.forward = newBuilder()
	e.backward = newBuilder()
}

// cap draws the cap at center, starting from the side norm points to.
func (e *Expander) cap(center geom.Point, norm geom.Vec2, closing bool) {
	switch e.style.Cap {
	case surface.LineCapRound:
		arc(e.out, center, norm, math.Pi)
	case surface.LineCapSquare:
		// Corners of the square in the (norm, norm⊥) frame.
		at := func(x, y float64) geom.Point {
			return geom.Pt(norm.X*x-norm.Y*y+center.X, norm.Y*x+norm.X*y+center.Y)
		}
		e.out.lineTo(at(1, 1))
		e.out.lineTo(at(-1, 1))
		if !closing {
			e.out.lineTo(at(-1, 0))
		}
	default:
		if !closing {
			e.out.lineTo(center.Add(norm.Neg()))
		}
	}
	if closing {
		e.out.close()
	}
}

func (e *Expander) appendReversed(b *builder) {
	for i := len(b.elems) - 1; i >= 1; i-- {
		end, _ := geom.EndPoint(b.elems[i-1])
		switch el := b.elems[i].(type) {
		case geom.LineTo:
			e.out.lineTo(end)
		case geom.CubicTo:
			e.out.cubicTo(el.C2, el.C1, end)
		}
	}
}

// arc appends a circular arc around center that starts at center+norm and
// turns by angle, in cubic segments of at most 90 degrees.
func arc(out *builder, center geom.Point, norm geom.Vec2, angle float64) {
	n := int(math.Ceil(math.Abs(angle) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := angle / float64(n)
	a := norm.Angle()
	r := norm.Length()
	for i := 0; i < n; i++ {
		a0, a1 := a, a+step
		k := math.Sin(step) * (math.Sqrt(4+3*math.Tan(step/2)*math.Tan(step/2)) - 1) / 3
		cos0, sin0 := math.Cos(a0), math.Sin(a0)
		cos1, sin1 := math.Cos(a1), math.Sin(a1)
		p0 := geom.Pt(center.X+r*cos0, center.Y+r*sin0)
		p1 := geom.Pt(center.X+r*cos1, center.Y+r*sin1)
		out.cubicTo(
			geom.Pt(p0.X-k*r*sin0, p0.Y+k*r*cos0),
			geom.Pt(p1.X+k*r*sin1, p1.Y-k*r*cos1),
			p1,
		)
		a = a1
	}
}

// flattenCubic returns points along the curve, p0 first, within tolerance.
func flattenCubic(p0, p1, p2, p3 geom.Point, tolerance float64) []geom.Point {
	pts := []geom.Point{p0}
	var rec func(p0, p1, p2, p3 geom.Point, depth int)
	rec = func(p0, p1, p2, p3 geom.Point, depth int) {
		d := math.Max(distanceToSegment(p1, p0, p3), distanceToSegment(p2, p0, p3))
		if d < tolerance || depth > 16 {
			pts = append(pts, p3)
			return
		}
		q0, q1, q2 := p0.Lerp(p1, 0.5), p1.Lerp(p2, 0.5), p2.Lerp(p3, 0.5)
		r0, r1 := q0.Lerp(q1, 0.5), q1.Lerp(q2, 0.5)
		s := r0.Lerp(r1, 0.5)
		rec(p0, q0, r0, s, depth+1)
		rec(s, r1, q2, p3, depth+1)
	}
	rec(p0, p1, p2, p3, 0)
	return pts
}

func distanceToSegment(p, a, b geom.Point) float64 {
	ab := b.Sub(a)
	l2 := ab.LengthSquared()
	if l2 < 1e-20 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / l2
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Scale(t)))
}

type builder struct {
	elems []geom.Element
}

func newBuilder() *builder {
	return &builder{elems: make([]geom.Element, 0, 64)}
}

func (b *builder) empty() bool                  { return len(b.elems) == 0 }
func (b *builder) moveTo(p geom.Point)          { b.elems = append(b.elems, geom.MoveTo{P: p}) }
func (b *builder) lineTo(p geom.Point)          { b.elems = append(b.elems, geom.LineTo{P: p}) }
func (b *builder) cubicTo(c1, c2, p geom.Point) { b.elems = append(b.elems, geom.CubicTo{C1: c1, C2: c2, P: p}) }
func (b *builder) close()                       { b.elems = append(b.elems, geom.Close{}) }
func (b *builder) append(other *builder)        { b.elems = append(b.elems, other.elems...) }
