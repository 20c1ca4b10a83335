package screen

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/arbor"
	arborcolor "github.com/phanxgames/arbor/color"
)

const (
	dashLength   = 4
	dashGap      = 3
	ellipseSteps = 48
	debugCharW   = 6
	debugCharH   = 16
)

var gridDotColor = color.RGBA{0xd0, 0xd0, 0xd0, 0xff}

// segment is a straight line piece in screen space.
type segment struct {
	x0, y0, x1, y1 float64
}

// dashSegments splits a-b into dashes of dash length separated by gap.
func dashSegments(a, b arbor.Vec2, dash, gap float64) []segment {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 || dash <= 0 {
		return nil
	}
	ux, uy := dx/length, dy/length
	var out []segment
	for d := 0.0; d < length; d += dash + gap {
		end := math.Min(d+dash, length)
		out = append(out, segment{a.X + ux*d, a.Y + uy*d, a.X + ux*end, a.Y + uy*end})
	}
	return out
}

// ellipsePoints approximates the ellipse inscribed in r with n points.
func ellipsePoints(r arbor.Rect, n int) []arbor.Vec2 {
	cx, cy, rx, ry := r.CenterX(), r.CenterY(), r.Width/2, r.Height/2
	pts := make([]arbor.Vec2, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = arbor.Vec2{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)}
	}
	return pts
}

// parseColor returns the paint for a style color; ok is false for empty or
// unknown colors, which are not painted.
func parseColor(s string) (color.RGBA, bool) {
	if s == "" || s == "none" {
		return color.RGBA{}, false
	}
	c, err := arborcolor.Parse(s)
	if err != nil {
		return color.RGBA{}, false
	}
	return c, true
}

type painter struct {
	dst    *ebiten.Image
	canvas *arbor.Canvas
}

func (p *painter) toScreen(v arbor.Vec2) arbor.Vec2 {
	return p.canvas.LocalToClient(v.X, v.Y)
}

func (p *painter) rectToScreen(r arbor.Rect) arbor.Rect {
	tl := p.toScreen(arbor.Vec2{X: r.X, Y: r.Y})
	br := p.toScreen(arbor.Vec2{X: r.Right(), Y: r.Bottom()})
	return arbor.Rect{X: tl.X, Y: tl.Y, Width: br.X - tl.X, Height: br.Y - tl.Y}
}

func (p *painter) line(a, b arbor.Vec2, width float64, clr color.Color, dashed bool) {
	if !dashed {
		vector.StrokeLine(p.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), clr, true)
		return
	}
	for _, s := range dashSegments(a, b, dashLength, dashGap) {
		vector.StrokeLine(p.dst, float32(s.x0), float32(s.y0), float32(s.x1), float32(s.y1), float32(width), clr, true)
	}
}

func (p *painter) polyline(pts []arbor.Vec2, closed bool, st arbor.Style) {
	clr, ok := parseColor(st.Stroke)
	if !ok || len(pts) < 2 {
		return
	}
	w := st.StrokeWidth
	if w <= 0 {
		w = 1
	}
	for i := 0; i+1 < len(pts); i++ {
		p.line(pts[i], pts[i+1], w, clr, st.Dashed)
	}
	if closed {
		p.line(pts[len(pts)-1], pts[0], w, clr, st.Dashed)
	}
}

func (p *painter) rect(r arbor.Rect, st arbor.Style) {
	s := p.rectToScreen(r)
	if fill, ok := parseColor(st.Fill); ok {
		vector.DrawFilledRect(p.dst, float32(s.X), float32(s.Y), float32(s.Width), float32(s.Height), fill, true)
	}
	corners := []arbor.Vec2{
		{X: s.X, Y: s.Y}, {X: s.Right(), Y: s.Y},
		{X: s.Right(), Y: s.Bottom()}, {X: s.X, Y: s.Bottom()},
	}
	p.polyline(corners, true, st)
}

func (p *painter) ellipse(r arbor.Rect, st arbor.Style) {
	s := p.rectToScreen(r)
	if fill, ok := parseColor(st.Fill); ok && s.Height > 0 {
		// Fill by horizontal spans, one per screen row.
		ry := s.Height / 2
		for y := 0.0; y <= s.Height; y++ {
			t := (y - ry) / ry
			half := s.Width / 2 * math.Sqrt(math.Max(0, 1-t*t))
			cy := float32(s.Y + y)
			vector.StrokeLine(p.dst, float32(s.CenterX()-half), cy, float32(s.CenterX()+half), cy, 1, fill, false)
		}
	}
	p.polyline(ellipsePoints(s, ellipseSteps), true, st)
}

func (p *painter) text(r arbor.Rect, s string) {
	if s == "" {
		return
	}
	b := p.rectToScreen(r)
	x := b.CenterX() - float64(len(s)*debugCharW)/2
	y := b.CenterY() - debugCharH/2
	ebitenutil.DebugPrintAt(p.dst, s, int(x), int(y))
}

func (p *painter) grid(size float64) {
	if size <= 1 {
		return
	}
	area := p.canvas.VisibleArea()
	for x := math.Floor(area.X/size) * size; x <= area.Right(); x += size {
		for y := math.Floor(area.Y/size) * size; y <= area.Bottom(); y += size {
			s := p.toScreen(arbor.Vec2{X: x, Y: y})
			vector.DrawFilledRect(p.dst, float32(s.X), float32(s.Y), 1, 1, gridDotColor, false)
		}
	}
}

// element draws el and its visible subtree in painter order.
func (p *painter) element(el *arbor.Element) {
	if !el.Visible {
		return
	}
	switch el.Type {
	case arbor.ElementRect, arbor.ElementImage:
		p.rect(el.Bounds, el.Style)
	case arbor.ElementHTML:
		p.rect(el.Bounds, el.Style)
		p.text(el.Bounds, el.Text)
	case arbor.ElementEllipse:
		p.ellipse(el.Bounds, el.Style)
	case arbor.ElementPolyline:
		pts := make([]arbor.Vec2, len(el.Points))
		for i, v := range el.Points {
			pts[i] = p.toScreen(v)
		}
		p.polyline(pts, false, el.Style)
	case arbor.ElementPolygon:
		pts := make([]arbor.Vec2, len(el.Points))
		for i, v := range el.Points {
			pts[i] = p.toScreen(v)
		}
		p.polyline(pts, true, el.Style)
	case arbor.ElementText:
		p.text(el.Bounds, el.Text)
	}
	for _, c := range el.Children() {
		p.element(c)
	}
}

// drawSurface paints the whole surface of g onto dst.
func drawSurface(dst *ebiten.Image, g *arbor.Graph) {
	p := &painter{dst: dst, canvas: g.Canvas()}
	s := g.Surface()
	if grid := s.Layer("grid"); grid != nil && grid.Visible {
		p.grid(g.Canvas().GridSize)
	}
	p.element(s.Container())
}
