package arbor

// HitShape replaces the hit region an element derives from its Type and
// Bounds. Coordinates are local, like Bounds.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is a rectangle given by its corner and size. Edges count as
// inside.
type HitRect struct {
	X, Y, Width, Height float64
}

func hitRect(r Rect) HitRect {
	return HitRect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is the magnet hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

func (c HitCircle) Contains(x, y float64) bool {
	dx, dy := x-c.CenterX, y-c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon, wound either way. Polygon elements
// without a HitShape test against their Points with it.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) is on the same side of every edge.
// Fewer than three points contain nothing.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	sign := 0
	for i, a := range p.Points {
		b := p.Points[(i+1)%n]
		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		switch {
		case cross > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < 0:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return true
}

// ellipseContains tests a point against the ellipse inscribed in r.
func ellipseContains(r Rect, x, y float64) bool {
	if r.Width <= 0 || r.Height <= 0 {
		return false
	}
	rx, ry := r.Width/2, r.Height/2
	dx := (x - r.CenterX()) / rx
	dy := (y - r.CenterY()) / ry
	return dx*dx+dy*dy <= 1
}

// HitSegment is the band of width 2*Tolerance around segment AB. Edge
// lines use it.
type HitSegment struct {
	A, B      Vec2
	Tolerance float64
}

// Contains reports whether (x, y) lies within Tolerance of the segment.
func (s HitSegment) Contains(x, y float64) bool {
	dx, dy := s.B.X-s.A.X, s.B.Y-s.A.Y
	px, py := x-s.A.X, y-s.A.Y
	l2 := dx*dx + dy*dy
	t := 0.0
	if l2 > 0 {
		t = (px*dx + py*dy) / l2
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	ex, ey := px-t*dx, py-t*dy
	return ex*ex+ey*ey <= s.Tolerance*s.Tolerance
}
