package arbor

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// canvasAnim holds active tweens for an animated zoom or scroll.
// A nil tween is an axis that is not animating.
type canvasAnim struct {
	tweenA *gween.Tween
	tweenB *gween.Tween
	doneA  bool
	doneB  bool
}

func (a *canvasAnim) step(dt float32, setA, setB func(float64)) bool {
	if a.tweenA != nil && !a.doneA {
		v, done := a.tweenA.Update(dt)
		setA(float64(v))
		a.doneA = done
	}
	if a.tweenB != nil && !a.doneB {
		v, done := a.tweenB.Update(dt)
		setB(float64(v))
		a.doneB = done
	}
	return (a.tweenA == nil || a.doneA) && (a.tweenB == nil || a.doneB)
}

// Canvas is the coordinate transform collaborator of a graph: it converts
// device (client) coordinates into graph-local coordinates accounting for
// the container origin, scroll offset, scale and translate, and snaps them
// to the grid.
//
//	client = Origin - Scroll + (local + translate) * scale
//
// "View" coordinates are (local + translate) * scale; the snap engine works
// in that space.
type Canvas struct {
	// Origin is the client position of the container's top-left corner.
	Origin Vec2
	// Scroll is the container scroll offset.
	Scroll Vec2
	// Width and Height are the container's client size.
	Width, Height float64
	// GridSize is the grid spacing in local units. Values <= 1 disable snapping.
	GridSize float64
	// PanDX and PanDY are the transient pan applied while a gesture is in
	// progress; cell bounds do not include it.
	PanDX, PanDY float64

	scale     float64
	translate Vec2

	matrix    [6]float64
	invMatrix [6]float64
	dirty     bool

	zoomAnim   *canvasAnim
	scrollAnim *canvasAnim
}

// NewCanvas creates a canvas of the given client size with scale 1 and the
// given grid size.
func NewCanvas(width, height, gridSize float64) *Canvas {
	return &Canvas{
		Width:    width,
		Height:   height,
		GridSize: gridSize,
		scale:    1,
		dirty:    true,
	}
}

// Scale returns the current zoom factor.
func (c *Canvas) Scale() float64 { return c.scale }

// SetScale sets the zoom factor. Non-positive values are ignored.
func (c *Canvas) SetScale(s float64) {
	if s <= 0 || s == c.scale {
		return
	}
	c.scale = s
	c.dirty = true
}

// Translate returns the translate, in local units.
func (c *Canvas) Translate() Vec2 { return c.translate }

// SetTranslate sets the translate, in local units.
func (c *Canvas) SetTranslate(tx, ty float64) {
	c.translate = Vec2{tx, ty}
	c.dirty = true
}

// SetOrigin sets the container's client position.
func (c *Canvas) SetOrigin(x, y float64) {
	c.Origin = Vec2{x, y}
	c.dirty = true
}

// SetScroll sets the container scroll offset.
func (c *Canvas) SetScroll(x, y float64) {
	c.Scroll = Vec2{x, y}
	c.dirty = true
}

// MarkDirty forces a recomputation of the client matrix. Call it after
// assigning Origin or Scroll directly.
func (c *Canvas) MarkDirty() {
	c.dirty = true
}

// computeMatrix recomputes the cached local-to-client matrix if dirty.
//
// matrix = Translate(Origin - Scroll) * Scale(scale) * Translate(translate)
func (c *Canvas) computeMatrix() [6]float64 {
	if !c.dirty {
		return c.matrix
	}
	c.dirty = false
	m := multiplyAffine(scaleMatrix(c.scale), translateMatrix(c.translate.X, c.translate.Y))
	m = multiplyAffine(translateMatrix(c.Origin.X-c.Scroll.X, c.Origin.Y-c.Scroll.Y), m)
	c.matrix = m
	c.invMatrix = invertAffine(m)
	return m
}

// ClientToLocal converts client coordinates to graph-local coordinates.
func (c *Canvas) ClientToLocal(x, y float64) Vec2 {
	c.computeMatrix()
	lx, ly := transformPoint(c.invMatrix, x, y)
	return Vec2{lx, ly}
}

// LocalToClient converts graph-local coordinates to client coordinates.
func (c *Canvas) LocalToClient(x, y float64) Vec2 {
	c.computeMatrix()
	cx, cy := transformPoint(c.matrix, x, y)
	return Vec2{cx, cy}
}

// LocalToView converts a local rectangle into view space.
func (c *Canvas) LocalToView(r Rect) Rect {
	s, t := c.scale, c.translate
	return Rect{
		X:      (r.X + t.X) * s,
		Y:      (r.Y + t.Y) * s,
		Width:  r.Width * s,
		Height: r.Height * s,
	}
}

// ViewToLocal converts a view-space rectangle back into local space.
func (c *Canvas) ViewToLocal(r Rect) Rect {
	s, t := c.scale, c.translate
	return Rect{
		X:      r.X/s - t.X,
		Y:      r.Y/s - t.Y,
		Width:  r.Width / s,
		Height: r.Height / s,
	}
}

// ViewPointToLocal converts a view-space point into local space.
func (c *Canvas) ViewPointToLocal(x, y float64) Vec2 {
	return Vec2{x/c.scale - c.translate.X, y/c.scale - c.translate.Y}
}

// Snap rounds v to the nearest multiple of GridSize.
func (c *Canvas) Snap(v float64) float64 {
	g := c.GridSize
	if g <= 1 {
		g = 1
	}
	return jsRound(v/g) * g
}

// SnapToGrid converts client coordinates to a grid-snapped local point.
func (c *Canvas) SnapToGrid(clientX, clientY float64) Vec2 {
	p := c.ClientToLocal(clientX, clientY)
	return Vec2{c.Snap(p.X), c.Snap(p.Y)}
}

// VisibleArea returns the local-space rectangle currently shown by the container.
func (c *Canvas) VisibleArea() Rect {
	tl := c.ClientToLocal(c.Origin.X, c.Origin.Y)
	br := c.ClientToLocal(c.Origin.X+c.Width, c.Origin.Y+c.Height)
	return Rect{
		X: math.Min(tl.X, br.X), Y: math.Min(tl.Y, br.Y),
		Width: math.Abs(br.X - tl.X), Height: math.Abs(br.Y - tl.Y),
	}
}

// ContainsClient reports whether a client point lies inside the container.
func (c *Canvas) ContainsClient(x, y float64) bool {
	return Rect{c.Origin.X, c.Origin.Y, c.Width, c.Height}.Contains(x, y)
}

// ZoomTo animates the scale to s over duration seconds.
// A nil easeFn uses ease.Linear.
func (c *Canvas) ZoomTo(s float64, duration float32, easeFn ease.TweenFunc) {
	if s <= 0 {
		return
	}
	if easeFn == nil {
		easeFn = ease.Linear
	}
	c.zoomAnim = &canvasAnim{
		tweenA: gween.New(float32(c.scale), float32(s), duration, easeFn),
	}
}

// ScrollTo animates the scroll offset to (x, y) over duration seconds.
// A nil easeFn uses ease.Linear.
func (c *Canvas) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.Linear
	}
	c.scrollAnim = &canvasAnim{
		tweenA: gween.New(float32(c.Scroll.X), float32(x), duration, easeFn),
		tweenB: gween.New(float32(c.Scroll.Y), float32(y), duration, easeFn),
	}
}

// Animating reports whether a zoom or scroll animation is in progress.
func (c *Canvas) Animating() bool {
	return c.zoomAnim != nil || c.scrollAnim != nil
}

// Update advances zoom and scroll animations by dt seconds.
func (c *Canvas) Update(dt float32) {
	if c.zoomAnim != nil {
		done := c.zoomAnim.step(dt, c.SetScale, nil)
		if done {
			c.zoomAnim = nil
		}
	}
	if c.scrollAnim != nil {
		done := c.scrollAnim.step(dt,
			func(v float64) { c.Scroll.X = v; c.dirty = true },
			func(v float64) { c.Scroll.Y = v; c.dirty = true })
		if done {
			c.scrollAnim = nil
		}
	}
}
