package arbor

import "math"

// State is an alignment candidate for a Guide. Bounds are in view space.
// A nil Cell marks a virtual grid target.
type State struct {
	Bounds Rect
	Cell   *Cell
}

// GuideStyle is the paint of one guide line.
type GuideStyle struct {
	Stroke      string
	StrokeWidth float64
	Dashed      bool
	// ClassName is appended to the guide's own class names.
	ClassName string
}

// StyleFunc returns the style of a guide. horizontal is true for the
// horizontal line (the y alignment); cell is the matched state's cell.
type StyleFunc func(cell *Cell, horizontal bool) GuideStyle

// DefaultGuideStyle draws dashed blue guides, solid for grid targets.
func DefaultGuideStyle(cell *Cell, horizontal bool) GuideStyle {
	return GuideStyle{Stroke: "#1890ff", StrokeWidth: 1, Dashed: cell != nil}
}

// Guide is the alignment snap engine for one drag gesture. It corrects a
// tentative move delta so the moved box aligns with the closest candidate
// state on each axis, falling back to the grid, and keeps a vertical and a
// horizontal guide line in the overlay layer as feedback.
//
// The states slice is owned by the caller and only read by Move.
type Guide struct {
	// Horizontal enables x alignment (vertical guide line).
	Horizontal bool
	// Vertical enables y alignment (horizontal guide line).
	Vertical bool
	// Rounded floors every emitted delta to whole positions.
	Rounded bool

	canvas  *Canvas
	overlay *Element
	prefix  string
	style   StyleFunc
	states  []State

	guideX *Element
	guideY *Element

	disposed bool
}

// NewGuide creates a guide drawing into overlay. A nil style uses
// DefaultGuideStyle.
func NewGuide(canvas *Canvas, overlay *Element, prefix string, states []State, style StyleFunc) *Guide {
	if style == nil {
		style = DefaultGuideStyle
	}
	if prefix == "" {
		prefix = defaultClassPrefix
	}
	return &Guide{
		Horizontal: true,
		Vertical:   true,
		canvas:     canvas,
		overlay:    overlay,
		prefix:     prefix,
		style:      style,
		states:     states,
	}
}

// SetStates replaces the candidate states.
func (g *Guide) SetStates(states []State) {
	g.states = states
}

// States returns the candidate states.
func (g *Guide) States() []State {
	return g.states
}

// GuideX returns the vertical guide line, or nil if it was never needed.
func (g *Guide) GuideX() *Element { return g.guideX }

// GuideY returns the horizontal guide line, or nil if it was never needed.
func (g *Guide) GuideY() *Element { return g.guideY }

func (g *Guide) tolerance() float64 {
	return g.canvas.GridSize / 2
}

func (g *Guide) createGuide() *Element {
	el := NewElement("polyline", ElementPolyline)
	el.PointerEvents = false
	el.Visible = false
	if g.overlay != nil {
		g.overlay.AddChild(el)
	}
	return el
}

// redraw restyles el and places it at points, given in view space. Element
// geometry is local, so the points are stored converted.
func (g *Guide) redraw(el *Element, st State, horizontal bool, points []Vec2) {
	style := g.style(st.Cell, horizontal)
	el.Style = Style{Stroke: style.Stroke, StrokeWidth: style.StrokeWidth, Dashed: style.Dashed}
	orient := "vertical"
	if horizontal {
		orient = "horizontal"
	}
	el.SetClassName(g.prefix + "-guide " + g.prefix + "-guide-" + orient)
	if style.ClassName != "" {
		el.AddClass(style.ClassName)
	}
	el.Points = make([]Vec2, len(points))
	for i, v := range points {
		el.Points[i] = g.canvas.ViewPointToLocal(v.X, v.Y)
	}
	el.Visible = true
}

// Move returns delta corrected for alignment. bounds is the moving box
// before the move, in view space. With gridEnabled, an axis that did not
// align to any state is quantized to the grid instead.
//
// Move is a no-op returning delta once the guide is disposed or when both
// axes are disabled.
func (g *Guide) Move(bounds Rect, delta Vec2, gridEnabled bool) Vec2 {
	if g.disposed || !(g.Horizontal || g.Vertical) {
		return delta
	}

	s := g.canvas.Scale()
	t := g.canvas.Translate()
	panDX, panDY := g.canvas.PanDX, g.canvas.PanDY
	tolX, tolY := g.tolerance(), g.tolerance()
	dx, dy := delta.X, delta.Y

	var (
		activeX, activeY bool
		stateX, stateY   *State
		valueX, valueY   float64
	)

	b := bounds.Translate(delta.X, delta.Y)
	left, right, center := b.X, b.Right(), b.CenterX()
	top, bottom, middle := b.Y, b.Bottom(), b.CenterY()

	snapX := func(x float64, st *State) {
		xx := x + panDX
		active := false
		if d := math.Abs(xx - center); d < tolX {
			dx = xx - bounds.CenterX()
			tolX = d
			active = true
		} else if d := math.Abs(xx - left); d < tolX {
			dx = xx - bounds.X
			tolX = d
			active = true
		} else if d := math.Abs(xx - right); d < tolX {
			dx = xx - bounds.Right()
			tolX = d
			active = true
		}
		if active {
			stateX = st
			valueX = jsRound(xx - panDX)
			if g.guideX == nil {
				g.guideX = g.createGuide()
			}
			activeX = true
		}
	}

	snapY := func(y float64, st *State) {
		yy := y + panDY
		active := false
		if d := math.Abs(yy - middle); d < tolY {
			dy = yy - bounds.CenterY()
			tolY = d
			active = true
		} else if d := math.Abs(yy - top); d < tolY {
			dy = yy - bounds.Y
			tolY = d
			active = true
		} else if d := math.Abs(yy - bottom); d < tolY {
			dy = yy - bounds.Bottom()
			tolY = d
			active = true
		}
		if active {
			stateY = st
			valueY = jsRound(yy - panDY)
			if g.guideY == nil {
				g.guideY = g.createGuide()
			}
			activeY = true
		}
	}

	for i := range g.states {
		st := &g.states[i]
		if g.Horizontal {
			snapX(st.Bounds.CenterX(), st)
			snapX(st.Bounds.X, st)
			snapX(st.Bounds.Right(), st)
		}
		if g.Vertical {
			snapY(st.Bounds.CenterY(), st)
			snapY(st.Bounds.Y, st)
			snapY(st.Bounds.Bottom(), st)
		}
	}

	if gridEnabled {
		if !activeX {
			tx := bounds.X - (g.canvas.Snap(bounds.X/s-t.X)+t.X)*s
			dx = g.canvas.Snap(dx/s)*s - tx
		}
		if !activeY {
			ty := bounds.Y - (g.canvas.Snap(bounds.Y/s-t.Y)+t.Y)*s
			dy = g.canvas.Snap(dy/s)*s - ty
		}
	}

	if g.guideX != nil {
		if !activeX {
			g.guideX.Visible = false
		} else {
			minY := math.Min(bounds.Y+dy-panDY, stateX.Bounds.Y)
			maxY := math.Max(bounds.Bottom()+dy-panDY, stateX.Bounds.Bottom())
			g.redraw(g.guideX, *stateX, false, []Vec2{{valueX, minY}, {valueX, maxY}})
		}
	}
	if g.guideY != nil {
		if !activeY {
			g.guideY.Visible = false
		} else {
			minX := math.Min(bounds.X+dx-panDX, stateY.Bounds.X)
			maxX := math.Max(bounds.Right()+dx-panDX, stateY.Bounds.Right())
			g.redraw(g.guideY, *stateY, true, []Vec2{{minX, valueY}, {maxX, valueY}})
		}
	}

	return g.delta(bounds, stateX, dx, stateY, dy)
}

// delta floors an axis when rounding is on or the axis aligned to a grid
// target.
func (g *Guide) delta(bounds Rect, stateX *State, dx float64, stateY *State, dy float64) Vec2 {
	if g.Rounded || (stateX != nil && stateX.Cell == nil) {
		dx = math.Floor(bounds.X+dx) - bounds.X
	}
	if g.Rounded || (stateY != nil && stateY.Cell == nil) {
		dy = math.Floor(bounds.Y+dy) - bounds.Y
	}
	return Vec2{dx, dy}
}

// Hide makes both guides invisible without destroying them.
func (g *Guide) Hide() {
	if g.guideX != nil {
		g.guideX.Visible = false
	}
	if g.guideY != nil {
		g.guideY.Visible = false
	}
}

// Dispose removes both guides permanently. It is safe to call more than once.
func (g *Guide) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	if g.guideX != nil {
		g.guideX.Dispose()
		g.guideX = nil
	}
	if g.guideY != nil {
		g.guideY.Dispose()
		g.guideY = nil
	}
}

// IsDisposed reports whether Dispose was called.
func (g *Guide) IsDisposed() bool { return g.disposed }
