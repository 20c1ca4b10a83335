package arbor

import (
	"math"
	"time"
)

// dblClickSlop is the largest distance, in client pixels, between the two
// releases of a double click.
const dblClickSlop = 4

// viewportHit makes the svg root hittable over the whole visible area, so
// presses on empty canvas target the svg rather than nothing.
type viewportHit struct {
	canvas *Canvas
}

func (h viewportHit) Contains(x, y float64) bool {
	return h.canvas.VisibleArea().Contains(x, y)
}

// Surface is the retained element tree of a graph plus the host-facing
// input entry points. Hosts report raw pointer state with Pointer, Wheel
// and Touch; the surface hit-tests, synthesizes over/out, enter/leave,
// contextmenu and dblclick events, and delivers everything to whichever
// dispatch table is currently delegated.
type Surface struct {
	prefix    string
	container *Element
	selectors map[string]*Element
	canvas    *Canvas

	// Now returns the current time; replaced in tests.
	Now func() time.Time
	// DblClickInterval is the longest gap between the releases of a
	// double click.
	DblClickInterval time.Duration

	table      *DispatchTable
	docTable   *DispatchTable
	docSession *GestureSession

	hover   *Element
	entered *Element
	inside  bool

	lastUp    time.Time
	lastUpPos Vec2
	hasLastUp bool

	hits []*Element
}

// NewSurface builds the layer tree for prefix under a fresh container.
func NewSurface(canvas *Canvas, prefix string, dblClickInterval time.Duration) *Surface {
	if prefix == "" {
		prefix = defaultClassPrefix
	}
	container := NewElement("div", ElementGroup)
	container.AddClass(prefix + "-graph")
	_, selectors := BuildMarkup(container, SurfaceMarkup(prefix))
	selectors["svg"].HitShape = viewportHit{canvas: canvas}
	return &Surface{
		prefix:           prefix,
		container:        container,
		selectors:        selectors,
		canvas:           canvas,
		Now:              time.Now,
		DblClickInterval: dblClickInterval,
	}
}

// Prefix returns the class name prefix.
func (s *Surface) Prefix() string { return s.prefix }

// Container returns the outer container element.
func (s *Surface) Container() *Element { return s.container }

// SVG returns the svg root.
func (s *Surface) SVG() *Element { return s.selectors["svg"] }

// Layer returns a named layer ("background", "grid", "svg", "defs",
// "viewport", "primer", "stage", "decorator", "overlay"), or nil.
func (s *Surface) Layer(name string) *Element { return s.selectors[name] }

// Canvas returns the coordinate transform of the surface.
func (s *Surface) Canvas() *Canvas { return s.canvas }

// Delegated reports whether surface bindings are attached.
func (s *Surface) Delegated() bool { return s.table != nil }

// DocumentAttached reports whether document bindings are attached.
func (s *Surface) DocumentAttached() bool { return s.docTable != nil }

func (s *Surface) listen(t *DispatchTable) { s.table = t }

func (s *Surface) unlisten() { s.table = nil }

func (s *Surface) listenDocument(t *DispatchTable, session *GestureSession) {
	s.docTable = t
	s.docSession = session
}

func (s *Surface) unlistenDocument() {
	s.docTable = nil
	s.docSession = nil
}

func isDocumentKind(k EventKind) bool {
	switch k {
	case KindMouseMove, KindMouseUp, KindTouchMove, KindTouchEnd, KindTouchCancel:
		return true
	}
	return false
}

// Feed delivers e. Move and release events go to the document bindings,
// carrying the active session, while a gesture is open; everything else goes
// to the surface bindings if they are delegated. Events with no listener are
// dropped.
func (s *Surface) Feed(e *PointerEvent) {
	if isDocumentKind(e.Kind) {
		if s.docTable != nil {
			if e.Session == nil {
				e.Session = s.docSession
			}
			s.docTable.Dispatch(nil, e)
		}
		return
	}
	if s.table != nil {
		s.table.Dispatch(s.container, e)
	}
}

func (s *Surface) hitAt(clientX, clientY float64) *Element {
	if !s.canvas.ContainsClient(clientX, clientY) {
		return nil
	}
	p := s.canvas.ClientToLocal(clientX, clientY)
	var target *Element
	target, s.hits = hitTest(s.container, p.X, p.Y, s.hits)
	return target
}

// enterRoot returns the cell or tools root that enter/leave events target
// for el.
func (s *Surface) enterRoot(el *Element) *Element {
	if el == nil {
		return nil
	}
	cell, tools := s.prefix+"-cell", s.prefix+"-tools"
	return el.Closest(func(c *Element) bool { return c.HasClass(cell) || c.HasClass(tools) })
}

func (s *Surface) event(kind EventKind, x, y float64, target, related *Element, mods KeyModifiers) *PointerEvent {
	return &PointerEvent{Kind: kind, ClientX: x, ClientY: y, Target: target, RelatedTarget: related, Modifiers: mods}
}

// track updates the hover state for the element now under the pointer,
// emitting out/leave for what was left and over/enter for what was entered.
func (s *Surface) track(target *Element, inside bool, x, y float64, mods KeyModifiers) {
	prev := s.hover
	root := s.enterRoot(target)

	if inside && !s.inside {
		s.inside = true
		s.Feed(s.event(KindMouseEnter, x, y, s.container, nil, mods))
	}
	if target != prev {
		if prev != nil {
			s.Feed(s.event(KindMouseOut, x, y, prev, target, mods))
		}
		if root != s.entered && s.entered != nil {
			s.Feed(s.event(KindMouseLeave, x, y, s.entered, target, mods))
		}
		if target != nil {
			s.Feed(s.event(KindMouseOver, x, y, target, prev, mods))
		}
		if root != s.entered && root != nil {
			s.Feed(s.event(KindMouseEnter, x, y, root, prev, mods))
		}
		s.hover = target
		s.entered = root
	}
	if !inside && s.inside {
		s.inside = false
		s.Feed(s.event(KindMouseLeave, x, y, s.container, nil, mods))
	}
}

// Pointer reports a mouse event at client (x, y). kind must be
// KindMouseDown, KindMouseMove or KindMouseUp.
func (s *Surface) Pointer(kind EventKind, x, y float64, button MouseButton, mods KeyModifiers) {
	inside := s.canvas.ContainsClient(x, y)
	target := s.hitAt(x, y)
	s.track(target, inside, x, y, mods)

	e := s.event(kind, x, y, target, nil, mods)
	e.Button = button
	s.Feed(e)

	switch kind {
	case KindMouseDown:
		if button == MouseButtonRight && target != nil {
			cm := s.event(KindContextMenu, x, y, target, nil, mods)
			cm.Button = button
			s.Feed(cm)
		}
	case KindMouseUp:
		if button != MouseButtonLeft {
			return
		}
		now := s.Now()
		p := Vec2{x, y}
		if s.hasLastUp && now.Sub(s.lastUp) <= s.DblClickInterval &&
			math.Hypot(p.X-s.lastUpPos.X, p.Y-s.lastUpPos.Y) <= dblClickSlop && target != nil {
			s.hasLastUp = false
			dbl := s.event(KindDblClick, x, y, target, nil, mods)
			dbl.Button = button
			dbl.Detail = 2
			s.Feed(dbl)
			return
		}
		s.hasLastUp = true
		s.lastUp = now
		s.lastUpPos = p
	}
}

// Wheel reports a wheel event at client (x, y). delta is positive for
// scrolling up.
func (s *Surface) Wheel(x, y, delta float64, mods KeyModifiers) {
	e := s.event(KindMouseWheel, x, y, s.hitAt(x, y), nil, mods)
	e.WheelDelta = delta
	s.Feed(e)
}

// Touch reports a touch event with its changed touch points. kind must be
// one of the touch kinds.
func (s *Surface) Touch(kind EventKind, touches []Vec2, mods KeyModifiers) {
	e := &PointerEvent{Kind: kind, Touches: touches, Modifiers: mods}
	Normalize(e)
	e.Target = s.hitAt(e.ClientX, e.ClientY)
	s.Feed(e)
}
