package arbor

import (
	"io"

	"github.com/charmbracelet/log"
)

// ViewFinder resolves the cell view that owns an element, or nil for
// elements outside any cell (and for nil).
type ViewFinder interface {
	FindView(el *Element) CellView
}

// GridSnapper converts device coordinates to a grid-snapped local point.
type GridSnapper interface {
	SnapToGrid(clientX, clientY float64) Vec2
}

// GuardFunc returns true to swallow an event before the router looks at it.
type GuardFunc func(e *PointerEvent, view CellView) bool

// RouterConfig wires a Router to its collaborators.
type RouterConfig struct {
	Surface  *Surface
	Finder   ViewFinder
	Snapper  GridSnapper
	Notifier Notifier
	Logger   *log.Logger

	// ClickThreshold is the largest move count still counted as a click.
	ClickThreshold int
	// MoveThreshold is the move count at or below which move events are
	// dropped as jitter.
	MoveThreshold int
	// PreventDefaultBlankAction cancels the default action of presses on
	// the blank canvas.
	PreventDefaultBlankAction bool
	// PreventContextMenu cancels the platform context menu.
	PreventContextMenu bool
	// Guard is an optional extra guard predicate.
	Guard GuardFunc
	// ClassPrefix prefixes the cell, edge and tools class names.
	ClassPrefix string
}

// Router translates raw surface events into graph-level semantic events:
// it guards, normalizes, localizes and resolves each event, and either
// calls the matching CellView method or emits a blank notification. It owns
// the gesture session spanning mouse-down to mouse-up.
//
// A Router is not safe for concurrent use.
type Router struct {
	cfg      RouterConfig
	surface  *Surface
	finder   ViewFinder
	snapper  GridSnapper
	notifier Notifier
	log      *log.Logger

	events    DispatchTable
	docEvents DispatchTable
	session   *GestureSession
}

// NewRouter creates a router and delegates its surface events.
func NewRouter(cfg RouterConfig) *Router {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.ClassPrefix == "" {
		cfg.ClassPrefix = defaultClassPrefix
	}
	r := &Router{
		cfg:      cfg,
		surface:  cfg.Surface,
		finder:   cfg.Finder,
		snapper:  cfg.Snapper,
		notifier: cfg.Notifier,
		log:      cfg.Logger,
	}
	r.bindEvents()
	r.DelegateEvents()
	return r
}

func (r *Router) bindEvents() {
	p := r.cfg.ClassPrefix
	cell := WithClass(p + "-cell")
	tools := WithClass(p + "-tools")
	edge := WithClass(p + "-edge")
	magnet := Within(cell, WithAttr("magnet"))

	t := &r.events
	t.On(KindDblClick, r.OnDblClick)
	t.On(KindContextMenu, r.OnContextMenu)
	t.On(KindTouchStart, r.OnMouseDown)
	t.On(KindMouseDown, r.OnMouseDown)
	t.On(KindMouseOver, r.OnMouseOver)
	t.On(KindMouseOut, r.OnMouseOut)
	t.On(KindMouseEnter, r.OnMouseEnter)
	t.On(KindMouseLeave, r.OnMouseLeave)
	t.On(KindMouseWheel, r.OnMouseWheel)
	t.OnSelector(KindMouseEnter, tools, r.OnMouseEnter)
	t.OnSelector(KindMouseLeave, tools, r.OnMouseLeave)
	t.OnSelector(KindMouseEnter, cell, r.OnMouseEnter)
	t.OnSelector(KindMouseLeave, cell, r.OnMouseLeave)
	t.OnSelector(KindMouseDown, Within(cell, WithAttr("event")), r.OnCustomEvent)
	t.OnSelector(KindTouchStart, Within(cell, WithAttr("event")), r.OnCustomEvent)
	t.OnSelector(KindDblClick, magnet, r.OnMagnetDblClick)
	t.OnSelector(KindContextMenu, magnet, r.OnMagnetContextMenu)
	t.OnSelector(KindMouseDown, magnet, r.OnMagnetMouseDown)
	t.OnSelector(KindTouchStart, magnet, r.OnMagnetMouseDown)
	t.OnSelector(KindDragStart, Within(cell, WithTag("image")), r.OnImageDragStart)
	t.OnSelector(KindMouseDown, Within(edge, WithClass("label")), r.OnLabelMouseDown)
	t.OnSelector(KindTouchStart, Within(edge, WithClass("label")), r.OnLabelMouseDown)

	d := &r.docEvents
	d.On(KindMouseMove, r.OnMouseMove)
	d.On(KindTouchMove, r.OnMouseMove)
	d.On(KindMouseUp, r.OnMouseUp)
	d.On(KindTouchEnd, r.OnMouseUp)
	d.On(KindTouchCancel, r.OnMouseUp)
}

// DelegateEvents attaches the surface-delegated bindings.
func (r *Router) DelegateEvents() {
	r.surface.listen(&r.events)
}

// UndelegateEvents detaches the surface-delegated bindings.
func (r *Router) UndelegateEvents() {
	r.surface.unlisten()
}

// DelegateDocumentEvents attaches the document-level move/up bindings for
// session, replacing any previously attached ones.
func (r *Router) DelegateDocumentEvents(session *GestureSession) {
	r.UndelegateDocumentEvents()
	r.session = session
	r.surface.listenDocument(&r.docEvents, session)
}

// UndelegateDocumentEvents detaches the document-level bindings.
func (r *Router) UndelegateDocumentEvents() {
	r.surface.unlistenDocument()
}

// Session returns the active gesture session, or nil between gestures.
func (r *Router) Session() *GestureSession {
	return r.session
}

// Guard reports whether e must be swallowed. It returns true for right
// presses (handled as contextmenu), when the configured guard or the event's
// explicit Guarded flag says so, and for targets that are neither a cell
// view nor inside the surface.
func (r *Router) Guard(e *PointerEvent, view CellView) bool {
	if e.Kind == KindMouseDown && e.Button == MouseButtonRight {
		return true
	}
	if r.cfg.Guard != nil && r.cfg.Guard(e, view) {
		return true
	}
	if e.Guarded != nil {
		return *e.Guarded
	}
	if view != nil && view.Cell() != nil {
		return false
	}
	svg := r.surface.SVG()
	if e.Target != nil && (e.Target == svg || e.Target == r.surface.Container() || svg.Contains(e.Target)) {
		return false
	}
	return true
}

func (r *Router) findView(el *Element) CellView {
	if el == nil || r.finder == nil {
		return nil
	}
	return r.finder.FindView(el)
}

func (r *Router) localPoint(e *PointerEvent) Vec2 {
	return r.snapper.SnapToGrid(e.ClientX, e.ClientY)
}

func (r *Router) trigger(name string, args EventArgs) {
	if r.notifier != nil {
		r.notifier.Trigger(name, args)
	}
}

// OnDblClick routes a double click.
func (r *Router) OnDblClick(e *PointerEvent) {
	e.PreventDefault()
	Normalize(e)
	view := r.findView(e.Target)
	if r.Guard(e, view) {
		return
	}
	p := r.localPoint(e)
	if view != nil {
		view.OnDblClick(e, p.X, p.Y)
	} else {
		r.trigger("blank:dblclick", EventArgs{E: e, X: p.X, Y: p.Y})
	}
}

// OnClick routes a click. It is ignored when the gesture moved more than
// ClickThreshold times.
func (r *Router) OnClick(e *PointerEvent) {
	if movedCount(e) > r.cfg.ClickThreshold {
		return
	}
	Normalize(e)
	view := r.findView(e.Target)
	if r.Guard(e, view) {
		return
	}
	p := r.localPoint(e)
	if view != nil {
		view.OnClick(e, p.X, p.Y)
	} else {
		r.trigger("blank:click", EventArgs{E: e, X: p.X, Y: p.Y})
	}
}

// OnContextMenu routes a context menu request.
func (r *Router) OnContextMenu(e *PointerEvent) {
	if r.cfg.PreventContextMenu {
		e.PreventDefault()
	}
	Normalize(e)
	view := r.findView(e.Target)
	if r.Guard(e, view) {
		return
	}
	p := r.localPoint(e)
	if view != nil {
		view.OnContextMenu(e, p.X, p.Y)
	} else {
		r.trigger("blank:contextmenu", EventArgs{E: e, X: p.X, Y: p.Y})
	}
}

// beginSession attaches a fresh gesture session for view (nil = blank) to
// e, before any handler sees the press.
func (r *Router) beginSession(e *PointerEvent, view CellView) {
	e.Session = &GestureSession{View: view}
}

// delegateDragEvents switches listening from the surface to the document
// for the session carried by e.
func (r *Router) delegateDragEvents(e *PointerEvent) {
	if e.Session == nil {
		e.Session = &GestureSession{}
	}
	r.DelegateDocumentEvents(e.Session)
	r.UndelegateEvents()
	r.log.Debug("gesture opened", "kind", e.Kind, "blank", e.Session.View == nil)
}

// OnMouseDown routes a press (mouse or touch) and opens a gesture session.
func (r *Router) OnMouseDown(e *PointerEvent) {
	Normalize(e)
	view := r.findView(e.Target)
	if r.Guard(e, view) {
		r.log.Debug("press guarded", "kind", e.Kind, "button", e.Button)
		return
	}
	p := r.localPoint(e)
	r.beginSession(e, view)
	if view != nil {
		e.PreventDefault()
		view.OnMouseDown(e, p.X, p.Y)
	} else {
		if r.cfg.PreventDefaultBlankAction {
			e.PreventDefault()
		}
		r.trigger("blank:mousedown", EventArgs{E: e, X: p.X, Y: p.Y})
	}
	r.delegateDragEvents(e)
}

// OnMouseMove routes a document-level move of the active gesture. The first
// MoveThreshold moves are dropped.
func (r *Router) OnMouseMove(e *PointerEvent) {
	s := e.Session
	if s == nil {
		s = &GestureSession{}
		e.Session = s
	}
	s.MovedCount++
	if s.MovedCount <= r.cfg.MoveThreshold {
		return
	}
	Normalize(e)
	p := r.localPoint(e)
	if s.View != nil {
		s.View.OnMouseMove(e, p.X, p.Y)
	} else {
		r.trigger("blank:mousemove", EventArgs{E: e, X: p.X, Y: p.Y})
	}
}

// OnMouseUp ends the active gesture. Unless the view stopped propagation,
// a click derived from e is dispatched before surface listening resumes.
func (r *Router) OnMouseUp(e *PointerEvent) {
	r.UndelegateDocumentEvents()

	Normalize(e)
	p := r.localPoint(e)
	s := e.Session
	if s == nil {
		s = &GestureSession{}
		e.Session = s
	}
	if s.View != nil {
		s.View.OnMouseUp(e, p.X, p.Y)
	} else {
		r.trigger("blank:mouseup", EventArgs{E: e, X: p.X, Y: p.Y})
	}

	if !e.IsPropagationStopped() {
		r.OnClick(e.derive(KindClick))
	}
	e.StopImmediatePropagation()

	r.session = nil
	r.log.Debug("gesture closed", "moves", s.MovedCount)
	r.DelegateEvents()
}

// OnMouseOver routes a pointer-over. Overs on the container itself are
// ignored so the surface border does not produce blank events.
func (r *Router) OnMouseOver(e *PointerEvent) {
	Normalize(e)
	view := r.findView(e.Target)
	if r.Guard(e, view) {
		return
	}
	if view != nil {
		view.OnMouseOver(e)
	} else {
		if e.Target == r.surface.Container() {
			return
		}
		r.trigger("blank:mouseover", EventArgs{E: e})
	}
}

// OnMouseOut routes a pointer-out, ignoring the container itself.
func (r *Router) OnMouseOut(e *PointerEvent) {
	Normalize(e)
	view := r.findView(e.Target)
	if r.Guard(e, view) {
		return
	}
	if view != nil {
		view.OnMouseOut(e)
	} else {
		if e.Target == r.surface.Container() {
			return
		}
		r.trigger("blank:mouseout", EventArgs{E: e})
	}
}

// OnMouseEnter routes an enter. Moving between a view and its own tool
// overlay does not re-enter the view.
func (r *Router) OnMouseEnter(e *PointerEvent) {
	Normalize(e)
	view := r.findView(e.Target)
	if r.Guard(e, view) {
		return
	}
	related := r.findView(e.RelatedTarget)
	if view != nil {
		if related == view {
			return
		}
		view.OnMouseEnter(e)
	} else {
		if related != nil {
			return
		}
		r.trigger("graph:mouseenter", EventArgs{E: e})
	}
}

// OnMouseLeave routes a leave, with the same tool overlay suppression as
// OnMouseEnter.
func (r *Router) OnMouseLeave(e *PointerEvent) {
	Normalize(e)
	view := r.findView(e.Target)
	if r.Guard(e, view) {
		return
	}
	related := r.findView(e.RelatedTarget)
	if view != nil {
		if related == view {
			return
		}
		view.OnMouseLeave(e)
	} else {
		if related != nil {
			return
		}
		r.trigger("graph:mouseleave", EventArgs{E: e})
	}
}

// OnMouseWheel routes a wheel event with a delta in {-1, 0, +1}.
func (r *Router) OnMouseWheel(e *PointerEvent) {
	Normalize(e)
	view := r.findView(e.Target)
	if r.Guard(e, view) {
		return
	}
	p := r.localPoint(e)
	delta := wheelDelta(e)
	if view != nil {
		view.OnMouseWheel(e, p.X, p.Y, delta)
	} else {
		r.trigger("blank:mousewheel", EventArgs{E: e, X: p.X, Y: p.Y, Delta: delta})
	}
}

// OnCustomEvent routes a press on an element carrying an "event" attribute
// to the owning view under that event name. The press keeps propagating, so
// the view's mouse-down and any drag still follow.
func (r *Router) OnCustomEvent(e *PointerEvent) {
	node := e.CurrentTarget
	if node == nil {
		return
	}
	name, _ := node.Attr("event")
	if name == "" {
		return
	}
	view := r.findView(node)
	if view == nil {
		return
	}
	Normalize(e)
	if r.Guard(e, view) {
		return
	}
	p := r.localPoint(e)
	view.OnCustomEvent(e, name, p.X, p.Y)
}

func isPress(e *PointerEvent) bool {
	return e.Kind == KindMouseDown || e.Kind == KindTouchStart
}

// prepare opens the gesture session for presses claimed by view.
func (r *Router) prepare(e *PointerEvent, view CellView) {
	if isPress(e) {
		r.beginSession(e, view)
	}
}

// claim stops e from reaching the generic cell handlers and, for presses,
// starts listening for the rest of the gesture.
func (r *Router) claim(e *PointerEvent) {
	e.StopPropagation()
	if isPress(e) {
		e.PreventDefault()
		r.delegateDragEvents(e)
	}
}

// isMagnet reports whether the magnet attribute value enables the element.
func isMagnet(el *Element) bool {
	v, _ := el.Attr("magnet")
	return v != "" && v != "false"
}

func (r *Router) handleMagnetEvent(e *PointerEvent, handler func(view CellView, magnet *Element, x, y float64)) {
	magnet := e.CurrentTarget
	if magnet == nil || !isMagnet(magnet) {
		return
	}
	view := r.findView(magnet)
	if view == nil {
		return
	}
	Normalize(e)
	if r.Guard(e, view) {
		return
	}
	p := r.localPoint(e)
	r.prepare(e, view)
	handler(view, magnet, p.X, p.Y)
	r.claim(e)
}

// OnMagnetMouseDown routes a press on a magnet.
func (r *Router) OnMagnetMouseDown(e *PointerEvent) {
	r.handleMagnetEvent(e, func(view CellView, magnet *Element, x, y float64) {
		view.OnMagnetMouseDown(e, magnet, x, y)
	})
}

// OnMagnetDblClick routes a double click on a magnet.
func (r *Router) OnMagnetDblClick(e *PointerEvent) {
	r.handleMagnetEvent(e, func(view CellView, magnet *Element, x, y float64) {
		view.OnMagnetDblClick(e, magnet, x, y)
	})
}

// OnMagnetContextMenu routes a context menu request on a magnet.
func (r *Router) OnMagnetContextMenu(e *PointerEvent) {
	if r.cfg.PreventContextMenu {
		e.PreventDefault()
	}
	r.handleMagnetEvent(e, func(view CellView, magnet *Element, x, y float64) {
		view.OnMagnetContextMenu(e, magnet, x, y)
	})
}

// OnLabelMouseDown routes a press on an edge label.
func (r *Router) OnLabelMouseDown(e *PointerEvent) {
	label := e.CurrentTarget
	if label == nil {
		return
	}
	view := r.findView(label)
	if view == nil {
		return
	}
	Normalize(e)
	if r.Guard(e, view) {
		return
	}
	p := r.localPoint(e)
	r.prepare(e, view)
	view.OnLabelMouseDown(e, p.X, p.Y)
	r.claim(e)
}

// OnImageDragStart cancels native dragging of images inside cells.
func (r *Router) OnImageDragStart(e *PointerEvent) {
	e.PreventDefault()
	e.StopPropagation()
}
