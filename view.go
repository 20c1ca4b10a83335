package arbor

// CellView is the rendered, interactive counterpart of a Cell. The router
// calls these methods with normalized events and grid-snapped local points.
type CellView interface {
	Cell() *Cell
	Element() *Element
	// Update re-syncs the element tree with the cell.
	Update()
	Dispose()

	OnClick(e *PointerEvent, x, y float64)
	OnDblClick(e *PointerEvent, x, y float64)
	OnContextMenu(e *PointerEvent, x, y float64)
	OnMouseDown(e *PointerEvent, x, y float64)
	OnMouseMove(e *PointerEvent, x, y float64)
	OnMouseUp(e *PointerEvent, x, y float64)
	OnMouseOver(e *PointerEvent)
	OnMouseOut(e *PointerEvent)
	OnMouseEnter(e *PointerEvent)
	OnMouseLeave(e *PointerEvent)
	OnMouseWheel(e *PointerEvent, x, y float64, delta int)
	OnCustomEvent(e *PointerEvent, name string, x, y float64)
	OnMagnetMouseDown(e *PointerEvent, magnet *Element, x, y float64)
	OnMagnetDblClick(e *PointerEvent, magnet *Element, x, y float64)
	OnMagnetContextMenu(e *PointerEvent, magnet *Element, x, y float64)
	OnLabelMouseDown(e *PointerEvent, x, y float64)
}

// ViewFactory creates the view of a cell. Factories are registered by shape
// name in the graph's shape registry.
type ViewFactory func(g *Graph, c *Cell) CellView

// cellIDAttr links an element (and its subtree) back to its cell.
const cellIDAttr = "data-cell-id"

// BaseView implements every CellView handler by emitting the matching
// notification: "cell:<kind>" followed by "node:<kind>" or "edge:<kind>".
// Concrete views embed it and override the handlers they act on.
type BaseView struct {
	graph *Graph
	cell  *Cell
	el    *Element
	self  CellView
}

func (v *BaseView) init(g *Graph, c *Cell, el *Element, self CellView) {
	v.graph = g
	v.cell = c
	v.el = el
	v.self = self
	el.SetAttr(cellIDAttr, c.ID)
}

// Cell returns the view's cell.
func (v *BaseView) Cell() *Cell { return v.cell }

// Element returns the view's root element.
func (v *BaseView) Element() *Element { return v.el }

// Graph returns the owning graph.
func (v *BaseView) Graph() *Graph { return v.graph }

// Update is a no-op for views without geometry.
func (v *BaseView) Update() {}

// Dispose removes the view's element tree.
func (v *BaseView) Dispose() {
	v.el.Dispose()
}

func (v *BaseView) notify(kind string, args EventArgs) {
	args.View = v.self
	args.Cell = v.cell
	v.graph.Trigger("cell:"+kind, args)
	if v.cell.IsEdge() {
		v.graph.Trigger("edge:"+kind, args)
	} else {
		v.graph.Trigger("node:"+kind, args)
	}
}

func (v *BaseView) OnClick(e *PointerEvent, x, y float64) {
	v.notify("click", EventArgs{E: e, X: x, Y: y})
}

func (v *BaseView) OnDblClick(e *PointerEvent, x, y float64) {
	v.notify("dblclick", EventArgs{E: e, X: x, Y: y})
}

func (v *BaseView) OnContextMenu(e *PointerEvent, x, y float64) {
	v.notify("contextmenu", EventArgs{E: e, X: x, Y: y})
}

func (v *BaseView) OnMouseDown(e *PointerEvent, x, y float64) {
	v.notify("mousedown", EventArgs{E: e, X: x, Y: y})
}

func (v *BaseView) OnMouseMove(e *PointerEvent, x, y float64) {
	v.notify("mousemove", EventArgs{E: e, X: x, Y: y})
}

func (v *BaseView) OnMouseUp(e *PointerEvent, x, y float64) {
	v.notify("mouseup", EventArgs{E: e, X: x, Y: y})
}

func (v *BaseView) OnMouseOver(e *PointerEvent) {
	v.notify("mouseover", EventArgs{E: e})
}

func (v *BaseView) OnMouseOut(e *PointerEvent) {
	v.notify("mouseout", EventArgs{E: e})
}

func (v *BaseView) OnMouseEnter(e *PointerEvent) {
	v.notify("mouseenter", EventArgs{E: e})
}

func (v *BaseView) OnMouseLeave(e *PointerEvent) {
	v.notify("mouseleave", EventArgs{E: e})
}

func (v *BaseView) OnMouseWheel(e *PointerEvent, x, y float64, delta int) {
	v.notify("mousewheel", EventArgs{E: e, X: x, Y: y, Delta: delta})
}

// OnCustomEvent emits the event under its own name and as "cell:customevent".
func (v *BaseView) OnCustomEvent(e *PointerEvent, name string, x, y float64) {
	args := EventArgs{E: e, X: x, Y: y, View: v.self, Cell: v.cell, Name: name}
	v.graph.Trigger(name, args)
	v.graph.Trigger("cell:customevent", args)
}

func (v *BaseView) OnMagnetMouseDown(e *PointerEvent, magnet *Element, x, y float64) {
	v.notify("magnet:mousedown", EventArgs{E: e, X: x, Y: y, Magnet: magnet})
}

func (v *BaseView) OnMagnetDblClick(e *PointerEvent, magnet *Element, x, y float64) {
	v.notify("magnet:dblclick", EventArgs{E: e, X: x, Y: y, Magnet: magnet})
}

func (v *BaseView) OnMagnetContextMenu(e *PointerEvent, magnet *Element, x, y float64) {
	v.notify("magnet:contextmenu", EventArgs{E: e, X: x, Y: y, Magnet: magnet})
}

func (v *BaseView) OnLabelMouseDown(e *PointerEvent, x, y float64) {
	v.notify("label:mousedown", EventArgs{E: e, X: x, Y: y})
}
