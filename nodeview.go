package arbor

const (
	magnetRadius = 4
	toolsPadding = 4

	sessionNodeDrag = "arbor.node.drag"
	sessionNewEdge  = "arbor.node.edge"
)

// ringHit is the band between two nested rectangles.
type ringHit struct {
	outer, inner HitRect
}

func (r ringHit) Contains(x, y float64) bool {
	return r.outer.Contains(x, y) && !r.inner.Contains(x, y)
}

// nodeDrag is the drag state a NodeView keeps in the gesture session.
type nodeDrag struct {
	start  Vec2
	origin Rect
	guide  *Guide
	moved  bool
}

// NodeView renders a node as a body shape with a label and four magnets,
// and implements dragging (with alignment guides) and edge creation from
// magnets.
type NodeView struct {
	BaseView

	body    *Element
	label   *Element
	magnets [4]*Element
	tools   *Element
}

// magnetPorts names the magnets in the order top, right, bottom, left.
var magnetPorts = [4]string{"top", "right", "bottom", "left"}

// NewNodeView is the ViewFactory of rect, circle, ellipse, diamond and html
// nodes.
func NewNodeView(g *Graph, c *Cell) CellView {
	p := g.Prefix()
	root := NewElement("g", ElementGroup)
	root.AddClass(p + "-cell " + p + "-node")

	v := &NodeView{}
	v.init(g, c, root, v)

	switch c.Shape {
	case "circle", "ellipse":
		v.body = NewElement("ellipse", ElementEllipse)
	case "diamond":
		v.body = NewElement("polygon", ElementPolygon)
	case "html":
		v.body = NewElement("foreignObject", ElementHTML)
	default:
		v.body = NewElement("rect", ElementRect)
	}
	v.body.AddClass("body")
	root.AddChild(v.body)

	v.label = NewElement("text", ElementText)
	v.label.AddClass("label")
	v.label.PointerEvents = false
	root.AddChild(v.label)

	for i, port := range magnetPorts {
		m := NewElement("circle", ElementEllipse)
		m.AddClass("magnet")
		m.SetAttr("magnet", "true")
		m.SetAttr("port", port)
		root.AddChild(m)
		v.magnets[i] = m
	}

	v.Update()
	return v
}

// Body returns the body element.
func (v *NodeView) Body() *Element { return v.body }

// Magnet returns the magnet for port ("top", "right", "bottom", "left"),
// or nil.
func (v *NodeView) Magnet(port string) *Element {
	for i, p := range magnetPorts {
		if p == port {
			return v.magnets[i]
		}
	}
	return nil
}

// Update re-syncs geometry, style and content with the cell.
func (v *NodeView) Update() {
	c := v.cell
	b := c.Bounds
	if c.Shape == "circle" {
		d := b.Width
		if b.Height < d {
			d = b.Height
		}
		b.Width, b.Height = d, d
	}
	v.body.Bounds = b
	if v.body.Type == ElementPolygon {
		v.body.Points = []Vec2{
			{b.CenterX(), b.Y},
			{b.Right(), b.CenterY()},
			{b.CenterX(), b.Bottom()},
			{b.X, b.CenterY()},
		}
	}
	v.body.Style = nodeStyle(c.Style)
	if c.Shape == "html" && c.HTML != "" {
		if comp, err := v.graph.Components().Get(c.HTML); err == nil {
			v.body.Text = comp(c)
		} else {
			v.graph.Logger().Warn("html component", "cell", c.ID, "err", err)
		}
	}
	v.label.Bounds = b
	v.label.Text = c.Label

	centers := [4]Vec2{
		{b.CenterX(), b.Y},
		{b.Right(), b.CenterY()},
		{b.CenterX(), b.Bottom()},
		{b.X, b.CenterY()},
	}
	for i, m := range v.magnets {
		p := centers[i]
		m.Bounds = Rect{X: p.X - magnetRadius, Y: p.Y - magnetRadius, Width: 2 * magnetRadius, Height: 2 * magnetRadius}
		m.HitShape = HitCircle{CenterX: p.X, CenterY: p.Y, Radius: magnetRadius}
		m.Style = Style{Fill: "#ffffff", Stroke: "#5f95ff", StrokeWidth: 1}
	}
	if v.tools != nil {
		v.layoutTools(v.tools.Children()[0])
	}
}

// nodeStyle fills in the default body paint.
func nodeStyle(st Style) Style {
	if st.Fill == "" {
		st.Fill = "#ffffff"
	}
	if st.Stroke == "" {
		st.Stroke = "#5f95ff"
	}
	if st.StrokeWidth == 0 {
		st.StrokeWidth = 1
	}
	return st
}

// layoutTools sizes the outline around the node. Only the padding band is
// hittable, so the body and magnets stay reachable.
func (v *NodeView) layoutTools(outline *Element) {
	b := v.cell.Bounds
	outline.Bounds = Rect{
		X: b.X - toolsPadding, Y: b.Y - toolsPadding,
		Width: b.Width + 2*toolsPadding, Height: b.Height + 2*toolsPadding,
	}
	outline.HitShape = ringHit{outer: hitRect(outline.Bounds), inner: hitRect(b)}
}

// ShowTools draws the selection outline in the decorator layer. The outline
// belongs to this view, so moving the pointer onto it does not leave the
// node.
func (v *NodeView) ShowTools() {
	if v.tools != nil {
		return
	}
	p := v.graph.Prefix()
	v.tools = NewElement("g", ElementGroup)
	v.tools.AddClass(p + "-tools")
	v.tools.SetAttr(cellIDAttr, v.cell.ID)
	outline := NewElement("rect", ElementRect)
	outline.AddClass(p + "-tools-outline")
	outline.Style = Style{Stroke: "#1890ff", StrokeWidth: 1, Dashed: true}
	v.layoutTools(outline)
	v.tools.AddChild(outline)
	if layer := v.graph.Surface().Layer("decorator"); layer != nil {
		layer.AddChild(v.tools)
	}
}

// HideTools removes the selection outline.
func (v *NodeView) HideTools() {
	if v.tools == nil {
		return
	}
	v.tools.Dispose()
	v.tools = nil
}

// ToolsVisible reports whether the selection outline is shown.
func (v *NodeView) ToolsVisible() bool { return v.tools != nil }

// Dispose removes the view and its tools.
func (v *NodeView) Dispose() {
	v.HideTools()
	v.BaseView.Dispose()
}

func (v *NodeView) OnMouseEnter(e *PointerEvent) {
	v.ShowTools()
	v.BaseView.OnMouseEnter(e)
}

func (v *NodeView) OnMouseLeave(e *PointerEvent) {
	v.HideTools()
	v.BaseView.OnMouseLeave(e)
}

// OnMouseDown starts dragging the node.
func (v *NodeView) OnMouseDown(e *PointerEvent, x, y float64) {
	v.BaseView.OnMouseDown(e, x, y)
	if e.Session == nil {
		return
	}
	d := &nodeDrag{start: Vec2{x, y}, origin: v.cell.Bounds}
	if v.graph.Options().Guide.Enabled {
		d.guide = v.graph.NewGuide(v.graph.ViewStates(v.cell))
	}
	e.Session.Set(sessionNodeDrag, d)
}

// OnMouseMove drags the node, or the loose end of an edge being created.
func (v *NodeView) OnMouseMove(e *PointerEvent, x, y float64) {
	if e.Session != nil {
		if edge, ok := e.Session.Get(sessionNewEdge).(*Cell); ok {
			edge.TargetPoint = Vec2{x, y}
			v.graph.RefreshCell(edge)
			return
		}
		if d, ok := e.Session.Get(sessionNodeDrag).(*nodeDrag); ok {
			v.drag(d, x, y)
			v.notify("moving", EventArgs{E: e, X: x, Y: y})
			return
		}
	}
	v.BaseView.OnMouseMove(e, x, y)
}

func (v *NodeView) drag(d *nodeDrag, x, y float64) {
	canvas := v.graph.Canvas()
	s := canvas.Scale()
	delta := Vec2{(x - d.start.X) * s, (y - d.start.Y) * s}
	if d.guide != nil {
		delta = d.guide.Move(canvas.LocalToView(d.origin), delta, canvas.GridSize > 1)
	}
	v.cell.SetPosition(d.origin.X+delta.X/s, d.origin.Y+delta.Y/s)
	v.graph.RefreshCell(v.cell)
	d.moved = true
}

// OnMouseUp finishes a drag or an edge creation. A finished drag stops
// propagation so no click follows it.
func (v *NodeView) OnMouseUp(e *PointerEvent, x, y float64) {
	if e.Session != nil {
		if edge, ok := e.Session.Get(sessionNewEdge).(*Cell); ok {
			v.finishEdge(e, edge, x, y)
			return
		}
		if d, ok := e.Session.Get(sessionNodeDrag).(*nodeDrag); ok {
			if d.guide != nil {
				d.guide.Dispose()
			}
			v.BaseView.OnMouseUp(e, x, y)
			if d.moved {
				v.notify("moved", EventArgs{E: e, X: x, Y: y})
				e.StopPropagation()
			}
			return
		}
	}
	v.BaseView.OnMouseUp(e, x, y)
}

// OnMagnetMouseDown starts a new edge from this node, dangling at (x, y).
func (v *NodeView) OnMagnetMouseDown(e *PointerEvent, magnet *Element, x, y float64) {
	v.BaseView.OnMagnetMouseDown(e, magnet, x, y)
	if e.Session == nil {
		return
	}
	edge := NewEdge(v.cell, nil)
	edge.TargetPoint = Vec2{x, y}
	if _, err := v.graph.AddCell(edge); err != nil {
		v.graph.Logger().Warn("start edge", "node", v.cell.ID, "err", err)
		return
	}
	e.Session.Set(sessionNewEdge, edge)
}

func (v *NodeView) finishEdge(e *PointerEvent, edge *Cell, x, y float64) {
	e.StopPropagation()
	target := v.graph.Renderer().NodeAt(Vec2{x, y}, v.cell)
	if target == nil {
		v.graph.RemoveCell(edge)
		v.graph.Trigger("edge:cancelled", EventArgs{E: e, X: x, Y: y, Cell: edge})
		return
	}
	edge.Target = target
	v.graph.RefreshCell(edge)
	v.graph.Trigger("edge:connected", EventArgs{E: e, X: x, Y: y, Cell: edge, View: v.graph.Renderer().FindViewByCell(edge)})
}
