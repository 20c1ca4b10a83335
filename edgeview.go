package arbor

const (
	edgeHitTolerance = 4
	labelCharWidth   = 7
	labelHeight      = 14
)

// EdgeView renders an edge as a straight line between its terminals with an
// optional label at the midpoint.
type EdgeView struct {
	BaseView

	line  *Element
	label *Element
}

// NewEdgeView is the ViewFactory of edges.
func NewEdgeView(g *Graph, c *Cell) CellView {
	p := g.Prefix()
	root := NewElement("g", ElementGroup)
	root.AddClass(p + "-cell " + p + "-edge")

	v := &EdgeView{}
	v.init(g, c, root, v)

	v.line = NewElement("polyline", ElementPolyline)
	v.line.AddClass("line")
	root.AddChild(v.line)

	v.label = NewElement("text", ElementText)
	v.label.AddClass("label")
	root.AddChild(v.label)

	v.Update()
	return v
}

// Line returns the line element.
func (v *EdgeView) Line() *Element { return v.line }

// Label returns the label element.
func (v *EdgeView) Label() *Element { return v.label }

// Update re-syncs the line and label with the edge terminals.
func (v *EdgeView) Update() {
	c := v.cell
	c.refreshEdgeBounds()
	a, b := c.SourceAnchor(), c.TargetAnchor()
	v.line.Points = []Vec2{a, b}
	v.line.HitShape = HitSegment{A: a, B: b, Tolerance: edgeHitTolerance}
	style := c.Style
	if style.Stroke == "" {
		style.Stroke = "#333333"
	}
	if style.StrokeWidth == 0 {
		style.StrokeWidth = 1
	}
	v.line.Style = style

	v.label.Text = c.Label
	if c.Label == "" {
		v.label.Bounds = Rect{}
		return
	}
	w := float64(len(c.Label)) * labelCharWidth
	mid := Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
	v.label.Bounds = Rect{X: mid.X - w/2, Y: mid.Y - labelHeight/2, Width: w, Height: labelHeight}
}
