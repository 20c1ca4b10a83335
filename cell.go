package arbor

import (
	"math"

	"github.com/google/uuid"
)

// Cell is a node or an edge of the graph model.
type Cell struct {
	ID    string
	Shape string
	// Bounds is the node rectangle in local coordinates. For edges it is
	// derived from the terminals by Model.
	Bounds Rect
	Label  string
	Style  Style
	// HTML names the component rendered by html-shaped nodes.
	HTML string

	// Edge terminals. A nil Source or Target uses the matching point.
	Source, Target           *Cell
	SourcePoint, TargetPoint Vec2

	edge bool
}

// NewNode creates a node cell with a fresh ID.
func NewNode(shape string, bounds Rect) *Cell {
	return &Cell{ID: uuid.NewString(), Shape: shape, Bounds: bounds}
}

// NewEdge creates an edge cell between source and target. Either may be
// nil, in which case the edge is dangling at the corresponding point.
func NewEdge(source, target *Cell) *Cell {
	c := &Cell{ID: uuid.NewString(), Shape: "edge", Source: source, Target: target, edge: true}
	c.refreshEdgeBounds()
	return c
}

// IsEdge reports whether the cell is an edge.
func (c *Cell) IsEdge() bool { return c.edge }

// IsNode reports whether the cell is a node.
func (c *Cell) IsNode() bool { return !c.edge }

// SetPosition moves a node's top-left corner to (x, y).
func (c *Cell) SetPosition(x, y float64) {
	c.Bounds.X = x
	c.Bounds.Y = y
}

// SourceAnchor returns the edge start point: the source center or SourcePoint.
func (c *Cell) SourceAnchor() Vec2 {
	if c.Source != nil {
		return Vec2{c.Source.Bounds.CenterX(), c.Source.Bounds.CenterY()}
	}
	return c.SourcePoint
}

// TargetAnchor returns the edge end point: the target center or TargetPoint.
func (c *Cell) TargetAnchor() Vec2 {
	if c.Target != nil {
		return Vec2{c.Target.Bounds.CenterX(), c.Target.Bounds.CenterY()}
	}
	return c.TargetPoint
}

func (c *Cell) refreshEdgeBounds() {
	a, b := c.SourceAnchor(), c.TargetAnchor()
	minX, minY := a.X, a.Y
	if b.X < minX {
		minX = b.X
	}
	if b.Y < minY {
		minY = b.Y
	}
	c.Bounds = Rect{X: minX, Y: minY, Width: math.Abs(a.X - b.X), Height: math.Abs(a.Y - b.Y)}
}

// Model is the ordered cell collection of a graph. Order is painter order.
type Model struct {
	cells []*Cell
	byID  map[string]*Cell
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{byID: make(map[string]*Cell)}
}

// Add appends c. Adding a cell whose ID is already present is a no-op.
func (m *Model) Add(c *Cell) {
	if _, ok := m.byID[c.ID]; ok {
		return
	}
	m.cells = append(m.cells, c)
	m.byID[c.ID] = c
}

// Remove deletes c and returns it together with every edge connected to
// it, which are removed as well.
func (m *Model) Remove(c *Cell) []*Cell {
	if _, ok := m.byID[c.ID]; !ok {
		return nil
	}
	removed := []*Cell{c}
	if c.IsNode() {
		for _, e := range m.cells {
			if e.IsEdge() && (e.Source == c || e.Target == c) {
				removed = append(removed, e)
			}
		}
	}
	kept := m.cells[:0]
	for _, have := range m.cells {
		drop := false
		for _, r := range removed {
			if have == r {
				drop = true
				break
			}
		}
		if drop {
			delete(m.byID, have.ID)
			continue
		}
		kept = append(kept, have)
	}
	for i := len(kept); i < len(m.cells); i++ {
		m.cells[i] = nil
	}
	m.cells = kept
	return removed
}

// Get returns the cell with the given ID, or nil.
func (m *Model) Get(id string) *Cell {
	return m.byID[id]
}

// Cells returns all cells in painter order. The returned slice MUST NOT be mutated.
func (m *Model) Cells() []*Cell {
	return m.cells
}

// Nodes returns the node cells in painter order.
func (m *Model) Nodes() []*Cell {
	var out []*Cell
	for _, c := range m.cells {
		if c.IsNode() {
			out = append(out, c)
		}
	}
	return out
}

// ConnectedEdges returns edges whose source or target is c.
func (m *Model) ConnectedEdges(c *Cell) []*Cell {
	var out []*Cell
	for _, e := range m.cells {
		if e.IsEdge() && (e.Source == c || e.Target == c) {
			out = append(out, e)
		}
	}
	return out
}

// Bounds returns the union of all node bounds in local coordinates.
func (m *Model) Bounds() Rect {
	var r Rect
	for _, c := range m.cells {
		if c.IsNode() {
			r = r.Union(c.Bounds)
		}
	}
	return r
}
