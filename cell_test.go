package arbor

import "testing"

func TestNewCells(t *testing.T) {
	n := NewNode("rect", Rect{X: 1, Y: 2, Width: 3, Height: 4})
	if !n.IsNode() || n.IsEdge() || n.ID == "" {
		t.Errorf("node = %+v", n)
	}
	if m := NewNode("rect", Rect{}); m.ID == n.ID {
		t.Error("IDs not unique")
	}
	e := NewEdge(nil, nil)
	if !e.IsEdge() || e.Shape != "edge" {
		t.Errorf("edge = %+v", e)
	}
}

func TestEdgeAnchors(t *testing.T) {
	src := NewNode("rect", Rect{X: 0, Y: 0, Width: 20, Height: 20})
	e := NewEdge(src, nil)
	e.TargetPoint = Vec2{50, -30}
	if e.SourceAnchor() != (Vec2{10, 10}) || e.TargetAnchor() != (Vec2{50, -30}) {
		t.Errorf("anchors = %v %v", e.SourceAnchor(), e.TargetAnchor())
	}
	e.refreshEdgeBounds()
	if e.Bounds != (Rect{X: 10, Y: -30, Width: 40, Height: 40}) {
		t.Errorf("bounds = %+v", e.Bounds)
	}
}

func TestModel(t *testing.T) {
	m := NewModel()
	a := NewNode("rect", Rect{X: 0, Y: 0, Width: 10, Height: 10})
	b := NewNode("rect", Rect{X: 50, Y: 50, Width: 10, Height: 10})
	c := NewNode("rect", Rect{X: -20, Y: 5, Width: 10, Height: 10})
	ab := NewEdge(a, b)
	bc := NewEdge(b, c)
	for _, cell := range []*Cell{a, b, c, ab, bc} {
		m.Add(cell)
	}
	m.Add(a)
	if len(m.Cells()) != 5 || len(m.Nodes()) != 3 {
		t.Fatalf("cells = %d, nodes = %d", len(m.Cells()), len(m.Nodes()))
	}
	if m.Get(b.ID) != b || m.Get("missing") != nil {
		t.Error("Get")
	}
	if got := m.ConnectedEdges(b); len(got) != 2 {
		t.Errorf("edges of b = %d, want 2", len(got))
	}
	if got := m.Bounds(); got != (Rect{X: -20, Y: 0, Width: 80, Height: 60}) {
		t.Errorf("Bounds = %+v", got)
	}

	removed := m.Remove(b)
	if len(removed) != 3 || removed[0] != b {
		t.Errorf("removed = %d cells", len(removed))
	}
	if len(m.Cells()) != 2 || m.Get(ab.ID) != nil {
		t.Errorf("cells after remove = %d", len(m.Cells()))
	}
	if m.Cells()[0] != a || m.Cells()[1] != c {
		t.Error("painter order not kept")
	}
	if m.Remove(b) != nil {
		t.Error("second Remove should return nil")
	}

	if got := m.Remove(NewEdge(a, c)); got != nil {
		t.Error("removing an absent edge")
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if r.Right() != 40 || r.Bottom() != 60 || r.CenterX() != 25 || r.CenterY() != 40 {
		t.Error("edges/centers")
	}
	if r.Translate(5, -5) != (Rect{X: 15, Y: 15, Width: 30, Height: 40}) {
		t.Error("Translate")
	}
	if !r.Intersects(Rect{X: 40, Y: 60, Width: 5, Height: 5}) || r.Intersects(Rect{X: 41, Y: 0, Width: 5, Height: 5}) {
		t.Error("Intersects")
	}
	if (Rect{}).Union(r) != r || r.Union(Rect{}) != r {
		t.Error("Union with empty")
	}
	if got := r.Union(Rect{X: 0, Y: 0, Width: 5, Height: 5}); got != (Rect{X: 0, Y: 0, Width: 40, Height: 60}) {
		t.Errorf("Union = %+v", got)
	}
	if (Vec2{1, 2}).Add(Vec2{3, 4}) != (Vec2{4, 6}) || (Vec2{1, 2}).Sub(Vec2{3, 4}) != (Vec2{-2, -2}) {
		t.Error("Vec2 ops")
	}
}
