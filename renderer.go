package arbor

import "fmt"

// Renderer owns the views of a graph's cells. It creates them through the
// shape registry, parents them in the stage layer and resolves elements
// back to views for the router.
type Renderer struct {
	graph *Graph
	stage *Element
	views map[string]CellView
}

// NewRenderer creates a renderer drawing into g's stage layer.
func NewRenderer(g *Graph) *Renderer {
	return &Renderer{
		graph: g,
		stage: g.Surface().Layer("stage"),
		views: make(map[string]CellView),
	}
}

// Render creates and attaches the view of c. Rendering a cell twice returns
// the existing view.
func (r *Renderer) Render(c *Cell) (CellView, error) {
	if v, ok := r.views[c.ID]; ok {
		return v, nil
	}
	factory, err := r.graph.Shapes().Get(c.Shape)
	if err != nil {
		return nil, fmt.Errorf("render cell %s: %w", c.ID, err)
	}
	v := factory(r.graph, c)
	r.views[c.ID] = v
	r.stage.AddChild(v.Element())
	return v, nil
}

// Remove disposes the view of c, if any.
func (r *Renderer) Remove(c *Cell) {
	v, ok := r.views[c.ID]
	if !ok {
		return
	}
	delete(r.views, c.ID)
	v.Dispose()
}

// FindView returns the view owning el: the view of the nearest element
// carrying a cell id. It implements ViewFinder.
func (r *Renderer) FindView(el *Element) CellView {
	if el == nil {
		return nil
	}
	holder := el.Closest(func(e *Element) bool {
		_, ok := e.Attr(cellIDAttr)
		return ok
	})
	if holder == nil {
		return nil
	}
	id, _ := holder.Attr(cellIDAttr)
	return r.views[id]
}

// FindViewByCell returns the view of c, or nil.
func (r *Renderer) FindViewByCell(c *Cell) CellView {
	if c == nil {
		return nil
	}
	return r.views[c.ID]
}

// NodeAt returns the topmost node whose bounds contain the local point p,
// skipping skip. Returns nil if there is none.
func (r *Renderer) NodeAt(p Vec2, skip *Cell) *Cell {
	cells := r.graph.Model().Cells()
	for i := len(cells) - 1; i >= 0; i-- {
		c := cells[i]
		if c == skip || !c.IsNode() {
			continue
		}
		if c.Bounds.Contains(p.X, p.Y) {
			return c
		}
	}
	return nil
}

// Len returns the number of live views.
func (r *Renderer) Len() int { return len(r.views) }
