package arbor

import "math"

// Size is a width and height.
type Size struct {
	Width, Height float64
}

// PageSize returns the scaled page format.
func (g *Graph) PageSize() Size {
	p := g.opts.Page
	return Size{Width: p.Width * p.Scale, Height: p.Height * p.Scale}
}

// PageLayout returns the page grid covering the graph: X and Y are the
// index of the first page, Width and Height the page counts. An empty graph
// occupies the single page (0, 0, 1, 1).
func (g *Graph) PageLayout() Rect {
	size := g.PageSize()
	bounds := g.canvas.LocalToView(g.model.Bounds())
	if bounds.Width == 0 || bounds.Height == 0 || size.Width <= 0 || size.Height <= 0 {
		return Rect{0, 0, 1, 1}
	}
	s := g.canvas.Scale()
	t := g.canvas.Translate()
	x := math.Ceil(bounds.X/s - t.X)
	y := math.Ceil(bounds.Y/s - t.Y)
	w := math.Floor(bounds.Width / s)
	h := math.Floor(bounds.Height / s)

	x0 := math.Floor(x / size.Width)
	y0 := math.Floor(y / size.Height)
	return Rect{
		X:      x0,
		Y:      y0,
		Width:  math.Ceil((x+w)/size.Width) - x0,
		Height: math.Ceil((y+h)/size.Height) - y0,
	}
}

// PagePadding returns the scroll padding around the pages: the container
// size less a 32 pixel margin, in local units.
func (g *Graph) PagePadding() Vec2 {
	s := g.canvas.Scale()
	return Vec2{
		X: math.Max(0, jsRound((g.canvas.Width-32)/s)),
		Y: math.Max(0, jsRound((g.canvas.Height-32)/s)),
	}
}

// PreferredPageSize returns the total size of the page layout.
func (g *Graph) PreferredPageSize() Size {
	size := g.PageSize()
	pages := g.PageLayout()
	return Size{Width: pages.Width * size.Width, Height: pages.Height * size.Height}
}

// BackgroundPageBounds returns the page layout rectangle in view space.
func (g *Graph) BackgroundPageBounds() Rect {
	size := g.PageSize()
	pages := g.PageLayout()
	s := g.canvas.Scale()
	t := g.canvas.Translate()
	return Rect{
		X:      s * (t.X + pages.X*size.Width),
		Y:      s * (t.Y + pages.Y*size.Height),
		Width:  s * pages.Width * size.Width,
		Height: s * pages.Height * size.Height,
	}
}

// PageBreaks returns the horizontal and vertical page break lines inside
// the background page bounds, in view space. No breaks are returned when a
// page is smaller on screen than Page.MinBreakDistance.
func (g *Graph) PageBreaks() (horizontal, vertical [][2]Vec2) {
	s := g.canvas.Scale()
	p := g.opts.Page
	bg := g.BackgroundPageBounds()
	page := Size{Width: p.Width * p.Scale * s, Height: p.Height * p.Scale * s}
	if math.Min(page.Width, page.Height) <= p.MinBreakDistance {
		return nil, nil
	}

	hCount := int(math.Ceil(bg.Height/page.Height)) - 1
	vCount := int(math.Ceil(bg.Width/page.Width)) - 1
	for i := 0; i < hCount; i++ {
		y := jsRound(bg.Y+float64(i+1)*page.Height) - 1
		horizontal = append(horizontal, [2]Vec2{{jsRound(bg.X), y}, {jsRound(bg.Right()), y}})
	}
	for i := 0; i < vCount; i++ {
		x := jsRound(bg.X+float64(i+1)*page.Width) - 1
		vertical = append(vertical, [2]Vec2{{x, jsRound(bg.Y)}, {x, jsRound(bg.Bottom())}})
	}
	return horizontal, vertical
}

func (g *Graph) viewToLocal(p Vec2) Vec2 {
	return g.canvas.ViewPointToLocal(p.X, p.Y)
}

// UpdatePageBreaks redraws the page break lines in the background layer,
// or removes them when pages are hidden. Element points are local.
func (g *Graph) UpdatePageBreaks() {
	var lines [][2]Vec2
	if g.opts.Page.Visible {
		h, v := g.PageBreaks()
		lines = append(h, v...)
	}
	layer := g.surface.Layer("background")
	for i, l := range lines {
		if i == len(g.pageBreaks) {
			el := NewElement("polyline", ElementPolyline)
			el.AddClass(g.opts.ClassPrefix + "-page-break")
			el.PointerEvents = false
			el.Style = Style{Stroke: g.opts.Page.BreakColor, StrokeWidth: 1, Dashed: g.opts.Page.BreakDashed}
			layer.AddChild(el)
			g.pageBreaks = append(g.pageBreaks, el)
		}
		g.pageBreaks[i].Points = []Vec2{g.viewToLocal(l[0]), g.viewToLocal(l[1])}
	}
	for i := len(lines); i < len(g.pageBreaks); i++ {
		g.pageBreaks[i].Dispose()
		g.pageBreaks[i] = nil
	}
	g.pageBreaks = g.pageBreaks[:len(lines)]
}

// PageBreakElements returns the live page break lines.
func (g *Graph) PageBreakElements() []*Element { return g.pageBreaks }
