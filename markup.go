package arbor

// Markup describes an element subtree declaratively. Build turns it into
// live elements and collects every element that names a Selector.
type Markup struct {
	Tag       string
	Type      ElementType
	Selector  string
	ClassName string
	Attrs     map[string]string
	// NoPointer disables PointerEvents on the built element.
	NoPointer bool
	Children  []Markup
}

// BuildMarkup builds each markup under parent (which may be nil) and returns
// the built top-level elements plus the selector map.
func BuildMarkup(parent *Element, markup []Markup) ([]*Element, map[string]*Element) {
	selectors := make(map[string]*Element)
	roots := make([]*Element, 0, len(markup))
	for i := range markup {
		el := markup[i].build(selectors)
		if parent != nil {
			parent.AddChild(el)
		}
		roots = append(roots, el)
	}
	return roots, selectors
}

func (m *Markup) build(selectors map[string]*Element) *Element {
	el := NewElement(m.Tag, m.Type)
	if m.ClassName != "" {
		el.AddClass(m.ClassName)
	}
	for k, v := range m.Attrs {
		el.SetAttr(k, v)
	}
	el.PointerEvents = !m.NoPointer
	if m.Selector != "" {
		selectors[m.Selector] = el
	}
	for i := range m.Children {
		el.AddChild(m.Children[i].build(selectors))
	}
	return el
}

// SurfaceMarkup returns the layer structure of a graph surface: background
// and grid layers followed by the svg root with its viewport panes.
// prefix is the class name prefix ("arbor" gives "arbor-graph-svg").
func SurfaceMarkup(prefix string) []Markup {
	cls := prefix + "-graph"
	return []Markup{
		{Tag: "div", Selector: "background", ClassName: cls + "-background", NoPointer: true},
		{Tag: "div", Selector: "grid", ClassName: cls + "-grid", NoPointer: true},
		{
			Tag: "svg", Selector: "svg", ClassName: cls + "-svg",
			Attrs: map[string]string{"width": "100%", "height": "100%"},
			Children: []Markup{
				{Tag: "defs", Selector: "defs"},
				{
					Tag: "g", Selector: "viewport", ClassName: cls + "-svg-viewport",
					Children: []Markup{
						{Tag: "g", Selector: "primer", ClassName: cls + "-svg-primer"},
						{Tag: "g", Selector: "stage", ClassName: cls + "-svg-stage"},
						{Tag: "g", Selector: "decorator", ClassName: cls + "-svg-decorator"},
						{Tag: "g", Selector: "overlay", ClassName: cls + "-svg-overlay"},
					},
				},
			},
		},
	}
}
