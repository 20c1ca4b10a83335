package arbor

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Graph owns a diagram: its model, views, surface, canvas transform, event
// router and notification emitter. A Graph is driven from a single
// goroutine (typically the host's update loop) and is not safe for
// concurrent use.
type Graph struct {
	opts Options
	log  *log.Logger

	canvas     *Canvas
	surface    *Surface
	model      *Model
	renderer   *Renderer
	router     *Router
	emitter    Emitter
	shapes     *Registry[ViewFactory]
	components *Registry[Component]

	pageBreaks []*Element
}

// New creates a graph with the default shapes registered.
func New(opts Options) (*Graph, error) {
	if opts.ClassPrefix == "" {
		opts.ClassPrefix = defaultClassPrefix
	}
	g := &Graph{
		opts:       opts,
		log:        opts.logger(),
		model:      NewModel(),
		shapes:     NewRegistry[ViewFactory]("shape"),
		components: NewComponentRegistry(),
	}
	if opts.Debug {
		// Raise the level on a child so the caller's logger is untouched.
		g.log = g.log.With()
		g.log.SetLevel(log.DebugLevel)
	}
	if err := DefaultShapes(g.shapes); err != nil {
		return nil, err
	}

	g.canvas = NewCanvas(opts.Width, opts.Height, opts.GridSize)
	g.surface = NewSurface(g.canvas, opts.ClassPrefix, opts.DblClickInterval())
	g.renderer = NewRenderer(g)
	g.router = NewRouter(RouterConfig{
		Surface:                   g.surface,
		Finder:                    g.renderer,
		Snapper:                   g,
		Notifier:                  g,
		Logger:                    g.log,
		ClickThreshold:            opts.ClickThreshold,
		MoveThreshold:             opts.MoveThreshold,
		PreventDefaultBlankAction: opts.PreventDefaultBlankAction,
		PreventContextMenu:        opts.PreventContextMenu,
		Guard:                     opts.Guard,
		ClassPrefix:               opts.ClassPrefix,
	})
	g.log.Debug("graph created", "width", opts.Width, "height", opts.Height, "grid", opts.GridSize)
	return g, nil
}

// DefaultShapes registers the built-in shapes: rect, circle, ellipse,
// diamond, html and edge.
func DefaultShapes(r *Registry[ViewFactory]) error {
	for _, name := range []string{"rect", "circle", "ellipse", "diamond", "html"} {
		if err := r.Register(name, NewNodeView); err != nil {
			return err
		}
	}
	return r.Register("edge", NewEdgeView)
}

// Options returns the graph's options.
func (g *Graph) Options() Options { return g.opts }

// Prefix returns the class name prefix.
func (g *Graph) Prefix() string { return g.opts.ClassPrefix }

// Logger returns the graph's logger.
func (g *Graph) Logger() *log.Logger { return g.log }

// Canvas returns the coordinate transform.
func (g *Graph) Canvas() *Canvas { return g.canvas }

// Surface returns the element tree and input entry points.
func (g *Graph) Surface() *Surface { return g.surface }

// Model returns the cell model.
func (g *Graph) Model() *Model { return g.model }

// Renderer returns the view renderer.
func (g *Graph) Renderer() *Renderer { return g.renderer }

// Router returns the event router.
func (g *Graph) Router() *Router { return g.router }

// Shapes returns the shape registry.
func (g *Graph) Shapes() *Registry[ViewFactory] { return g.shapes }

// Components returns the HTML component registry.
func (g *Graph) Components() *Registry[Component] { return g.components }

// SnapToGrid converts client coordinates to a grid-snapped local point.
// It implements GridSnapper.
func (g *Graph) SnapToGrid(clientX, clientY float64) Vec2 {
	return g.canvas.SnapToGrid(clientX, clientY)
}

// Trigger emits a notification. It implements Notifier.
func (g *Graph) Trigger(name string, args EventArgs) {
	g.emitter.Trigger(name, args)
}

// On registers fn for notifications called name.
func (g *Graph) On(name string, fn func(EventArgs)) CallbackHandle {
	return g.emitter.On(name, fn)
}

// SetEventStore forwards every notification to store as well.
func (g *Graph) SetEventStore(store EventStore) {
	g.emitter.SetEventStore(store)
}

// Update advances canvas animations by dt seconds.
func (g *Graph) Update(dt float32) {
	g.canvas.Update(dt)
}

// NewGuide creates an alignment guide over states in the overlay layer,
// configured from Options.Guide.
func (g *Graph) NewGuide(states []State) *Guide {
	guide := NewGuide(g.canvas, g.surface.Layer("overlay"), g.opts.ClassPrefix, states, g.opts.guideStyle())
	guide.Horizontal = g.opts.Guide.Horizontal
	guide.Vertical = g.opts.Guide.Vertical
	guide.Rounded = g.opts.Guide.Rounded
	return guide
}

// ViewStates returns the guide states of every node except skip, with
// bounds in view space.
func (g *Graph) ViewStates(skip *Cell) []State {
	var states []State
	for _, c := range g.model.Cells() {
		if c == skip || !c.IsNode() {
			continue
		}
		states = append(states, State{Bounds: g.canvas.LocalToView(c.Bounds), Cell: c})
	}
	return states
}

// AddCell adds c to the model and renders it.
func (g *Graph) AddCell(c *Cell) (CellView, error) {
	if g.model.Get(c.ID) != nil {
		return nil, fmt.Errorf("add cell %s: %w", c.ID, ErrDuplicate)
	}
	v, err := g.renderer.Render(c)
	if err != nil {
		return nil, err
	}
	g.model.Add(c)
	g.Trigger("cell:added", EventArgs{Cell: c, View: v})
	return v, nil
}

// AddNode creates, adds and renders a node.
func (g *Graph) AddNode(shape string, bounds Rect, label string) (*Cell, error) {
	c := NewNode(shape, bounds)
	c.Label = label
	if _, err := g.AddCell(c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddEdge creates, adds and renders an edge between two nodes.
func (g *Graph) AddEdge(source, target *Cell) (*Cell, error) {
	c := NewEdge(source, target)
	if _, err := g.AddCell(c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveCell removes c and its connected edges from the model and disposes
// their views.
func (g *Graph) RemoveCell(c *Cell) {
	for _, removed := range g.model.Remove(c) {
		g.renderer.Remove(removed)
		g.Trigger("cell:removed", EventArgs{Cell: removed})
	}
}

// RefreshCell re-syncs the view of c and of its connected edges.
func (g *Graph) RefreshCell(c *Cell) {
	if v := g.renderer.FindViewByCell(c); v != nil {
		v.Update()
	}
	if c.IsNode() {
		for _, e := range g.model.ConnectedEdges(c) {
			if v := g.renderer.FindViewByCell(e); v != nil {
				v.Update()
			}
		}
	}
}
