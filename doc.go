// Package arbor is the interaction core of a 2D diagram canvas: a retained
// element tree standing in for the DOM, a pointer event router that turns
// raw input into graph-level semantic events, and an alignment snap engine
// that corrects drag deltas while showing guide lines.
//
// # Quick start
//
// A [Graph] owns everything. Hosts feed raw pointer state into its
// [Surface] and listen for notifications:
//
//	g, err := arbor.New(arbor.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	a, _ := g.AddNode("rect", arbor.Rect{X: 40, Y: 40, Width: 120, Height: 60}, "a")
//	b, _ := g.AddNode("circle", arbor.Rect{X: 240, Y: 40, Width: 60, Height: 60}, "b")
//	g.AddEdge(a, b)
//
//	g.On("blank:click", func(args arbor.EventArgs) {
//		fmt.Println("clicked canvas at", args.X, args.Y)
//	})
//
//	s := g.Surface()
//	s.Pointer(arbor.KindMouseDown, 10, 10, arbor.MouseButtonLeft, 0)
//	s.Pointer(arbor.KindMouseUp, 10, 10, arbor.MouseButtonLeft, 0)
//
// The screen subpackage hosts a graph in an ebiten window and does the
// polling for you.
//
// # Event routing
//
// The [Router] binds its handlers in a [DispatchTable] delegated on the
// surface container. Each handler normalizes the event, resolves the
// [CellView] under the target through a [ViewFinder], guards it, converts
// the client point to a grid-snapped local point and either calls the view
// or emits a blank notification ("blank:mousedown", "graph:mouseenter",
// ...). A mouse-down opens a [GestureSession]: surface listening is
// suspended and document-level move/up bindings carry the session until the
// release, which also synthesizes the click unless the view stopped
// propagation.
//
// Views emit "cell:<kind>" plus "node:<kind>" or "edge:<kind>"
// notifications. [Graph.SetEventStore] forwards every notification to an
// [EventStore] such as the Donburi adapter in arbor/ecs.
//
// # Alignment guides
//
// A [Guide] takes the moving box, a tentative delta and the candidate
// [State] list and returns a corrected delta, aligning centers and edges
// within half a grid step and otherwise falling back to the grid. NodeView
// creates one per drag from [Graph.NewGuide].
//
// # Coordinates
//
// Client coordinates are device pixels. [Canvas] maps them to local
// coordinates through origin, scroll, scale and translate:
//
//	client = Origin - Scroll + (local + translate) * scale
//
// Element geometry is local. Guide states are in view space,
// (local + translate) * scale.
//
// # Configuration
//
// [Options] is loaded from TOML with [LoadOptions]. Guard predicates,
// loggers and guide styles are set in code.
//
// arbor is single-threaded: drive a Graph from one goroutine.
package arbor
