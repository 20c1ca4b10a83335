package screen

import (
	"math"
	"testing"

	"github.com/phanxgames/arbor"
)

type sinkCall struct {
	kind   arbor.EventKind
	x, y   float64
	button arbor.MouseButton
}

type recordingSink struct {
	calls []sinkCall
}

func (r *recordingSink) Pointer(kind arbor.EventKind, x, y float64, button arbor.MouseButton, mods arbor.KeyModifiers) {
	r.calls = append(r.calls, sinkCall{kind, x, y, button})
}

func (r *recordingSink) Wheel(x, y, delta float64, mods arbor.KeyModifiers) {
	r.calls = append(r.calls, sinkCall{arbor.KindMouseWheel, x, y, 0})
}

func (r *recordingSink) Touch(kind arbor.EventKind, touches []arbor.Vec2, mods arbor.KeyModifiers) {
	r.calls = append(r.calls, sinkCall{kind, touches[0].X, touches[0].Y, 0})
}

func (r *recordingSink) kinds() []arbor.EventKind {
	out := make([]arbor.EventKind, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.kind
	}
	return out
}

func equalKinds(a, b []arbor.EventKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMouseTrackerPressMoveRelease(t *testing.T) {
	var m mouseTracker
	sink := &recordingSink{}

	m.step(sink, mouseFrame{X: 10, Y: 10})
	m.step(sink, mouseFrame{X: 10, Y: 10, Pressed: [3]bool{true, false, false}})
	m.step(sink, mouseFrame{X: 20, Y: 15, Pressed: [3]bool{true, false, false}})
	m.step(sink, mouseFrame{X: 20, Y: 15})

	want := []arbor.EventKind{arbor.KindMouseMove, arbor.KindMouseDown, arbor.KindMouseMove, arbor.KindMouseUp}
	if got := sink.kinds(); !equalKinds(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	last := sink.calls[len(sink.calls)-1]
	if last.x != 20 || last.y != 15 {
		t.Errorf("release at (%v, %v), want (20, 15)", last.x, last.y)
	}
}

func TestMouseTrackerKeepsPressButton(t *testing.T) {
	var m mouseTracker
	sink := &recordingSink{}

	m.step(sink, mouseFrame{X: 5, Y: 5, Pressed: [3]bool{false, true, false}})
	// Left joins while right is held; the gesture stays a right press.
	m.step(sink, mouseFrame{X: 6, Y: 5, Pressed: [3]bool{true, true, false}})
	m.step(sink, mouseFrame{X: 6, Y: 5, Pressed: [3]bool{true, false, false}})

	for _, c := range sink.calls {
		if (c.kind == arbor.KindMouseDown || c.kind == arbor.KindMouseUp) && c.button != arbor.MouseButtonRight {
			t.Errorf("%v reported button %v, want right", c.kind, c.button)
		}
	}
	if sink.calls[len(sink.calls)-1].kind != arbor.KindMouseUp {
		t.Errorf("last call %v, want mouseup", sink.calls[len(sink.calls)-1].kind)
	}
}

func TestMouseTrackerNoMoveWhenStill(t *testing.T) {
	var m mouseTracker
	sink := &recordingSink{}
	m.step(sink, mouseFrame{X: 1, Y: 1})
	m.step(sink, mouseFrame{X: 1, Y: 1})
	m.step(sink, mouseFrame{X: 1, Y: 1})
	if len(sink.calls) != 1 {
		t.Errorf("calls = %d, want 1", len(sink.calls))
	}
}

func TestDashSegments(t *testing.T) {
	segs := dashSegments(arbor.Vec2{}, arbor.Vec2{X: 10}, 4, 3)
	// Dashes start at 0, 7: [0,4] and [7,10].
	if len(segs) != 2 {
		t.Fatalf("segments = %d, want 2", len(segs))
	}
	if segs[0].x0 != 0 || segs[0].x1 != 4 {
		t.Errorf("seg 0 = %+v", segs[0])
	}
	if segs[1].x0 != 7 || segs[1].x1 != 10 {
		t.Errorf("seg 1 = %+v", segs[1])
	}
	if dashSegments(arbor.Vec2{X: 1}, arbor.Vec2{X: 1}, 4, 3) != nil {
		t.Error("zero-length line should have no dashes")
	}
}

func TestEllipsePoints(t *testing.T) {
	r := arbor.Rect{X: 0, Y: 0, Width: 20, Height: 10}
	for _, p := range ellipsePoints(r, 16) {
		dx := (p.X - 10) / 10
		dy := (p.Y - 5) / 5
		if math.Abs(dx*dx+dy*dy-1) > 1e-9 {
			t.Fatalf("point %+v not on ellipse", p)
		}
	}
}

func TestParseColor(t *testing.T) {
	if _, ok := parseColor(""); ok {
		t.Error("empty color should not paint")
	}
	if _, ok := parseColor("none"); ok {
		t.Error("none should not paint")
	}
	c, ok := parseColor("#ff0000")
	if !ok || c.R != 0xff || c.A != 0xff {
		t.Errorf("parseColor(#ff0000) = %+v, %v", c, ok)
	}
}

func newTestHost(t *testing.T) (*Host, *arbor.Graph) {
	t.Helper()
	g, err := arbor.New(arbor.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	return New(g, Config{Width: 400, Height: 300}), g
}

func TestInjectClickReachesGraph(t *testing.T) {
	h, g := newTestHost(t)
	var clicks int
	g.On("blank:click", func(arbor.EventArgs) { clicks++ })

	h.InjectClick(50, 50)
	if h.Pending() != 2 {
		t.Fatalf("pending = %d, want 2", h.Pending())
	}
	sink := g.Surface()
	h.processInjectedInput(sink)
	if clicks != 0 {
		t.Error("click fired on press tick")
	}
	h.processInjectedInput(sink)
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if h.processInjectedInput(sink) {
		t.Error("empty queue reported a sample")
	}
}

func TestInjectDragMovesNode(t *testing.T) {
	h, g := newTestHost(t)
	node, err := g.AddNode("rect", arbor.Rect{X: 100, Y: 100, Width: 40, Height: 40}, "n")
	if err != nil {
		t.Fatal(err)
	}
	var moved bool
	g.On("node:moved", func(arbor.EventArgs) { moved = true })

	h.InjectDrag(120, 120, 200, 160, 6)
	if h.Pending() != 6 {
		t.Fatalf("pending = %d, want 6", h.Pending())
	}
	for h.Pending() > 0 {
		h.processInjectedInput(g.Surface())
	}
	if !moved {
		t.Error("node:moved not emitted")
	}
	if node.Bounds.X != 180 || node.Bounds.Y != 140 {
		t.Errorf("node at (%v, %v), want (180, 140)", node.Bounds.X, node.Bounds.Y)
	}
}

func TestLoadScript(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps":[{"action":"click","x":10,"y":10},{"action":"wait","frames":3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.steps) != 2 {
		t.Errorf("steps = %d", len(s.steps))
	}
	if _, err := LoadScript([]byte(`{"steps":[]}`)); err == nil {
		t.Error("expected error for empty script")
	}
	if _, err := LoadScript([]byte(`{"steps":[{"action":"teleport"}]}`)); err == nil {
		t.Error("expected error for unknown action")
	}
	if _, err := LoadScript([]byte(`not json`)); err == nil {
		t.Error("expected error for bad json")
	}
}

func TestScriptRunsToCompletion(t *testing.T) {
	h, g := newTestHost(t)
	var clicks int
	g.On("blank:click", func(arbor.EventArgs) { clicks++ })

	s, err := LoadScript([]byte(`{"steps":[{"action":"click","x":10,"y":10},{"action":"wait","frames":2},{"action":"click","x":200,"y":200}]}`))
	if err != nil {
		t.Fatal(err)
	}
	h.SetScript(s)
	for i := 0; i < 20 && !s.Done(); i++ {
		s.step(h)
		h.processInjectedInput(g.Surface())
	}
	if !s.Done() {
		t.Fatal("script did not finish")
	}
	if clicks != 2 {
		t.Errorf("clicks = %d, want 2", clicks)
	}
}
