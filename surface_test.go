package arbor

import (
	"testing"
	"time"
)

type surfaceRecorder struct {
	names  map[*Element]string
	events []string
	last   *PointerEvent
}

func (r *surfaceRecorder) record(e *PointerEvent) {
	name, ok := r.names[e.Target]
	if !ok {
		name = "?"
	}
	if e.Target == nil {
		name = "nil"
	}
	r.events = append(r.events, e.Kind.String()+":"+name)
	r.last = e
}

func (r *surfaceRecorder) reset() { r.events = nil }

// newRecordingSurface builds a surface with one cell whose body covers
// (100,100)-(150,150), listening with a table that records every event
// once.
func newRecordingSurface(t *testing.T) (*Surface, *surfaceRecorder, *Element) {
	t.Helper()
	s := NewSurface(NewCanvas(800, 600, 10), "arbor", 500*time.Millisecond)
	node := NewElement("g", ElementGroup)
	node.AddClass("arbor-cell")
	body := NewElement("rect", ElementRect)
	body.Bounds = Rect{X: 100, Y: 100, Width: 50, Height: 50}
	node.AddChild(body)
	s.Layer("stage").AddChild(node)

	rec := &surfaceRecorder{names: map[*Element]string{
		s.Container(): "container",
		s.SVG():       "svg",
		node:          "node",
		body:          "body",
	}}
	var tbl DispatchTable
	for k := KindMouseDown; k <= KindDragStart; k++ {
		tbl.On(k, rec.record)
	}
	all := func(*Element) bool { return true }
	tbl.OnSelector(KindMouseEnter, all, rec.record)
	tbl.OnSelector(KindMouseLeave, all, rec.record)
	s.listen(&tbl)
	return s, rec, body
}

func TestSurfaceHoverSynthesis(t *testing.T) {
	s, rec, _ := newRecordingSurface(t)

	s.Pointer(KindMouseMove, 120, 120, MouseButtonLeft, 0)
	want := []string{"mouseenter:container", "mouseover:body", "mouseenter:node"}
	if !equalStrings(rec.events, want) {
		t.Errorf("onto node = %v, want %v", rec.events, want)
	}

	rec.reset()
	s.Pointer(KindMouseMove, 130, 130, MouseButtonLeft, 0)
	if len(rec.events) != 0 {
		t.Errorf("moving within body emitted %v", rec.events)
	}

	s.Pointer(KindMouseMove, 300, 300, MouseButtonLeft, 0)
	want = []string{"mouseout:body", "mouseleave:node", "mouseover:svg"}
	if !equalStrings(rec.events, want) {
		t.Errorf("off node = %v, want %v", rec.events, want)
	}

	rec.reset()
	s.Pointer(KindMouseMove, 900, 300, MouseButtonLeft, 0)
	want = []string{"mouseout:svg", "mouseleave:container"}
	if !equalStrings(rec.events, want) {
		t.Errorf("off surface = %v, want %v", rec.events, want)
	}
}

func TestSurfaceRelatedTargets(t *testing.T) {
	s, rec, body := newRecordingSurface(t)
	s.Pointer(KindMouseMove, 300, 300, MouseButtonLeft, 0)
	s.Pointer(KindMouseMove, 120, 120, MouseButtonLeft, 0)
	if rec.last.Kind != KindMouseEnter || rec.last.RelatedTarget != s.SVG() {
		t.Errorf("enter related = %v, want svg", rec.last.RelatedTarget)
	}
	s.Pointer(KindMouseMove, 300, 300, MouseButtonLeft, 0)
	if rec.last.Kind != KindMouseOver || rec.last.RelatedTarget != body {
		t.Errorf("over related = %v, want body", rec.last.RelatedTarget)
	}
}

func TestSurfaceDblClick(t *testing.T) {
	s, rec, _ := newRecordingSurface(t)
	now := time.Unix(1000, 0)
	s.Now = func() time.Time { return now }

	s.Pointer(KindMouseDown, 120, 120, MouseButtonLeft, 0)
	s.Pointer(KindMouseUp, 120, 120, MouseButtonLeft, 0)
	now = now.Add(200 * time.Millisecond)
	s.Pointer(KindMouseDown, 121, 122, MouseButtonLeft, 0)
	s.Pointer(KindMouseUp, 121, 122, MouseButtonLeft, 0)

	want := []string{"mouseenter:container", "mouseover:body", "mouseenter:node", "mousedown:body", "mousedown:body", "dblclick:body"}
	if !equalStrings(rec.events, want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	if rec.last.Detail != 2 {
		t.Errorf("dblclick Detail = %v, want 2", rec.last.Detail)
	}

	// A third release does not pair with the consumed second one.
	rec.reset()
	now = now.Add(100 * time.Millisecond)
	s.Pointer(KindMouseUp, 121, 122, MouseButtonLeft, 0)
	if len(rec.events) != 0 {
		t.Errorf("third release emitted %v", rec.events)
	}
}

func TestSurfaceDblClickLimits(t *testing.T) {
	tests := []struct {
		name string
		gap  time.Duration
		dx   float64
	}{
		{"too slow", 600 * time.Millisecond, 0},
		{"too far", 100 * time.Millisecond, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rec, _ := newRecordingSurface(t)
			now := time.Unix(1000, 0)
			s.Now = func() time.Time { return now }
			s.Pointer(KindMouseUp, 120, 120, MouseButtonLeft, 0)
			now = now.Add(tt.gap)
			s.Pointer(KindMouseUp, 120+tt.dx, 120, MouseButtonLeft, 0)
			for _, ev := range rec.events {
				if ev == "dblclick:body" {
					t.Fatal("unexpected dblclick")
				}
			}
		})
	}
}

func TestSurfaceContextMenu(t *testing.T) {
	s, rec, _ := newRecordingSurface(t)
	s.Pointer(KindMouseMove, 120, 120, MouseButtonLeft, 0)
	rec.reset()
	s.Pointer(KindMouseDown, 120, 120, MouseButtonRight, ModCtrl)
	want := []string{"mousedown:body", "contextmenu:body"}
	if !equalStrings(rec.events, want) {
		t.Errorf("events = %v, want %v", rec.events, want)
	}
	if rec.last.Button != MouseButtonRight || rec.last.Modifiers != ModCtrl {
		t.Errorf("contextmenu button/mods = %v/%v", rec.last.Button, rec.last.Modifiers)
	}
}

func TestSurfaceWheelAndTouch(t *testing.T) {
	s, rec, body := newRecordingSurface(t)
	s.Wheel(120, 120, 120, 0)
	if rec.last.Kind != KindMouseWheel || rec.last.Target != body || rec.last.WheelDelta != 120 {
		t.Errorf("wheel = %+v", rec.last)
	}
	s.Touch(KindTouchStart, []Vec2{{125, 125}}, 0)
	if rec.last.Kind != KindTouchStart || rec.last.Target != body || rec.last.ClientX != 125 {
		t.Errorf("touch = %+v", rec.last)
	}
}

func TestSurfaceFeedRouting(t *testing.T) {
	s, rec, body := newRecordingSurface(t)

	s.Feed(&PointerEvent{Kind: KindMouseMove, Target: body})
	if len(rec.events) != 0 {
		t.Errorf("move without document listener reached surface: %v", rec.events)
	}

	var got *PointerEvent
	var doc DispatchTable
	doc.On(KindMouseMove, func(e *PointerEvent) { got = e })
	sess := &GestureSession{}
	s.listenDocument(&doc, sess)
	s.Feed(&PointerEvent{Kind: KindMouseMove, Target: body})
	if got == nil || got.Session != sess {
		t.Fatal("document move did not carry the session")
	}

	s.unlisten()
	s.Feed(&PointerEvent{Kind: KindClick, Target: body})
	if len(rec.events) != 0 {
		t.Errorf("undelegated surface delivered %v", rec.events)
	}
}

func TestSurfaceScrolledHitTest(t *testing.T) {
	s, rec, body := newRecordingSurface(t)
	c := s.Canvas()
	c.SetScale(2)
	// body covers client (200,200)-(300,300) at scale 2
	s.Pointer(KindMouseDown, 250, 250, MouseButtonLeft, 0)
	if rec.last.Target != body {
		t.Errorf("scaled hit = %v, want body", rec.names[rec.last.Target])
	}
	s.Pointer(KindMouseDown, 120, 120, MouseButtonLeft, 0)
	if rec.last.Target != s.SVG() {
		t.Errorf("scaled miss = %v, want svg", rec.names[rec.last.Target])
	}
}
