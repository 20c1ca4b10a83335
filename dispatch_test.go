package arbor

import "testing"

// dispatchTree builds root > cell(.cell) > inner(.inner) > leaf.
func dispatchTree() (root, cell, inner, leaf *Element) {
	root = NewElement("div", ElementGroup)
	cell = NewElement("g", ElementGroup)
	cell.AddClass("cell")
	inner = NewElement("g", ElementGroup)
	inner.AddClass("inner")
	leaf = NewElement("rect", ElementRect)
	root.AddChild(cell)
	cell.AddChild(inner)
	inner.AddChild(leaf)
	return
}

func TestDispatchOrder(t *testing.T) {
	root, cell, _, leaf := dispatchTree()
	var order []string
	var t1 DispatchTable
	t1.On(KindMouseDown, func(e *PointerEvent) { order = append(order, "root") })
	t1.OnSelector(KindMouseDown, WithClass("cell"), func(e *PointerEvent) {
		if e.CurrentTarget != cell {
			t.Error("CurrentTarget not set to the matching element")
		}
		order = append(order, "cell")
	})
	t1.OnSelector(KindMouseDown, WithClass("inner"), func(e *PointerEvent) { order = append(order, "inner-1") })
	t1.OnSelector(KindMouseDown, WithClass("inner"), func(e *PointerEvent) { order = append(order, "inner-2") })
	t1.OnSelector(KindMouseUp, WithClass("inner"), func(e *PointerEvent) { order = append(order, "wrong kind") })

	t1.Dispatch(root, &PointerEvent{Kind: KindMouseDown, Target: leaf})

	want := []string{"inner-1", "inner-2", "cell", "root"}
	if !equalStrings(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestDispatchStopPropagation(t *testing.T) {
	root, _, _, leaf := dispatchTree()
	var order []string
	var tbl DispatchTable
	tbl.On(KindClick, func(e *PointerEvent) { order = append(order, "root") })
	tbl.OnSelector(KindClick, WithClass("inner"), func(e *PointerEvent) {
		order = append(order, "inner-1")
		e.StopPropagation()
	})
	tbl.OnSelector(KindClick, WithClass("inner"), func(e *PointerEvent) { order = append(order, "inner-2") })
	tbl.OnSelector(KindClick, WithClass("cell"), func(e *PointerEvent) { order = append(order, "cell") })

	tbl.Dispatch(root, &PointerEvent{Kind: KindClick, Target: leaf})
	if want := []string{"inner-1", "inner-2"}; !equalStrings(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestDispatchStopImmediatePropagation(t *testing.T) {
	root, _, _, leaf := dispatchTree()
	var order []string
	var tbl DispatchTable
	tbl.On(KindClick, func(e *PointerEvent) {
		order = append(order, "root-1")
		e.StopImmediatePropagation()
	})
	tbl.On(KindClick, func(e *PointerEvent) { order = append(order, "root-2") })
	tbl.OnSelector(KindClick, WithClass("inner"), func(e *PointerEvent) { order = append(order, "inner") })

	tbl.Dispatch(root, &PointerEvent{Kind: KindClick, Target: leaf})
	if want := []string{"inner", "root-1"}; !equalStrings(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestDispatchEnterDoesNotBubble(t *testing.T) {
	root, cell, _, leaf := dispatchTree()
	var order []string
	var tbl DispatchTable
	tbl.On(KindMouseEnter, func(e *PointerEvent) { order = append(order, "root") })
	tbl.OnSelector(KindMouseEnter, WithClass("cell"), func(e *PointerEvent) { order = append(order, "cell") })

	tbl.Dispatch(root, &PointerEvent{Kind: KindMouseEnter, Target: leaf})
	if len(order) != 0 {
		t.Errorf("enter on leaf reached %v", order)
	}
	tbl.Dispatch(root, &PointerEvent{Kind: KindMouseEnter, Target: cell})
	tbl.Dispatch(root, &PointerEvent{Kind: KindMouseEnter, Target: root})
	if want := []string{"cell", "root"}; !equalStrings(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestDispatchNilRoot(t *testing.T) {
	_, _, _, leaf := dispatchTree()
	var order []string
	var tbl DispatchTable
	tbl.On(KindMouseMove, func(e *PointerEvent) {
		if e.CurrentTarget != nil {
			t.Error("document handler CurrentTarget should be nil")
		}
		order = append(order, "doc")
	})
	tbl.OnSelector(KindMouseMove, WithClass("inner"), func(e *PointerEvent) { order = append(order, "inner") })
	tbl.Dispatch(nil, &PointerEvent{Kind: KindMouseMove, Target: leaf})
	if want := []string{"doc"}; !equalStrings(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
	if tbl.Len() != 2 || !tbl.Handles(KindMouseMove) || tbl.Handles(KindClick) {
		t.Error("Len/Handles wrong")
	}
}

func TestSelectors(t *testing.T) {
	_, cell, inner, leaf := dispatchTree()
	leaf.SetAttr("magnet", "true")
	leaf.Tag = "image"

	if !WithClass("cell")(cell) || WithClass("cell")(inner) {
		t.Error("WithClass")
	}
	if !WithAttr("magnet")(leaf) || WithAttr("magnet")(inner) {
		t.Error("WithAttr")
	}
	if !WithTag("image")(leaf) || WithTag("image")(cell) {
		t.Error("WithTag")
	}
	within := Within(WithClass("cell"), WithAttr("magnet"))
	if !within(leaf) {
		t.Error("Within should match a descendant")
	}
	if Within(WithClass("cell"), WithClass("cell"))(cell) {
		t.Error("Within requires a strict ancestor")
	}
}

func TestNormalizeAndWheelDelta(t *testing.T) {
	e := &PointerEvent{Kind: KindTouchStart, Touches: []Vec2{{3, 4}, {9, 9}}}
	Normalize(e)
	if e.ClientX != 3 || e.ClientY != 4 {
		t.Errorf("normalized = (%v, %v), want (3, 4)", e.ClientX, e.ClientY)
	}
	e.Touches[0] = Vec2{7, 7}
	Normalize(e)
	if e.ClientX != 3 {
		t.Error("Normalize is not idempotent")
	}

	m := &PointerEvent{Kind: KindMouseDown, ClientX: 1, ClientY: 2, Touches: []Vec2{{5, 5}}}
	Normalize(m)
	if m.ClientX != 1 {
		t.Error("mouse events keep their coordinates")
	}

	tests := []struct {
		wheel, detail float64
		want          int
	}{
		{120, 0, 1},
		{-120, 0, -1},
		{0, 3, -1},
		{0, -3, 1},
		{0, 0, 0},
		{40, 3, 1},
	}
	for _, tt := range tests {
		if got := wheelDelta(&PointerEvent{WheelDelta: tt.wheel, Detail: tt.detail}); got != tt.want {
			t.Errorf("wheelDelta(%v, %v) = %d, want %d", tt.wheel, tt.detail, got, tt.want)
		}
	}
}

func TestDeriveClearsPropagation(t *testing.T) {
	s := &GestureSession{}
	e := &PointerEvent{Kind: KindMouseUp, ClientX: 5, Session: s}
	e.StopPropagation()
	e.PreventDefault()
	c := e.derive(KindClick)
	if c.Kind != KindClick || c.ClientX != 5 || c.Session != s || c.Original != e {
		t.Errorf("derive copied wrong fields: %+v", c)
	}
	if c.IsPropagationStopped() || c.IsDefaultPrevented() {
		t.Error("derived event should start with clear flags")
	}
}

func TestEventKindString(t *testing.T) {
	if KindMouseDown.String() != "mousedown" || KindTouchCancel.String() != "touchcancel" {
		t.Error("kind names")
	}
	if EventKind(200).String() != "unknown" {
		t.Error("out of range kind")
	}
	if !KindTouchEnd.IsTouch() || KindMouseUp.IsTouch() {
		t.Error("IsTouch")
	}
}
