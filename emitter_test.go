package arbor

import "testing"

type storeRecorder struct {
	got []Notification
}

func (s *storeRecorder) EmitNotification(n Notification) { s.got = append(s.got, n) }

func TestEmitterOrder(t *testing.T) {
	var em Emitter
	var order []int
	em.On("blank:click", func(EventArgs) { order = append(order, 1) })
	em.On("blank:click", func(EventArgs) { order = append(order, 2) })
	em.On("node:click", func(EventArgs) { order = append(order, 99) })

	em.Trigger("blank:click", EventArgs{X: 1})
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, want [1 2]", order)
	}
}

func TestEmitterArgs(t *testing.T) {
	var em Emitter
	var got EventArgs
	em.On("edge:connected", func(a EventArgs) { got = a })
	c := NewEdge(nil, nil)
	em.Trigger("edge:connected", EventArgs{X: 3, Y: 4, Cell: c, Name: "n"})
	if got.X != 3 || got.Y != 4 || got.Cell != c || got.Name != "n" {
		t.Errorf("args = %+v", got)
	}
}

func TestEmitterRemove(t *testing.T) {
	var em Emitter
	calls := 0
	h := em.On("x", func(EventArgs) { calls++ })
	other := 0
	em.On("x", func(EventArgs) { other++ })

	h.Remove()
	h.Remove()
	em.Trigger("x", EventArgs{})
	if calls != 0 || other != 1 {
		t.Errorf("calls = %d, other = %d", calls, other)
	}

	var zero CallbackHandle
	zero.Remove()
}

func TestEmitterEventStore(t *testing.T) {
	var em Emitter
	store := &storeRecorder{}
	em.SetEventStore(store)

	em.Trigger("blank:mousedown", EventArgs{X: 10})
	em.Trigger("node:moved", EventArgs{})
	if len(store.got) != 2 {
		t.Fatalf("store got %d notifications, want 2", len(store.got))
	}
	if store.got[0].Name != "blank:mousedown" || store.got[0].Args.X != 10 {
		t.Errorf("first = %+v", store.got[0])
	}

	em.SetEventStore(nil)
	em.Trigger("node:moved", EventArgs{})
	if len(store.got) != 2 {
		t.Error("cleared store still receives notifications")
	}
}

func TestEmitterRemoveDuringTrigger(t *testing.T) {
	var em Emitter
	var order []int
	var once CallbackHandle
	once = em.On("blank:click", func(EventArgs) {
		order = append(order, 1)
		once.Remove()
	})
	em.On("blank:click", func(EventArgs) { order = append(order, 2) })
	em.On("blank:click", func(EventArgs) { order = append(order, 3) })

	em.Trigger("blank:click", EventArgs{})
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("first trigger order = %v, want [1 2 3]", order)
	}

	order = nil
	em.Trigger("blank:click", EventArgs{})
	if len(order) != 2 || order[0] != 2 || order[1] != 3 {
		t.Errorf("second trigger order = %v, want [2 3]", order)
	}
}

func TestEmitterRemoveOtherDuringTrigger(t *testing.T) {
	var em Emitter
	var order []int
	var second CallbackHandle
	em.On("x", func(EventArgs) {
		order = append(order, 1)
		second.Remove()
	})
	second = em.On("x", func(EventArgs) { order = append(order, 2) })

	em.Trigger("x", EventArgs{})
	if len(order) != 2 {
		t.Errorf("in-progress trigger order = %v, want [1 2]", order)
	}
	order = nil
	em.Trigger("x", EventArgs{})
	if len(order) != 1 || order[0] != 1 {
		t.Errorf("order after removal = %v, want [1]", order)
	}
}
