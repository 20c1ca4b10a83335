package ecs

import (
	"testing"

	"github.com/phanxgames/arbor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestDonburiStore_EmitNotification(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []arbor.Notification
	NotificationEventType.Subscribe(world, func(w donburi.World, n arbor.Notification) {
		received = append(received, n)
	})

	store.EmitNotification(arbor.Notification{Name: "blank:click", Args: arbor.EventArgs{X: 100, Y: 200}})
	store.EmitNotification(arbor.Notification{Name: "blank:mousewheel", Args: arbor.EventArgs{Delta: -1}})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("received %d events before processing", len(received))
	}
	NotificationEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Name != "blank:click" || received[0].Args.X != 100 || received[0].Args.Y != 200 {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Name != "blank:mousewheel" || received[1].Args.Delta != -1 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiStore_Prefixes(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world, "node:", "edge:")

	var names []string
	Subscribe(world, "", func(w donburi.World, n arbor.Notification) {
		names = append(names, n.Name)
	})
	for _, name := range []string{"blank:click", "node:click", "cell:click", "edge:connected"} {
		store.EmitNotification(arbor.Notification{Name: name})
	}
	events.ProcessAllEvents(world)

	if len(names) != 2 || names[0] != "node:click" || names[1] != "edge:connected" {
		t.Errorf("forwarded = %v, want [node:click edge:connected]", names)
	}
}

func TestSubscribeByName(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	moved := 0
	Subscribe(world, "node:moved", func(w donburi.World, n arbor.Notification) {
		moved++
	})
	store.EmitNotification(arbor.Notification{Name: "node:moving"})
	store.EmitNotification(arbor.Notification{Name: "node:moved"})
	events.ProcessAllEvents(world)

	if moved != 1 {
		t.Errorf("node:moved subscriber called %d times, want 1", moved)
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	NotificationEventType.Subscribe(world, func(w donburi.World, n arbor.Notification) {
		count1++
	})
	NotificationEventType.Subscribe(world, func(w donburi.World, n arbor.Notification) {
		count2++
	})

	store.EmitNotification(arbor.Notification{Name: "node:click"})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiStore_GraphClick(t *testing.T) {
	g, err := arbor.New(arbor.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	world := donburi.NewWorld()
	g.SetEventStore(NewDonburiStore(world))

	var names []string
	NotificationEventType.Subscribe(world, func(w donburi.World, n arbor.Notification) {
		names = append(names, n.Name)
	})

	s := g.Surface()
	s.Pointer(arbor.KindMouseDown, 100, 100, arbor.MouseButtonLeft, 0)
	s.Pointer(arbor.KindMouseUp, 100, 100, arbor.MouseButtonLeft, 0)
	events.ProcessAllEvents(world)

	want := map[string]bool{"blank:mousedown": false, "blank:mouseup": false, "blank:click": false}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for n, seen := range want {
		if !seen {
			t.Errorf("notification %q not forwarded (got %v)", n, names)
		}
	}
}
