package ecs

import (
	"strings"

	"github.com/phanxgames/arbor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// NotificationEventType carries graph notifications through a world's
// event queue.
var NotificationEventType = events.NewEventType[arbor.Notification]()

type donburiStore struct {
	world    donburi.World
	prefixes []string
}

// NewDonburiStore returns an EventStore that queues notifications on world.
// With prefixes, only notifications whose name starts with one of them are
// queued ("node:" keeps node:click and node:moved, drops blank:click).
func NewDonburiStore(world donburi.World, prefixes ...string) arbor.EventStore {
	return &donburiStore{world: world, prefixes: prefixes}
}

func (s *donburiStore) EmitNotification(n arbor.Notification) {
	if !s.wants(n.Name) {
		return
	}
	NotificationEventType.Publish(s.world, n)
}

func (s *donburiStore) wants(name string) bool {
	if len(s.prefixes) == 0 {
		return true
	}
	for _, p := range s.prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// Subscribe calls fn for every queued notification called name when the
// world processes its events. An empty name matches all of them.
func Subscribe(world donburi.World, name string, fn func(w donburi.World, n arbor.Notification)) {
	NotificationEventType.Subscribe(world, func(w donburi.World, n arbor.Notification) {
		if name == "" || n.Name == name {
			fn(w, n)
		}
	})
}
