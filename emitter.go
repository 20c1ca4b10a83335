package arbor

// EventArgs is the payload of a graph notification.
type EventArgs struct {
	E *PointerEvent
	// X and Y are the grid-snapped local point, when the event has one.
	X, Y float64
	// Delta is the normalized wheel delta for mousewheel notifications.
	Delta int
	// View is the cell view a cell-level notification concerns.
	View CellView
	// Cell is the cell a cell-level notification concerns.
	Cell *Cell
	// Magnet is the magnet element of magnet notifications.
	Magnet *Element
	// Name is the custom event name of custom notifications.
	Name string
}

// Notification couples a notification name with its payload.
type Notification struct {
	Name string
	Args EventArgs
}

// EventStore is the interface for optional ECS integration.
// When set on a Graph, every notification is forwarded to it.
type EventStore interface {
	EmitNotification(n Notification)
}

// Notifier receives named graph notifications ("blank:click", "node:moved", ...).
type Notifier interface {
	Trigger(name string, args EventArgs)
}

type listener struct {
	id uint32
	fn func(EventArgs)
}

// Emitter is a named-notification registry.
type Emitter struct {
	listeners map[string][]listener
	nextID    uint32
	store     EventStore
}

// CallbackHandle allows removing a registered listener.
type CallbackHandle struct {
	id   uint32
	name string
	em   *Emitter
}

// Remove unregisters this listener so it no longer fires. It is safe to
// call from inside a listener; a Trigger in progress still finishes the
// listeners it started with.
func (h CallbackHandle) Remove() {
	if h.em == nil {
		return
	}
	s := h.em.listeners[h.name]
	for i := range s {
		if s[i].id == h.id {
			kept := make([]listener, 0, len(s)-1)
			kept = append(kept, s[:i]...)
			kept = append(kept, s[i+1:]...)
			h.em.listeners[h.name] = kept
			return
		}
	}
}

// On registers fn for notifications called name.
func (em *Emitter) On(name string, fn func(EventArgs)) CallbackHandle {
	if em.listeners == nil {
		em.listeners = make(map[string][]listener)
	}
	em.nextID++
	id := em.nextID
	em.listeners[name] = append(em.listeners[name], listener{id: id, fn: fn})
	return CallbackHandle{id: id, name: name, em: em}
}

// Trigger calls every listener of name in registration order, then
// forwards the notification to the event store if one is set.
func (em *Emitter) Trigger(name string, args EventArgs) {
	// Listeners may register or remove listeners while running.
	ls := em.listeners[name]
	for _, l := range ls {
		l.fn(args)
	}
	if em.store != nil {
		em.store.EmitNotification(Notification{Name: name, Args: args})
	}
}

// SetEventStore sets the optional ECS bridge.
func (em *Emitter) SetEventStore(store EventStore) {
	em.store = store
}
