package arbor

// PointerEvent is a normalized input event. It is created per physical
// input, normalized once, and discarded after dispatch; only its Session
// outlives it.
type PointerEvent struct {
	Kind EventKind

	// ClientX and ClientY are device coordinates. For touch events they are
	// filled from the first changed touch by Normalize.
	ClientX, ClientY float64

	// Target is the innermost element under the pointer.
	Target *Element
	// CurrentTarget is the element whose binding is running (set by DispatchTable).
	CurrentTarget *Element
	// RelatedTarget is the element the pointer came from (enter/over) or
	// moved to (leave/out).
	RelatedTarget *Element

	Button    MouseButton
	Modifiers KeyModifiers

	// Touches are the changed touch points of a touch event.
	Touches []Vec2

	// WheelDelta is the platform wheel delta (positive = scroll up).
	WheelDelta float64
	// Detail is the legacy line-scroll amount (positive = scroll down), used
	// when WheelDelta is zero.
	Detail float64

	// Guarded, when non-nil, overrides the router's target-based guard
	// decision for this event.
	Guarded *bool

	// Session is the gesture this event belongs to. Set on the mouse-down
	// that opens a gesture and on every document-level event until mouse-up.
	Session *GestureSession

	// Original is the event a synthesized event was derived from.
	Original *PointerEvent

	normalized         bool
	propagationStopped bool
	immediateStopped   bool
	defaultPrevented   bool
}

// Normalize fills client coordinates from the first changed touch for touch
// events. It is idempotent and returns e for chaining.
func Normalize(e *PointerEvent) *PointerEvent {
	if e.normalized {
		return e
	}
	e.normalized = true
	if e.Kind.IsTouch() && len(e.Touches) > 0 {
		e.ClientX = e.Touches[0].X
		e.ClientY = e.Touches[0].Y
	}
	return e
}

// StopPropagation prevents the event from reaching bindings on ancestor
// elements and on the surface root.
func (e *PointerEvent) StopPropagation() {
	e.propagationStopped = true
}

// StopImmediatePropagation additionally skips the remaining bindings on the
// current element.
func (e *PointerEvent) StopImmediatePropagation() {
	e.propagationStopped = true
	e.immediateStopped = true
}

// IsPropagationStopped reports whether StopPropagation was called.
func (e *PointerEvent) IsPropagationStopped() bool { return e.propagationStopped }

// IsImmediatePropagationStopped reports whether StopImmediatePropagation was called.
func (e *PointerEvent) IsImmediatePropagationStopped() bool { return e.immediateStopped }

// PreventDefault marks the platform default action as cancelled.
func (e *PointerEvent) PreventDefault() { e.defaultPrevented = true }

// IsDefaultPrevented reports whether PreventDefault was called.
func (e *PointerEvent) IsDefaultPrevented() bool { return e.defaultPrevented }

// SetGuarded sets the explicit guard flag.
func (e *PointerEvent) SetGuarded(guarded bool) {
	e.Guarded = &guarded
}

// derive creates a fresh event of kind k carrying e's coordinates, targets,
// buttons and session. Propagation flags start cleared.
func (e *PointerEvent) derive(k EventKind) *PointerEvent {
	return &PointerEvent{
		Kind:          k,
		ClientX:       e.ClientX,
		ClientY:       e.ClientY,
		Target:        e.Target,
		CurrentTarget: e.CurrentTarget,
		RelatedTarget: e.RelatedTarget,
		Button:        e.Button,
		Modifiers:     e.Modifiers,
		Touches:       e.Touches,
		Guarded:       e.Guarded,
		Session:       e.Session,
		Original:      e,
		normalized:    e.normalized,
	}
}

// wheelDelta maps the platform wheel fields to -1, 0 or +1.
func wheelDelta(e *PointerEvent) int {
	v := e.WheelDelta
	if v == 0 {
		v = -e.Detail
	}
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
