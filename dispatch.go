package arbor

// Handler handles one event delivered by a DispatchTable.
type Handler func(e *PointerEvent)

// Selector matches elements for delegated bindings.
type Selector func(el *Element) bool

// WithClass matches elements carrying the class name.
func WithClass(name string) Selector {
	return func(el *Element) bool { return el.HasClass(name) }
}

// WithAttr matches elements that have the attribute set.
func WithAttr(name string) Selector {
	return func(el *Element) bool {
		_, ok := el.Attr(name)
		return ok
	}
}

// WithTag matches elements with the given tag.
func WithTag(tag string) Selector {
	return func(el *Element) bool { return el.Tag == tag }
}

// Within matches elements matched by sel that also have a strict ancestor
// matched by ancestor (the CSS descendant combinator "ancestor sel").
func Within(ancestor, sel Selector) Selector {
	return func(el *Element) bool {
		if !sel(el) {
			return false
		}
		for p := el.Parent; p != nil; p = p.Parent {
			if ancestor(p) {
				return true
			}
		}
		return false
	}
}

type binding struct {
	kind     EventKind
	selector Selector // nil binds on the root itself
	handler  Handler
}

// DispatchTable maps event kinds (optionally narrowed by a selector) to
// handlers, with delegated-event semantics: bindings with a selector run
// for each matching element from the target up to (excluding) the root,
// deepest first; root bindings run last. Bindings on one element run in
// registration order.
type DispatchTable struct {
	bindings []binding
}

// On binds handler for kind on the root.
func (t *DispatchTable) On(kind EventKind, handler Handler) {
	t.bindings = append(t.bindings, binding{kind: kind, handler: handler})
}

// OnSelector binds handler for kind on descendants matching sel.
func (t *DispatchTable) OnSelector(kind EventKind, sel Selector, handler Handler) {
	t.bindings = append(t.bindings, binding{kind: kind, selector: sel, handler: handler})
}

// Len returns the number of bindings.
func (t *DispatchTable) Len() int {
	return len(t.bindings)
}

// Handles reports whether any binding exists for kind.
func (t *DispatchTable) Handles(kind EventKind) bool {
	for i := range t.bindings {
		if t.bindings[i].kind == kind {
			return true
		}
	}
	return false
}

// Dispatch delivers e. root may be nil for document-level tables, in which
// case only root bindings run. Enter and leave events do not bubble: they
// reach selector bindings on the target only, and root bindings only when
// the root itself is the target.
func (t *DispatchTable) Dispatch(root *Element, e *PointerEvent) {
	bubbles := e.Kind != KindMouseEnter && e.Kind != KindMouseLeave
	if root != nil {
		for cur := e.Target; cur != nil && cur != root; cur = cur.Parent {
			if !bubbles && cur != e.Target {
				break
			}
			for i := range t.bindings {
				b := &t.bindings[i]
				if b.kind != e.Kind || b.selector == nil || !b.selector(cur) {
					continue
				}
				e.CurrentTarget = cur
				b.handler(e)
				if e.immediateStopped {
					return
				}
			}
			if e.propagationStopped {
				return
			}
		}
	}

	if !bubbles && root != nil && e.Target != root {
		return
	}
	for i := range t.bindings {
		b := &t.bindings[i]
		if b.kind != e.Kind || b.selector != nil {
			continue
		}
		e.CurrentTarget = root
		b.handler(e)
		if e.immediateStopped {
			return
		}
	}
}
