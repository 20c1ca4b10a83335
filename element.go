package arbor

import "strings"

// ElementType distinguishes how an Element is drawn and hit-tested.
type ElementType uint8

const (
	ElementGroup    ElementType = iota // grouping element with no visual output
	ElementRect                        // rectangle filling Bounds
	ElementEllipse                     // ellipse inscribed in Bounds
	ElementPolyline                    // open polyline through Points
	ElementText                        // text anchored in Bounds
	ElementImage                       // raster image filling Bounds
	ElementHTML                        // embedded HTML component filling Bounds
	ElementPolygon                     // closed convex polygon through Points
)

// Style holds the paint attributes of an element. Colors are CSS color
// strings understood by the color package ("#rrggbb", "#rgb", named colors).
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	Dashed      bool
}

// elementIDCounter is a plain counter; arbor is single-threaded.
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is a node of the retained surface tree. It stands in for the DOM:
// the router only ever sees elements as event targets, inspects their
// classes and attributes, and walks their parents.
//
// Bounds, HitShape and Points are local (graph-space) coordinates.
type Element struct {
	// Identity
	ID   uint32
	Tag  string
	Type ElementType

	// Hierarchy
	Parent   *Element
	children []*Element

	classes []string
	attrs   map[string]string

	// Geometry
	Bounds   Rect
	HitShape HitShape
	Points   []Vec2

	Style Style
	Text  string

	// Visible hides the element and its subtree from drawing and hit testing.
	Visible bool
	// PointerEvents makes the element (and its subtree) a hit-test candidate.
	PointerEvents bool

	disposed bool
}

// NewElement creates a visible, pointer-enabled element.
func NewElement(tag string, typ ElementType) *Element {
	return &Element{
		ID:            nextElementID(),
		Tag:           tag,
		Type:          typ,
		Visible:       true,
		PointerEvents: true,
	}
}

// --- Tree manipulation ---

// AddChild appends child to this element's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this element (cycle).
func (e *Element) AddChild(child *Element) {
	if child == nil {
		panic("arbor: cannot add nil child")
	}
	if isAncestor(child, e) {
		panic("arbor: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child from this element.
// Panics if child.Parent != e.
func (e *Element) RemoveChild(child *Element) {
	if child.Parent != e {
		panic("arbor: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this element from its parent.
// No-op if this element has no parent.
func (e *Element) RemoveFromParent() {
	if e.Parent == nil {
		return
	}
	e.Parent.RemoveChild(e)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (e *Element) Children() []*Element {
	return e.children
}

// Contains reports whether other is a strict descendant of e.
func (e *Element) Contains(other *Element) bool {
	if other == nil || other == e {
		return false
	}
	return isAncestor(e, other)
}

// Closest returns the nearest element, starting at e itself and walking up
// the parents, for which match returns true. Returns nil if none matches.
func (e *Element) Closest(match func(*Element) bool) *Element {
	for p := e; p != nil; p = p.Parent {
		if match(p) {
			return p
		}
	}
	return nil
}

// Find returns the first descendant (depth first, e excluded) matching match.
func (e *Element) Find(match func(*Element) bool) *Element {
	for _, c := range e.children {
		if match(c) {
			return c
		}
		if found := c.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// --- Classes and attributes ---

// AddClass adds each space-separated class name in names.
func (e *Element) AddClass(names string) {
	for _, c := range strings.Fields(names) {
		if !e.HasClass(c) {
			e.classes = append(e.classes, c)
		}
	}
}

// RemoveClass removes each space-separated class name in names.
func (e *Element) RemoveClass(names string) {
	for _, c := range strings.Fields(names) {
		for i, have := range e.classes {
			if have == c {
				e.classes = append(e.classes[:i], e.classes[i+1:]...)
				break
			}
		}
	}
}

// HasClass reports whether the element carries the class name.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.classes {
		if c == name {
			return true
		}
	}
	return false
}

// ClassName returns the classes joined by spaces.
func (e *Element) ClassName() string {
	return strings.Join(e.classes, " ")
}

// SetClassName replaces all classes with the space-separated names.
func (e *Element) SetClassName(names string) {
	e.classes = e.classes[:0]
	e.AddClass(names)
}

// Attr returns the attribute value and whether it is set.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttr sets an attribute.
func (e *Element) SetAttr(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// RemoveAttr deletes an attribute.
func (e *Element) RemoveAttr(name string) {
	delete(e.attrs, name)
}

// --- Disposal ---

// Dispose removes this element from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	e.RemoveFromParent()
	e.dispose()
}

func (e *Element) dispose() {
	e.disposed = true
	e.ID = 0
	for _, child := range e.children {
		child.Parent = nil
		child.dispose()
	}
	e.children = nil
	e.Parent = nil
	e.HitShape = nil
	e.Points = nil
	e.attrs = nil
}

// IsDisposed returns true if this element has been disposed.
func (e *Element) IsDisposed() bool {
	return e.disposed
}

// --- Hit testing ---

// containsPoint tests whether (x, y) falls inside the element's hit region.
// Uses HitShape if set; otherwise derives it from Type and Bounds.
// Groups and polylines with no HitShape are not hit-testable.
func (e *Element) containsPoint(x, y float64) bool {
	if e.HitShape != nil {
		return e.HitShape.Contains(x, y)
	}
	switch e.Type {
	case ElementRect, ElementText, ElementImage, ElementHTML:
		if e.Bounds.Width == 0 && e.Bounds.Height == 0 {
			return false
		}
		return e.Bounds.Contains(x, y)
	case ElementEllipse:
		return ellipseContains(e.Bounds, x, y)
	case ElementPolygon:
		return HitPolygon{Points: e.Points}.Contains(x, y)
	default:
		return false
	}
}

// collectHittable walks the tree in painter order (DFS), appending
// hit-testable elements to buf. Skips Visible=false or PointerEvents=false
// subtrees.
func collectHittable(e *Element, buf []*Element) []*Element {
	if !e.Visible || !e.PointerEvents {
		return buf
	}
	if e.HitShape != nil || (e.Type != ElementGroup && e.Type != ElementPolyline) {
		buf = append(buf, e)
	}
	for _, child := range e.children {
		buf = collectHittable(child, buf)
	}
	return buf
}

// hitTest finds the topmost hit-testable element under root at graph point
// (x, y), reusing buf for the candidate list. Returns nil if nothing is hit.
func hitTest(root *Element, x, y float64, buf []*Element) (*Element, []*Element) {
	buf = collectHittable(root, buf[:0])

	// Iterate backward (reverse painter order): topmost visual element first.
	for i := len(buf) - 1; i >= 0; i-- {
		if buf[i].containsPoint(x, y) {
			return buf[i], buf
		}
	}
	return nil, buf
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of (or equal to) el.
func isAncestor(candidate, el *Element) bool {
	for p := el; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing child.Parent.
func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}
