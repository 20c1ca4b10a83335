package arbor

import "math"

// Vec2 is a 2D vector used for positions, local points, and deltas
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Union returns the smallest rectangle containing both r and other.
// An empty rectangle (zero width and height) is ignored.
func (r Rect) Union(other Rect) Rect {
	if r.Width == 0 && r.Height == 0 {
		return other
	}
	if other.Width == 0 && other.Height == 0 {
		return r
	}
	x := math.Min(r.X, other.X)
	y := math.Min(r.Y, other.Y)
	return Rect{
		X: x, Y: y,
		Width:  math.Max(r.Right(), other.Right()) - x,
		Height: math.Max(r.Bottom(), other.Bottom()) - y,
	}
}

// EventKind identifies a kind of raw or synthesized input event.
type EventKind uint8

const (
	KindMouseDown   EventKind = iota // button pressed
	KindMouseMove                    // pointer moved
	KindMouseUp                      // button released
	KindClick                        // synthesized after a qualifying down/up pair
	KindDblClick                     // second click within the double-click interval
	KindContextMenu                  // context menu requested (right press)
	KindMouseWheel                   // wheel scrolled
	KindMouseOver                    // pointer moved onto an element (bubbles)
	KindMouseOut                     // pointer moved off an element (bubbles)
	KindMouseEnter                   // pointer entered a cell, tool overlay, or the surface
	KindMouseLeave                   // pointer left a cell, tool overlay, or the surface
	KindTouchStart                   // touch began
	KindTouchMove                    // touch moved
	KindTouchEnd                     // touch ended
	KindTouchCancel                  // touch cancelled by the platform
	KindDragStart                    // native drag of an image element began
)

var kindNames = [...]string{
	KindMouseDown:   "mousedown",
	KindMouseMove:   "mousemove",
	KindMouseUp:     "mouseup",
	KindClick:       "click",
	KindDblClick:    "dblclick",
	KindContextMenu: "contextmenu",
	KindMouseWheel:  "mousewheel",
	KindMouseOver:   "mouseover",
	KindMouseOut:    "mouseout",
	KindMouseEnter:  "mouseenter",
	KindMouseLeave:  "mouseleave",
	KindTouchStart:  "touchstart",
	KindTouchMove:   "touchmove",
	KindTouchEnd:    "touchend",
	KindTouchCancel: "touchcancel",
	KindDragStart:   "dragstart",
}

// String returns the DOM-style event name ("mousedown", "touchend", ...).
func (k EventKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsTouch reports whether k is one of the touch kinds.
func (k EventKind) IsTouch() bool {
	return k >= KindTouchStart && k <= KindTouchCancel
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// jsRound rounds half toward positive infinity (-2.5 -> -2).
func jsRound(v float64) float64 {
	return math.Floor(v + 0.5)
}
