package screen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/arbor"
)

// PointerSink receives raw pointer state. *arbor.Surface implements it.
type PointerSink interface {
	Pointer(kind arbor.EventKind, x, y float64, button arbor.MouseButton, mods arbor.KeyModifiers)
	Wheel(x, y, delta float64, mods arbor.KeyModifiers)
	Touch(kind arbor.EventKind, touches []arbor.Vec2, mods arbor.KeyModifiers)
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() arbor.KeyModifiers {
	var mods arbor.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= arbor.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= arbor.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= arbor.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= arbor.ModMeta
	}
	return mods
}

// mouseFrame is the mouse state sampled in one tick.
type mouseFrame struct {
	X, Y    float64
	Pressed [3]bool // left, right, middle
	Mods    arbor.KeyModifiers
}

// mouseTracker turns per-tick mouse samples into press, move and release
// events. While a button is held, the button that started the press is
// reported for moves and the release.
type mouseTracker struct {
	started bool
	lastX   float64
	lastY   float64
	down    bool
	button  arbor.MouseButton
}

var trackedButtons = [3]arbor.MouseButton{arbor.MouseButtonLeft, arbor.MouseButtonRight, arbor.MouseButtonMiddle}

func (m *mouseTracker) step(sink PointerSink, f mouseFrame) {
	moved := !m.started || f.X != m.lastX || f.Y != m.lastY
	m.started = true
	m.lastX, m.lastY = f.X, f.Y

	if m.down {
		if moved {
			sink.Pointer(arbor.KindMouseMove, f.X, f.Y, m.button, f.Mods)
		}
		if !f.Pressed[m.button] {
			m.down = false
			sink.Pointer(arbor.KindMouseUp, f.X, f.Y, m.button, f.Mods)
		}
		return
	}

	if moved {
		sink.Pointer(arbor.KindMouseMove, f.X, f.Y, arbor.MouseButtonLeft, f.Mods)
	}
	for _, b := range trackedButtons {
		if f.Pressed[b] {
			m.down = true
			m.button = b
			sink.Pointer(arbor.KindMouseDown, f.X, f.Y, b, f.Mods)
			return
		}
	}
}

// touchTracker follows the first touch of a gesture; further fingers are
// ignored until it lifts.
type touchTracker struct {
	active bool
	id     ebiten.TouchID
	last   arbor.Vec2
	ids    []ebiten.TouchID
}

func (t *touchTracker) poll(sink PointerSink, mods arbor.KeyModifiers) {
	if !t.active {
		t.ids = inpututil.AppendJustPressedTouchIDs(t.ids[:0])
		if len(t.ids) == 0 {
			return
		}
		t.active = true
		t.id = t.ids[0]
		x, y := ebiten.TouchPosition(t.id)
		t.last = arbor.Vec2{X: float64(x), Y: float64(y)}
		sink.Touch(arbor.KindTouchStart, []arbor.Vec2{t.last}, mods)
		return
	}
	if inpututil.IsTouchJustReleased(t.id) {
		t.active = false
		sink.Touch(arbor.KindTouchEnd, []arbor.Vec2{t.last}, mods)
		return
	}
	x, y := ebiten.TouchPosition(t.id)
	p := arbor.Vec2{X: float64(x), Y: float64(y)}
	if p != t.last {
		t.last = p
		sink.Touch(arbor.KindTouchMove, []arbor.Vec2{p}, mods)
	}
}

// pollInput reads mouse, wheel and touch state from ebiten into sink.
func (h *Host) pollInput(sink PointerSink) {
	if h.processInjectedInput(sink) {
		return
	}
	mods := readModifiers()
	mx, my := ebiten.CursorPosition()
	f := mouseFrame{X: float64(mx), Y: float64(my), Mods: mods}
	f.Pressed[arbor.MouseButtonLeft] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	f.Pressed[arbor.MouseButtonRight] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	f.Pressed[arbor.MouseButtonMiddle] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	h.mouse.step(sink, f)

	if _, wy := ebiten.Wheel(); wy != 0 {
		sink.Wheel(f.X, f.Y, wy, mods)
	}
	h.touch.poll(sink, mods)
}
