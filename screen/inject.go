package screen

import "github.com/phanxgames/arbor"

// syntheticFrame is one queued mouse sample. Client coordinates are used,
// identical to real mouse input.
type syntheticFrame struct {
	mouseFrame
	wheel float64
}

func pressedFrame(x, y float64, button arbor.MouseButton, down bool) syntheticFrame {
	f := syntheticFrame{mouseFrame: mouseFrame{X: x, Y: y}}
	f.Pressed[button] = down
	return f
}

// InjectPress queues a left press at (x, y). Each queued sample replaces
// real mouse input for one tick.
func (h *Host) InjectPress(x, y float64) {
	h.injectQueue = append(h.injectQueue, pressedFrame(x, y, arbor.MouseButtonLeft, true))
}

// InjectMove queues a move to (x, y) with the left button held. Use it
// between InjectPress and InjectRelease to drag.
func (h *Host) InjectMove(x, y float64) {
	h.injectQueue = append(h.injectQueue, pressedFrame(x, y, arbor.MouseButtonLeft, true))
}

// InjectRelease queues a release at (x, y).
func (h *Host) InjectRelease(x, y float64) {
	h.injectQueue = append(h.injectQueue, pressedFrame(x, y, arbor.MouseButtonLeft, false))
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two ticks.
func (h *Host) InjectClick(x, y float64) {
	h.InjectPress(x, y)
	h.InjectRelease(x, y)
}

// InjectDblClick queues two clicks at the same point.
func (h *Host) InjectDblClick(x, y float64) {
	h.InjectClick(x, y)
	h.InjectClick(x, y)
}

// InjectContextMenu queues a right press and release at (x, y).
func (h *Host) InjectContextMenu(x, y float64) {
	h.injectQueue = append(h.injectQueue,
		pressedFrame(x, y, arbor.MouseButtonRight, true),
		pressedFrame(x, y, arbor.MouseButtonRight, false))
}

// InjectWheel queues a wheel step at (x, y).
func (h *Host) InjectWheel(x, y, delta float64) {
	f := pressedFrame(x, y, arbor.MouseButtonLeft, false)
	f.wheel = delta
	h.injectQueue = append(h.injectQueue, f)
}

// InjectDrag queues a full drag: press at (fromX, fromY), moves linearly
// interpolated over frames-2 intermediate ticks, and release at (toX, toY).
// The sequence consumes frames ticks; the minimum is 2.
func (h *Host) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	h.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		h.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	h.InjectRelease(toX, toY)
}

// Pending returns the number of queued samples.
func (h *Host) Pending() int { return len(h.injectQueue) }

// processInjectedInput pops one queued sample into sink. Returns true if a
// sample was consumed, in which case real mouse input is skipped.
func (h *Host) processInjectedInput(sink PointerSink) bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	f := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	h.mouse.step(sink, f.mouseFrame)
	if f.wheel != 0 {
		sink.Wheel(f.X, f.Y, f.wheel, f.Mods)
	}
	return true
}
