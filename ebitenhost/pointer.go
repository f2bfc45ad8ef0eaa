package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/minimap"
)

type pointerAction uint8

const (
	actionPress pointerAction = iota
	actionMove
	actionRelease
	actionSecondary
)

// pointerEvent is a single queued pointer event in screen coordinates.
type pointerEvent struct {
	action pointerAction
	pos    minimap.Vec2
}

// Pointer feeds mouse and touch input to an overlay once per frame. Events
// queued with the Inject methods take priority over real input: while any
// are pending, one is delivered per Update and the devices are not polled.
type Pointer struct {
	// Space converts screen coordinates to the overlay's host space. Nil
	// means the overlay lives in screen space.
	Space minimap.CoordinateSpace

	overlay *minimap.Overlay
	queue   []pointerEvent

	touchID   ebiten.TouchID
	touching  bool
	last      minimap.Vec2
	lastValid bool
	consumed  bool
}

// NewPointer creates a pointer source for o.
func NewPointer(o *minimap.Overlay) *Pointer {
	return &Pointer{overlay: o}
}

// Consumed reports whether the overlay consumed any event during the last
// Update. Game code should skip its own pointer handling when it did.
func (p *Pointer) Consumed() bool { return p.consumed }

// Pending returns the number of injected events not yet delivered.
func (p *Pointer) Pending() int { return len(p.queue) }

// Update delivers this frame's pointer events.
func (p *Pointer) Update() {
	p.consumed = false
	if p.processInjected() {
		return
	}
	p.pollMouse()
	p.pollTouch()
}

// --- Injection ---

// InjectPress queues a primary press at the given screen coordinates.
// Queued events are delivered one per frame.
func (p *Pointer) InjectPress(x, y float64) {
	p.queue = append(p.queue, pointerEvent{action: actionPress, pos: minimap.Vec2{X: x, Y: y}})
}

// InjectMove queues a pointer move at the given screen coordinates. Use it
// between InjectPress and InjectRelease to simulate a drag.
func (p *Pointer) InjectMove(x, y float64) {
	p.queue = append(p.queue, pointerEvent{action: actionMove, pos: minimap.Vec2{X: x, Y: y}})
}

// InjectRelease queues a primary release at the given screen coordinates.
func (p *Pointer) InjectRelease(x, y float64) {
	p.queue = append(p.queue, pointerEvent{action: actionRelease, pos: minimap.Vec2{X: x, Y: y}})
}

// InjectSecondary queues a secondary (right button) press.
func (p *Pointer) InjectSecondary(x, y float64) {
	p.queue = append(p.queue, pointerEvent{action: actionSecondary, pos: minimap.Vec2{X: x, Y: y}})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (p *Pointer) InjectClick(x, y float64) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 linearly
// interpolated moves and a release at (toX, toY). The sequence consumes
// frames frames; the minimum is 2.
func (p *Pointer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		p.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	p.InjectRelease(toX, toY)
}

// processInjected pops and delivers one queued event. It reports whether
// an event was delivered.
func (p *Pointer) processInjected() bool {
	if len(p.queue) == 0 {
		return false
	}
	evt := p.queue[0]
	copy(p.queue, p.queue[1:])
	p.queue = p.queue[:len(p.queue)-1]
	p.dispatch(evt)
	return true
}

// --- Devices ---

func (p *Pointer) pollMouse() {
	mx, my := ebiten.CursorPosition()
	pos := minimap.Vec2{X: float64(mx), Y: float64(my)}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		p.dispatch(pointerEvent{action: actionSecondary, pos: pos})
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		p.dispatch(pointerEvent{action: actionPress, pos: pos})
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		p.dispatch(pointerEvent{action: actionRelease, pos: pos})
	case !p.lastValid || pos != p.last:
		if !p.touching {
			p.dispatch(pointerEvent{action: actionMove, pos: pos})
		}
	}
}

// pollTouch tracks a single touch as the primary pointer. Further touches
// are ignored until it lifts.
func (p *Pointer) pollTouch() {
	if p.touching {
		if inpututil.IsTouchJustReleased(p.touchID) {
			x, y := inpututil.TouchPositionInPreviousTick(p.touchID)
			p.touching = false
			p.dispatch(pointerEvent{action: actionRelease, pos: minimap.Vec2{X: float64(x), Y: float64(y)}})
			return
		}
		x, y := ebiten.TouchPosition(p.touchID)
		pos := minimap.Vec2{X: float64(x), Y: float64(y)}
		if pos != p.last {
			p.dispatch(pointerEvent{action: actionMove, pos: pos})
		}
		return
	}

	ids := inpututil.AppendJustPressedTouchIDs(nil)
	if len(ids) == 0 {
		return
	}
	p.touchID = ids[0]
	p.touching = true
	x, y := ebiten.TouchPosition(p.touchID)
	p.dispatch(pointerEvent{action: actionPress, pos: minimap.Vec2{X: float64(x), Y: float64(y)}})
}

// dispatch forwards evt to the overlay and records whether it was consumed.
func (p *Pointer) dispatch(evt pointerEvent) {
	var consumed bool
	switch evt.action {
	case actionPress:
		consumed = p.overlay.HandlePointerDown(evt.pos, p.Space)
	case actionMove:
		consumed = p.overlay.HandlePointerMoved(evt.pos, p.Space)
	case actionRelease:
		consumed = p.overlay.HandlePointerUp(evt.pos, p.Space)
	case actionSecondary:
		consumed = p.overlay.HandlePointerSecondaryDown(evt.pos, p.Space)
	}
	p.last = evt.pos
	p.lastValid = true
	p.consumed = p.consumed || consumed
}
