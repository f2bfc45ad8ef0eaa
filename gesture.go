package minimap

import (
	"time"

	"github.com/rs/zerolog"
)

// Gesture defaults.
const (
	DefaultGestureTimeout = 5 * time.Second
	DefaultZoneSize       = 25.0
)

// DefaultMinSize is the smallest size a resize can shrink the overlay to.
var DefaultMinSize = Size{Width: 100, Height: 100}

// --- Gesture state (tagged variant) ---

// gestureState is one of idleGesture, dragGesture or resizeGesture. Holding
// a single value makes "at most one gesture at a time" structural.
type gestureState interface {
	kind() GestureKind
}

type idleGesture struct{}

type dragGesture struct {
	start        Vec2 // overlay-local press point
	offset       Vec2 // host press point minus overlay position
	lastActivity time.Time
}

type resizeGesture struct {
	start            Vec2 // overlay-local press point
	startHost        Vec2 // host-space press point
	originalSize     Size
	originalPosition Vec2
	lastActivity     time.Time
}

func (idleGesture) kind() GestureKind   { return GestureIdle }
func (dragGesture) kind() GestureKind   { return GestureDragging }
func (resizeGesture) kind() GestureKind { return GestureResizing }

// --- Hit zones ---

// gestureZones classifies overlay-local points into the drag band and the
// resize corner for a given Y-axis convention.
type gestureZones struct {
	axis YAxis
	size float64
}

// inResize reports whether l is in the corner square at the reading-order
// bottom-right of an overlay of the given size.
func (z gestureZones) inResize(l Vec2, s Size) bool {
	if l.X < s.Width-z.size || l.X > s.Width {
		return false
	}
	if z.axis == YUp {
		return l.Y >= 0 && l.Y <= z.size
	}
	return l.Y >= s.Height-z.size && l.Y <= s.Height
}

// inDrag reports whether l is in the full-width band along the reading-order
// top edge.
func (z gestureZones) inDrag(l Vec2, s Size) bool {
	if l.X < 0 || l.X > s.Width {
		return false
	}
	if z.axis == YUp {
		return l.Y >= s.Height-z.size && l.Y <= s.Height
	}
	return l.Y >= 0 && l.Y <= z.size
}

// --- State machine ---

// gestureMachine runs the drag/resize/click state machine. It mutates the
// geometry it is handed and reports what changed; the overlay applies the
// side effects (re-render, listener).
type gestureMachine struct {
	state   gestureState
	zones   gestureZones
	timeout time.Duration
	minSize Size
	now     func() time.Time
	log     *zerolog.Logger
}

func newGestureMachine(axis YAxis, zone float64, timeout time.Duration, minSize Size, now func() time.Time, log *zerolog.Logger) gestureMachine {
	return gestureMachine{
		state:   idleGesture{},
		zones:   gestureZones{axis: axis, size: zone},
		timeout: timeout,
		minSize: minSize,
		now:     now,
		log:     log,
	}
}

// kind returns the active gesture.
func (m *gestureMachine) kind() GestureKind {
	return m.state.kind()
}

// active reports whether a drag or resize is in progress.
func (m *gestureMachine) active() bool {
	return m.state.kind() != GestureIdle
}

// reset drops any gesture in progress.
func (m *gestureMachine) reset() {
	m.state = idleGesture{}
}

// recoverStuck resets a drag or resize whose last move is older than the
// timeout. A lost pointer-up would otherwise wedge the widget forever.
func (m *gestureMachine) recoverStuck(now time.Time) {
	var last time.Time
	switch st := m.state.(type) {
	case dragGesture:
		last = st.lastActivity
	case resizeGesture:
		last = st.lastActivity
	default:
		return
	}
	if idle := now.Sub(last); idle > m.timeout {
		m.log.Debug().
			Stringer("gesture", m.state.kind()).
			Dur("idle", idle).
			Msg("stuck gesture reset")
		m.state = idleGesture{}
	}
}

// down classifies a press. p is in host space, l is p relative to the
// overlay origin.
func (m *gestureMachine) down(p, l Vec2, g Geometry) {
	now := m.now()
	m.recoverStuck(now)

	switch {
	case m.zones.inResize(l, g.Size):
		m.state = resizeGesture{
			start:            l,
			startHost:        p,
			originalSize:     g.Size,
			originalPosition: g.Position,
			lastActivity:     now,
		}
	case m.zones.inDrag(l, g.Size):
		m.state = dragGesture{
			start:        l,
			offset:       p.Sub(g.Position),
			lastActivity: now,
		}
	default:
		return
	}
	m.log.Debug().
		Stringer("gesture", m.state.kind()).
		Float64("x", l.X).Float64("y", l.Y).
		Msg("gesture started")
}

// move advances a drag or resize to host point p, writing the new geometry
// into g. It reports whether the size changed.
func (m *gestureMachine) move(p Vec2, g *Geometry) (resized bool) {
	switch st := m.state.(type) {
	case dragGesture:
		st.lastActivity = m.now()
		m.state = st
		g.Position = p.Sub(st.offset)
	case resizeGesture:
		st.lastActivity = m.now()
		m.state = st
		delta := p.Sub(st.startHost)
		if m.zones.axis == YUp {
			// Pointer moving down grows the overlay; the top edge stays put.
			delta.Y = -delta.Y
		}
		size := Size{
			Width:  st.originalSize.Width + delta.X,
			Height: st.originalSize.Height + delta.Y,
		}.Max(m.minSize)
		if m.zones.axis == YUp {
			g.Position.Y = st.originalPosition.Y + st.originalSize.Height - size.Height
		}
		resized = size != g.Size
		g.Size = size
	}
	return resized
}

// up ends the current gesture. It reports whether a drag or resize was in
// progress; the overlay only treats the release as a click when it was not.
func (m *gestureMachine) up() (ended bool) {
	if !m.active() {
		return false
	}
	m.log.Debug().Stringer("gesture", m.state.kind()).Msg("gesture ended")
	m.state = idleGesture{}
	return true
}
