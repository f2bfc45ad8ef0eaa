package minimap

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorWhite is the default stroke color for entity markers.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorRed is the default fill color for entity markers.
	ColorRed = Color{1, 0, 0, 1}
	// ColorBlack is the default background fill.
	ColorBlack = Color{0, 0, 0, 1}
)

// Vec2 is a 2D vector used for positions, offsets and deltas in every
// coordinate space the widget deals with.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Positive reports whether both dimensions are strictly greater than zero.
func (s Size) Positive() bool {
	return s.Width > 0 && s.Height > 0
}

// Max returns the componentwise maximum of s and o.
func (s Size) Max(o Size) Size {
	return Size{math.Max(s.Width, o.Width), math.Max(s.Height, o.Height)}
}

// Rect is an axis-aligned rectangle anchored at its origin corner.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// YAxis selects the direction of increasing Y in host space. It decides
// where the "top" drag band and the "bottom-right" resize corner live.
type YAxis uint8

const (
	// YDown puts the origin at the top-left with Y increasing downward
	// (Ebitengine, most 2D UI toolkits).
	YDown YAxis = iota
	// YUp puts the origin at the bottom-left with Y increasing upward.
	YUp
)

func (a YAxis) String() string {
	if a == YUp {
		return "up"
	}
	return "down"
}

// GestureKind identifies the active pointer gesture.
type GestureKind uint8

const (
	GestureIdle     GestureKind = iota // no gesture in progress
	GestureDragging                    // moving the overlay by its top band
	GestureResizing                    // resizing the overlay by its corner
)

func (k GestureKind) String() string {
	switch k {
	case GestureDragging:
		return "dragging"
	case GestureResizing:
		return "resizing"
	default:
		return "idle"
	}
}
