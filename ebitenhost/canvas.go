package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/minimap"
)

type shapeKind uint8

const (
	shapeRect shapeKind = iota
	shapeCircle
	shapePath
)

// shape is a retained drawable owned by a Canvas. It satisfies every shape
// interface of the minimap package; the kind decides which geometry is drawn.
type shape struct {
	kind    shapeKind
	rect    minimap.Rect
	center  minimap.Vec2
	radius  float64
	points  []minimap.Vec2
	style   minimap.ShapeStyle
	z       int
	order   int // creation order, tie-break for equal z
	visible bool
	removed bool
	canvas  *Canvas
}

func (s *shape) SetStyle(st minimap.ShapeStyle) { s.style = st }
func (s *shape) SetVisible(v bool)             { s.visible = v }
func (s *shape) SetRect(r minimap.Rect)        { s.rect = r }

func (s *shape) SetZIndex(z int) {
	if s.z != z {
		s.z = z
		s.canvas.dirty = true
	}
}

func (s *shape) SetCircle(c minimap.Vec2, radius float64) {
	s.center = c
	s.radius = radius
}

func (s *shape) SetPoints(pts []minimap.Vec2) {
	s.points = append(s.points[:0], pts...)
}

func (s *shape) Remove() {
	if s.removed {
		return
	}
	s.removed = true
	s.canvas.dirty = true
}

// Canvas is a retained-mode minimap.Renderer that draws onto an Ebitengine
// image. Shapes are drawn in ascending z order, creation order breaking ties,
// translated by the origin set with SetOrigin.
type Canvas struct {
	// Antialias enables anti-aliased vector drawing.
	Antialias bool

	shapes    []*shape
	sortBuf   []*shape
	origin    minimap.Vec2
	nextOrder int
	dirty     bool
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{Antialias: true}
}

func (c *Canvas) add(k shapeKind) *shape {
	c.nextOrder++
	s := &shape{kind: k, visible: true, order: c.nextOrder, canvas: c}
	c.shapes = append(c.shapes, s)
	c.dirty = true
	return s
}

// NewRect implements minimap.Renderer.
func (c *Canvas) NewRect() minimap.RectShape { return c.add(shapeRect) }

// NewCircle implements minimap.Renderer.
func (c *Canvas) NewCircle() minimap.CircleShape { return c.add(shapeCircle) }

// NewPath implements minimap.Renderer.
func (c *Canvas) NewPath() minimap.PathShape { return c.add(shapePath) }

// SetOrigin implements minimap.Renderer.
func (c *Canvas) SetOrigin(o minimap.Vec2) { c.origin = o }

// Origin returns the current translation applied to every shape.
func (c *Canvas) Origin() minimap.Vec2 { return c.origin }

// Len returns the number of shapes that have not been removed.
func (c *Canvas) Len() int {
	c.sortShapes()
	return len(c.shapes)
}

// Draw renders every visible shape onto dst.
func (c *Canvas) Draw(dst *ebiten.Image) {
	c.sortShapes()
	ox, oy := float32(c.origin.X), float32(c.origin.Y)
	for _, s := range c.shapes {
		if !s.visible || s.style.Opacity <= 0 {
			continue
		}
		switch s.kind {
		case shapeRect:
			c.drawRect(dst, s, ox, oy)
		case shapeCircle:
			c.drawCircle(dst, s, ox, oy)
		case shapePath:
			c.drawPath(dst, s, ox, oy)
		}
	}
}

func (c *Canvas) drawRect(dst *ebiten.Image, s *shape, ox, oy float32) {
	x, y := ox+float32(s.rect.X), oy+float32(s.rect.Y)
	w, h := float32(s.rect.Width), float32(s.rect.Height)
	if s.style.Filled {
		vector.FillRect(dst, x, y, w, h, toColor(s.style.Fill, s.style.Opacity), c.Antialias)
	}
	if s.style.StrokeWidth > 0 {
		vector.StrokeRect(dst, x, y, w, h, float32(s.style.StrokeWidth), toColor(s.style.Stroke, s.style.Opacity), c.Antialias)
	}
}

func (c *Canvas) drawCircle(dst *ebiten.Image, s *shape, ox, oy float32) {
	if s.radius <= 0 {
		return
	}
	cx, cy := ox+float32(s.center.X), oy+float32(s.center.Y)
	r := float32(s.radius)
	if s.style.Filled {
		vector.DrawFilledCircle(dst, cx, cy, r, toColor(s.style.Fill, s.style.Opacity), c.Antialias)
	}
	if s.style.StrokeWidth > 0 {
		vector.StrokeCircle(dst, cx, cy, r, float32(s.style.StrokeWidth), toColor(s.style.Stroke, s.style.Opacity), c.Antialias)
	}
}

// drawPath strokes a closed polygon. Paths are never filled.
func (c *Canvas) drawPath(dst *ebiten.Image, s *shape, ox, oy float32) {
	n := len(s.points)
	if n < 2 || s.style.StrokeWidth <= 0 {
		return
	}
	clr := toColor(s.style.Stroke, s.style.Opacity)
	w := float32(s.style.StrokeWidth)
	for i := 0; i < n; i++ {
		a := s.points[i]
		b := s.points[(i+1)%n]
		vector.StrokeLine(dst,
			ox+float32(a.X), oy+float32(a.Y),
			ox+float32(b.X), oy+float32(b.Y),
			w, clr, c.Antialias)
	}
}

// toColor converts a minimap color and an opacity multiplier to a color
// Ebitengine accepts.
func toColor(c minimap.Color, opacity float64) color.NRGBA {
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A * opacity),
	}
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// --- Ordering ---

// sortShapes drops removed shapes and restores draw order when a shape was
// added, removed or restacked since the last call.
func (c *Canvas) sortShapes() {
	if !c.dirty {
		return
	}
	c.dirty = false

	live := c.shapes[:0]
	for _, s := range c.shapes {
		if !s.removed {
			live = append(live, s)
		}
	}
	for i := len(live); i < len(c.shapes); i++ {
		c.shapes[i] = nil
	}
	c.shapes = live
	c.mergeSort()
}

// shapeLessOrEqual returns true if a should draw before or together with b.
func shapeLessOrEqual(a, b *shape) bool {
	if a.z != b.z {
		return a.z < b.z
	}
	return a.order <= b.order
}

// mergeSort sorts c.shapes in place using c.sortBuf as scratch space.
// Bottom-up merge sort: no allocations once the buffer reaches its
// high-water mark.
func (c *Canvas) mergeSort() {
	n := len(c.shapes)
	if n <= 1 {
		return
	}
	if cap(c.sortBuf) < n {
		c.sortBuf = make([]*shape, n)
	}
	c.sortBuf = c.sortBuf[:n]

	a := c.shapes
	b := c.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(c.shapes, c.sortBuf)
	}
	clear(c.sortBuf)
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []*shape, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if shapeLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
