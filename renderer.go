package minimap

// ShapeStyle is the paint applied to a retained shape. Opacity multiplies
// the alpha of both Fill and Stroke. A StrokeWidth of zero draws no outline.
type ShapeStyle struct {
	Fill        Color
	Stroke      Color
	StrokeWidth float64
	Opacity     float64
	Filled      bool
}

// Shape is a retained drawable created by a Renderer. Coordinates passed to
// the concrete shape setters are overlay-local; the renderer offsets them by
// the origin set with Renderer.SetOrigin.
type Shape interface {
	SetStyle(style ShapeStyle)
	SetZIndex(z int)
	SetVisible(visible bool)
	// Remove detaches the shape from its renderer. Further calls on a
	// removed shape are no-ops.
	Remove()
}

// RectShape is an axis-aligned rectangle.
type RectShape interface {
	Shape
	SetRect(r Rect)
}

// CircleShape is a circle given by center and radius.
type CircleShape interface {
	Shape
	SetCircle(center Vec2, radius float64)
}

// PathShape is a closed polygon path. Only its outline is drawn unless the
// style asks for a fill.
type PathShape interface {
	Shape
	SetPoints(points []Vec2)
}

// Renderer is the drawing capability the overlay consumes. Implementations
// own the actual scene graph or draw calls; the overlay only creates shapes
// and keeps them up to date.
type Renderer interface {
	NewRect() RectShape
	NewCircle() CircleShape
	NewPath() PathShape
	// SetOrigin moves every shape so that overlay-local (0,0) lands on
	// origin in host space.
	SetOrigin(origin Vec2)
}

// nopRenderer is used when no Renderer is configured so the widget can run
// headless (tests, servers replaying input).
type nopRenderer struct{}

type nopShape struct{}

func (nopRenderer) NewRect() RectShape     { return nopShape{} }
func (nopRenderer) NewCircle() CircleShape { return nopShape{} }
func (nopRenderer) NewPath() PathShape     { return nopShape{} }
func (nopRenderer) SetOrigin(Vec2)         {}

func (nopShape) SetStyle(ShapeStyle)     {}
func (nopShape) SetZIndex(int)           {}
func (nopShape) SetVisible(bool)         {}
func (nopShape) Remove()                 {}
func (nopShape) SetRect(Rect)            {}
func (nopShape) SetCircle(Vec2, float64) {}
func (nopShape) SetPoints([]Vec2)        {}
