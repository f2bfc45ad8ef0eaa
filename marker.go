package minimap

// Default marker appearance used when an entity leaves a style field unset.
const (
	DefaultMarkerRadius      = 1.0
	DefaultMarkerStrokeWidth = 0.5
)

// Style describes how an entity is drawn on the overlay. The zero value is
// a valid style: unset fields resolve to a red fill, a white 0.5-wide stroke
// and a radius of 1. A negative StrokeWidth disables the outline.
//
// Embed Style in an entity type to get MarkerStyle for free:
//
//	type Unit struct {
//		minimap.Style
//		X, Y float64
//	}
//
//	func (u *Unit) WorldPosition() minimap.Vec2 { return minimap.Vec2{X: u.X, Y: u.Y} }
type Style struct {
	Fill        Color
	Stroke      Color
	StrokeWidth float64
	Radius      float64
}

// MarkerStyle returns s with unset fields replaced by the defaults.
func (s Style) MarkerStyle() Style {
	if s.Fill == (Color{}) {
		s.Fill = ColorRed
	}
	if s.Stroke == (Color{}) {
		s.Stroke = ColorWhite
	}
	if s.StrokeWidth == 0 {
		s.StrokeWidth = DefaultMarkerStrokeWidth
	}
	if s.Radius <= 0 {
		s.Radius = DefaultMarkerRadius
	}
	return s
}

// shapeStyle converts a resolved marker style to renderer paint.
func (s Style) shapeStyle() ShapeStyle {
	w := s.StrokeWidth
	if w < 0 {
		w = 0
	}
	return ShapeStyle{
		Fill:        s.Fill,
		Stroke:      s.Stroke,
		StrokeWidth: w,
		Opacity:     1,
		Filled:      true,
	}
}

// Entity is anything that can be shown on the overlay: it has a world
// position and a marker style. Implementations are read once per
// UpdateEntities call.
type Entity interface {
	WorldPosition() Vec2
	MarkerStyle() Style
}

// Point is a static entity: a fixed world position with an embedded style.
type Point struct {
	Style
	Position Vec2
}

// WorldPosition returns p.Position.
func (p Point) WorldPosition() Vec2 { return p.Position }

type entityAdapter struct {
	position func() Vec2
	style    Style
}

func (a entityAdapter) WorldPosition() Vec2 { return a.position() }
func (a entityAdapter) MarkerStyle() Style  { return a.style.MarkerStyle() }

// Adapt wraps a position callback and a style into an Entity, for values
// that cannot implement the interface themselves (ECS rows, physics bodies).
func Adapt(position func() Vec2, style Style) Entity {
	return entityAdapter{position: position, style: style}
}

// Entities erases a homogeneous slice into the []Entity that UpdateEntities
// accepts.
func Entities[T Entity](items []T) []Entity {
	out := make([]Entity, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

// Marker is the snapshot of one entity taken by UpdateEntities.
type Marker struct {
	// WorldPosition is the entity position at update time.
	WorldPosition Vec2
	// Position is WorldPosition projected into overlay space.
	Position Vec2
	// Style is the resolved entity style at update time.
	Style Style
}

// markerRegistry holds the current marker set and the circle shapes that
// draw it. Shapes are pooled to a high-water mark; markers are not.
type markerRegistry struct {
	markers   []Marker
	shapes    []CircleShape
	worldSize Size
	zIndex    int
}

// replace discards the current markers and snapshots entities.
func (r *markerRegistry) replace(entities []Entity, worldSize, overlaySize Size, rend Renderer) {
	markers := make([]Marker, len(entities))
	for i, e := range entities {
		wp := e.WorldPosition()
		markers[i] = Marker{
			WorldPosition: wp,
			Position:      ToOverlay(wp, worldSize, overlaySize),
			Style:         e.MarkerStyle().MarkerStyle(),
		}
	}
	r.markers = markers
	r.worldSize = worldSize
	r.render(rend)
}

// reproject recomputes overlay positions from the stored world snapshots.
// Used when the overlay is resized between entity updates.
func (r *markerRegistry) reproject(overlaySize Size, rend Renderer) {
	if len(r.markers) == 0 {
		return
	}
	for i := range r.markers {
		m := &r.markers[i]
		m.Position = ToOverlay(m.WorldPosition, r.worldSize, overlaySize)
	}
	r.render(rend)
}

// render pushes every marker to its shape, growing or trimming the pool.
func (r *markerRegistry) render(rend Renderer) {
	for len(r.shapes) < len(r.markers) {
		r.shapes = append(r.shapes, rend.NewCircle())
	}
	for i := len(r.markers); i < len(r.shapes); i++ {
		r.shapes[i].Remove()
		r.shapes[i] = nil
	}
	r.shapes = r.shapes[:len(r.markers)]

	for i, m := range r.markers {
		sh := r.shapes[i]
		sh.SetCircle(m.Position, m.Style.Radius)
		sh.SetStyle(m.Style.shapeStyle())
		sh.SetZIndex(r.zIndex)
		sh.SetVisible(true)
	}
}

// setZIndex restacks every marker shape.
func (r *markerRegistry) setZIndex(z int) {
	r.zIndex = z
	for _, sh := range r.shapes {
		sh.SetZIndex(z)
	}
}
