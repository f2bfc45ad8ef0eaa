package minimap

import (
	"time"

	"github.com/rs/zerolog"
)

// Layering offsets added to Appearance.ZIndex.
const (
	zBackground = iota
	zMarkers
	zFrame
	zAnchor
	zPulse
)

// Geometry is the overlay's placement in host space.
type Geometry struct {
	// Position is the overlay origin: top-left under YDown, bottom-left
	// under YUp.
	Position Vec2
	Size     Size
}

// Contains reports whether an overlay-local point lies inside the overlay.
// Points on the edge are considered inside.
func (g Geometry) Contains(local Vec2) bool {
	return Rect{Width: g.Size.Width, Height: g.Size.Height}.Contains(local.X, local.Y)
}

// Appearance is the styling surface of the overlay. Edit the fields of
// Overlay.Appearance and call Refresh, or let the next update pick them up.
type Appearance struct {
	BackgroundFill        Color
	BackgroundStroke      Color
	BackgroundStrokeWidth float64
	BackgroundOpacity     float64

	FrameColor   Color
	FrameWidth   float64
	FrameOpacity float64

	// ZIndex is the base layer; the overlay's shapes stack just above it.
	ZIndex int

	// AnchorMarker is the fixed style of the optional anchor marker.
	AnchorMarker Style

	PulseColor  Color
	PulseRadius float64
}

// DefaultAppearance returns the styling new overlays start with.
func DefaultAppearance() Appearance {
	return Appearance{
		BackgroundFill:        ColorBlack,
		BackgroundStroke:      ColorWhite,
		BackgroundStrokeWidth: 1,
		BackgroundOpacity:     0.6,
		FrameColor:            ColorWhite,
		FrameWidth:            1,
		FrameOpacity:          0.9,
		ZIndex:                100,
		AnchorMarker: Style{
			Fill:        Color{R: 0.2, G: 0.5, B: 1, A: 1},
			Stroke:      ColorWhite,
			StrokeWidth: 1,
			Radius:      3,
		},
		PulseColor:  ColorWhite,
		PulseRadius: 6,
	}
}

// Config configures a new Overlay. The zero value is usable: every unset
// field falls back to its default.
type Config struct {
	// YAxis is the host's Y direction. Defaults to YDown.
	YAxis YAxis
	// Renderer draws the overlay. Nil runs headless.
	Renderer Renderer
	// Host supplies the scene size for click conversion. May be attached
	// later with AttachHost.
	Host Host
	// Clock returns the current time for gesture timeouts. Defaults to time.Now.
	Clock func() time.Time
	// Logger receives gesture debug events. Nil disables logging unless
	// debug mode is on.
	Logger *zerolog.Logger

	// GestureTimeout is how long a drag or resize may go without a move
	// before the next press discards it. Defaults to DefaultGestureTimeout.
	GestureTimeout time.Duration
	// MinSize is the resize floor. Defaults to DefaultMinSize.
	MinSize Size
	// ZoneSize is the thickness of the drag band and the resize corner.
	// Defaults to DefaultZoneSize.
	ZoneSize float64

	// Appearance overrides DefaultAppearance when non-nil.
	Appearance *Appearance
}

// anchorMarker is the last position handed to UpdateAnchorMarker.
type anchorMarker struct {
	world     Vec2
	worldSize Size
	position  Vec2
	valid     bool
}

// Overlay is the mini-map widget. It owns its geometry, projects entities
// and the camera viewport into overlay space, and turns pointer gestures
// into moves, resizes and world-space clicks.
//
// An Overlay is not safe for concurrent use; drive it from the game loop.
type Overlay struct {
	// Appearance is the current styling.
	Appearance Appearance
	// AnchorMarkerEnabled turns on the anchor marker. Disabled by default.
	AnchorMarkerEnabled bool
	// RepositionOnClick is reported to interested hosts only. Clicks always
	// reach the listener, which decides what to do with them.
	RepositionOnClick bool
	// PulseEnabled draws a fading circle where the overlay was clicked.
	PulseEnabled bool
	// PulseDuration is the pulse fade time in seconds.
	PulseDuration float32

	geom     Geometry
	defaults Geometry
	axis     YAxis
	minSize  Size

	rend Renderer
	host Host
	log  zerolog.Logger

	gestures gestureMachine
	markers  markerRegistry
	cam      camera
	frame    ViewportFrame
	anchor   anchorMarker
	pulse    clickPulse

	background  RectShape
	frameShape  PathShape
	anchorShape CircleShape

	listener       listenerSlot
	nextListenerID uint32
}

// New creates an overlay of the given size with its origin at (0, 0).
// Panics if size is not positive.
func New(size Size, cfg Config) *Overlay {
	return newOverlay(Geometry{Size: size}, cfg)
}

// NewAnchored creates an overlay of the given size placed at one of the
// anchor presets inside a host of hostSize, margin units from the edges.
// The resulting geometry is what a secondary press resets to.
func NewAnchored(size Size, anchor Anchor, hostSize Size, margin float64, cfg Config) *Overlay {
	pos := AnchorPosition(anchor, size, hostSize, margin, cfg.YAxis)
	return newOverlay(Geometry{Position: pos, Size: size}, cfg)
}

func newOverlay(g Geometry, cfg Config) *Overlay {
	if !g.Size.Positive() {
		panic("minimap: overlay size must be positive")
	}
	if cfg.Renderer == nil {
		cfg.Renderer = nopRenderer{}
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.GestureTimeout <= 0 {
		cfg.GestureTimeout = DefaultGestureTimeout
	}
	if !cfg.MinSize.Positive() {
		cfg.MinSize = DefaultMinSize
	}
	if cfg.ZoneSize <= 0 {
		cfg.ZoneSize = DefaultZoneSize
	}
	appearance := DefaultAppearance()
	if cfg.Appearance != nil {
		appearance = *cfg.Appearance
	}

	o := &Overlay{
		Appearance:    appearance,
		PulseDuration: DefaultPulseDuration,
		geom:          g,
		defaults:      g,
		axis:          cfg.YAxis,
		minSize:       cfg.MinSize,
		rend:          cfg.Renderer,
		host:          cfg.Host,
		log:           newLogger(cfg.Logger),
	}
	o.gestures = newGestureMachine(cfg.YAxis, cfg.ZoneSize, cfg.GestureTimeout, cfg.MinSize, cfg.Clock, &o.log)

	o.background = o.rend.NewRect()
	o.frameShape = o.rend.NewPath()
	o.frameShape.SetVisible(false)
	o.anchorShape = o.rend.NewCircle()
	o.anchorShape.SetVisible(false)

	o.rend.SetOrigin(g.Position)
	o.Refresh()
	return o
}

// --- Geometry ---

// Geometry returns the current placement.
func (o *Overlay) Geometry() Geometry { return o.geom }

// Position returns the overlay origin in host space.
func (o *Overlay) Position() Vec2 { return o.geom.Position }

// Size returns the current overlay size.
func (o *Overlay) Size() Size { return o.geom.Size }

// DefaultGeometry returns the placement recorded at construction.
func (o *Overlay) DefaultGeometry() Geometry { return o.defaults }

// YAxis returns the axis convention the overlay was built with.
func (o *Overlay) YAxis() YAxis { return o.axis }

// Contains reports whether an overlay-local point lies inside the overlay.
func (o *Overlay) Contains(local Vec2) bool {
	return o.geom.Contains(local)
}

// Local converts a host-space point to overlay-local space.
func (o *Overlay) Local(host Vec2) Vec2 {
	return host.Sub(o.geom.Position)
}

// SetPosition moves the overlay origin. No bounds are enforced.
func (o *Overlay) SetPosition(p Vec2) {
	o.geom.Position = p
	o.rend.SetOrigin(p)
}

// SetSize resizes the overlay, clamped to the minimum size, and re-projects
// everything drawn on it.
func (o *Overlay) SetSize(s Size) {
	s = s.Max(o.minSize)
	if s == o.geom.Size {
		return
	}
	o.geom.Size = s
	o.relayout()
}

// ResetLayout restores the position and size recorded at construction and
// drops any gesture in progress.
func (o *Overlay) ResetLayout() {
	o.gestures.reset()
	sizeChanged := o.geom.Size != o.defaults.Size
	o.geom = o.defaults
	o.rend.SetOrigin(o.geom.Position)
	if sizeChanged {
		o.relayout()
	}
	o.log.Debug().
		Float64("x", o.geom.Position.X).Float64("y", o.geom.Position.Y).
		Msg("layout reset")
}

// Gesture returns the gesture in progress.
func (o *Overlay) Gesture() GestureKind {
	return o.gestures.kind()
}

// relayout re-projects markers, the viewport frame and the anchor marker
// after a size change.
func (o *Overlay) relayout() {
	o.markers.reproject(o.geom.Size, o.rend)
	if o.cam.valid {
		o.frame = ComputeViewportFrame(o.cam.center, o.cam.zoom, o.cam.worldSize, o.geom.Size, o.axis)
		o.frameShape.SetPoints(o.frame.Points())
	}
	if o.anchor.valid {
		o.anchor.position = ToOverlay(o.anchor.world, o.anchor.worldSize, o.geom.Size)
		o.renderAnchor()
	}
	o.renderBackground()
}

// --- Host ---

// AttachHost sets the host used to convert clicks to world space.
func (o *Overlay) AttachHost(h Host) { o.host = h }

// DetachHost removes the host. Clicks then convert to the zero point.
func (o *Overlay) DetachHost() { o.host = nil }

// ToWorld converts an overlay-local point to world space using the host's
// scene size at call time. Without a host it returns the zero point.
func (o *Overlay) ToWorld(local Vec2) Vec2 {
	if o.host == nil {
		return Vec2{}
	}
	return ToWorld(local, o.geom.Size, o.host.SceneSize())
}

// --- Per-frame updates ---

// UpdateEntities replaces every marker with a snapshot of entities projected
// from a world of worldSize. Previous markers are discarded.
func (o *Overlay) UpdateEntities(entities []Entity, worldSize Size) {
	o.markers.replace(entities, worldSize, o.geom.Size, o.rend)
}

// Markers returns a copy of the current marker set.
func (o *Overlay) Markers() []Marker {
	out := make([]Marker, len(o.markers.markers))
	copy(out, o.markers.markers)
	return out
}

// UpdateViewportFrame recomputes the camera frame for a camera centered at
// center with the given zoom. The parameters are kept so the frame can be
// recomputed when the overlay is resized.
func (o *Overlay) UpdateViewportFrame(center Vec2, zoom float64, worldSize Size) {
	o.cam = camera{center: center, zoom: zoom, worldSize: worldSize, valid: true}
	o.frame = ComputeViewportFrame(center, zoom, worldSize, o.geom.Size, o.axis)
	o.frameShape.SetPoints(o.frame.Points())
	o.frameShape.SetVisible(true)
	o.renderFrameStyle()
}

// ViewportFrame returns the last computed camera frame and whether one has
// been computed yet.
func (o *Overlay) ViewportFrame() (ViewportFrame, bool) {
	return o.frame, o.cam.valid
}

// UpdateAnchorMarker moves the anchor marker. It is a no-op while
// AnchorMarkerEnabled is false.
func (o *Overlay) UpdateAnchorMarker(position Vec2, worldSize Size) {
	if !o.AnchorMarkerEnabled {
		o.anchorShape.SetVisible(false)
		return
	}
	o.anchor = anchorMarker{
		world:     position,
		worldSize: worldSize,
		position:  ToOverlay(position, worldSize, o.geom.Size),
		valid:     true,
	}
	o.renderAnchor()
}

// AnchorMarker returns the anchor marker's overlay position and whether it
// is shown.
func (o *Overlay) AnchorMarker() (Vec2, bool) {
	return o.anchor.position, o.anchor.valid && o.AnchorMarkerEnabled
}

// Update advances time-based feedback by dt seconds. Call it once per frame
// when PulseEnabled is set.
func (o *Overlay) Update(dt float32) {
	if !o.pulse.active {
		return
	}
	o.pulse.update(dt)
	o.pulse.render(o.rend, &o.Appearance)
}

// Refresh re-applies Appearance to every shape.
func (o *Overlay) Refresh() {
	o.renderBackground()
	o.renderFrameStyle()
	o.markers.setZIndex(o.Appearance.ZIndex + zMarkers)
	if o.anchor.valid {
		o.renderAnchor()
	}
	o.pulse.render(o.rend, &o.Appearance)
}

func (o *Overlay) renderBackground() {
	a := &o.Appearance
	o.background.SetRect(Rect{Width: o.geom.Size.Width, Height: o.geom.Size.Height})
	o.background.SetStyle(ShapeStyle{
		Fill:        a.BackgroundFill,
		Stroke:      a.BackgroundStroke,
		StrokeWidth: a.BackgroundStrokeWidth,
		Opacity:     a.BackgroundOpacity,
		Filled:      true,
	})
	o.background.SetZIndex(a.ZIndex + zBackground)
	o.background.SetVisible(true)
}

func (o *Overlay) renderFrameStyle() {
	a := &o.Appearance
	o.frameShape.SetStyle(ShapeStyle{
		Stroke:      a.FrameColor,
		StrokeWidth: a.FrameWidth,
		Opacity:     a.FrameOpacity,
	})
	o.frameShape.SetZIndex(a.ZIndex + zFrame)
}

func (o *Overlay) renderAnchor() {
	style := o.Appearance.AnchorMarker.MarkerStyle()
	o.anchorShape.SetCircle(o.anchor.position, style.Radius)
	o.anchorShape.SetStyle(style.shapeStyle())
	o.anchorShape.SetZIndex(o.Appearance.ZIndex + zAnchor)
	o.anchorShape.SetVisible(o.AnchorMarkerEnabled)
}

// --- Pointer input ---

// HandlePointerDown starts a gesture. p is converted to host space through
// space (nil means p already is in host space). It reports whether the event
// was consumed by the overlay.
func (o *Overlay) HandlePointerDown(p Vec2, space CoordinateSpace) bool {
	hp := toHost(space, p)
	l := o.Local(hp)
	o.gestures.down(hp, l, o.geom)
	return o.Contains(l) || o.gestures.active()
}

// HandlePointerMoved continues a drag or resize. While idle it only reports
// whether the pointer is over the overlay, for hover feedback.
func (o *Overlay) HandlePointerMoved(p Vec2, space CoordinateSpace) bool {
	hp := toHost(space, p)
	if !o.gestures.active() {
		return o.Contains(o.Local(hp))
	}

	prev := o.geom
	resized := o.gestures.move(hp, &o.geom)
	if o.geom.Position != prev.Position {
		o.rend.SetOrigin(o.geom.Position)
	}
	if resized {
		o.relayout()
	}
	return true
}

// HandlePointerUp ends a gesture. A release that ends no drag or resize and
// lands inside the overlay is a click: the listener receives the world
// position under the pointer.
func (o *Overlay) HandlePointerUp(p Vec2, space CoordinateSpace) bool {
	hp := toHost(space, p)
	if o.gestures.up() {
		return true
	}
	l := o.Local(hp)
	if !o.Contains(l) {
		return false
	}
	o.click(l)
	return true
}

// HandlePointerSecondaryDown resets the overlay to its default layout when
// the press lands inside it, whatever gesture is in progress.
func (o *Overlay) HandlePointerSecondaryDown(p Vec2, space CoordinateSpace) bool {
	hp := toHost(space, p)
	active := o.gestures.active()
	if !o.Contains(o.Local(hp)) {
		return active
	}
	o.ResetLayout()
	return true
}

// click delivers a click at overlay-local point l.
func (o *Overlay) click(l Vec2) {
	world := o.ToWorld(l)
	if o.PulseEnabled {
		o.pulse.start(l, o.PulseDuration)
		o.pulse.render(o.rend, &o.Appearance)
	}
	if o.listener.notify == nil {
		o.log.Debug().Msg("click dropped: no listener")
		return
	}
	if !o.listener.notify(world) {
		o.log.Debug().Msg("click dropped: listener collected")
		o.listener = listenerSlot{}
		return
	}
	o.log.Debug().
		Float64("x", world.X).Float64("y", world.Y).
		Bool("reposition", o.RepositionOnClick).
		Msg("overlay clicked")
}
