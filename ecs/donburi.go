package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/minimap"
)

var (
	// Position is the world position of an entity shown on the overlay.
	Position = donburi.NewComponentType[minimap.Vec2]()
	// Marker is the overlay style of an entity. Zero fields take the
	// overlay's marker defaults.
	Marker = donburi.NewComponentType[minimap.Style]()
)

var markerQuery = donburi.NewQuery(filter.Contains(Position, Marker))

// Collect appends a snapshot of every entity with both Position and Marker
// to buf and returns the extended slice.
func Collect(world donburi.World, buf []minimap.Entity) []minimap.Entity {
	markerQuery.Each(world, func(e *donburi.Entry) {
		buf = append(buf, minimap.Point{
			Style:    *Marker.Get(e),
			Position: *Position.Get(e),
		})
	})
	return buf
}

// UpdateOverlay replaces the overlay's markers with the entities of world.
func UpdateOverlay(o *minimap.Overlay, world donburi.World, worldSize minimap.Size) {
	o.UpdateEntities(Collect(world, nil), worldSize)
}

// ClickEvent is published when the overlay is clicked.
type ClickEvent struct {
	// World is the clicked point in world space.
	World minimap.Vec2
}

// ClickEventType is the Donburi event type for overlay clicks.
var ClickEventType = events.NewEventType[ClickEvent]()

// ClickPublisher is a minimap.ClickListener that publishes every click to
// ClickEventType. The overlay holds listeners weakly: keep a reference to
// the publisher for as long as clicks should be delivered.
type ClickPublisher struct {
	world donburi.World
	count int
}

// NewClickPublisher creates a publisher for world.
func NewClickPublisher(world donburi.World) *ClickPublisher {
	return &ClickPublisher{world: world}
}

// OnOverlayClicked implements minimap.ClickListener.
func (p *ClickPublisher) OnOverlayClicked(world minimap.Vec2) {
	p.count++
	ClickEventType.Publish(p.world, ClickEvent{World: world})
}

// Published returns the number of clicks published so far.
func (p *ClickPublisher) Published() int { return p.count }
