package ecs

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/minimap"
)

func spawn(world donburi.World, pos minimap.Vec2, style minimap.Style) donburi.Entity {
	e := world.Create(Position, Marker)
	entry := world.Entry(e)
	Position.SetValue(entry, pos)
	Marker.SetValue(entry, style)
	return e
}

func TestCollect(t *testing.T) {
	world := donburi.NewWorld()
	spawn(world, minimap.Vec2{X: 10, Y: 20}, minimap.Style{Radius: 4})
	spawn(world, minimap.Vec2{X: 30, Y: 40}, minimap.Style{})
	// Position without a Marker is not shown.
	world.Create(Position)

	got := Collect(world, nil)
	if len(got) != 2 {
		t.Fatalf("Collect returned %d entities, want 2", len(got))
	}
	seen := map[minimap.Vec2]minimap.Style{}
	for _, e := range got {
		seen[e.WorldPosition()] = e.MarkerStyle()
	}
	if s, ok := seen[minimap.Vec2{X: 10, Y: 20}]; !ok || s.Radius != 4 {
		t.Errorf("entity (10,20) style = %+v, found %v", s, ok)
	}
	if s, ok := seen[minimap.Vec2{X: 30, Y: 40}]; !ok || s.Fill != minimap.ColorRed {
		t.Errorf("entity (30,40) style = %+v, found %v", s, ok)
	}
}

func TestCollectAppends(t *testing.T) {
	world := donburi.NewWorld()
	spawn(world, minimap.Vec2{X: 1, Y: 1}, minimap.Style{})

	buf := []minimap.Entity{minimap.Point{Position: minimap.Vec2{X: 9, Y: 9}}}
	got := Collect(world, buf)
	if len(got) != 2 || got[0].WorldPosition() != (minimap.Vec2{X: 9, Y: 9}) {
		t.Errorf("Collect = %v", got)
	}
}

func TestUpdateOverlaySnapshots(t *testing.T) {
	world := donburi.NewWorld()
	e := spawn(world, minimap.Vec2{X: 500, Y: 400}, minimap.Style{})
	worldSize := minimap.Size{Width: 1000, Height: 800}
	o := minimap.New(minimap.Size{Width: 200, Height: 150}, minimap.Config{})

	UpdateOverlay(o, world, worldSize)
	if ms := o.Markers(); len(ms) != 1 || ms[0].Position != (minimap.Vec2{X: 100, Y: 75}) {
		t.Fatalf("Markers() = %+v", ms)
	}

	// Moving the entity only shows after the next update.
	Position.SetValue(world.Entry(e), minimap.Vec2{X: 0, Y: 0})
	if got := o.Markers()[0].Position; got != (minimap.Vec2{X: 100, Y: 75}) {
		t.Errorf("marker moved before update: %v", got)
	}
	UpdateOverlay(o, world, worldSize)
	if got := o.Markers()[0].Position; got != (minimap.Vec2{}) {
		t.Errorf("marker after update = %v, want origin", got)
	}

	world.Remove(e)
	UpdateOverlay(o, world, worldSize)
	if n := len(o.Markers()); n != 0 {
		t.Errorf("len(Markers()) = %d after removing the entity", n)
	}
}

func TestClickPublisher(t *testing.T) {
	world := donburi.NewWorld()
	pub := NewClickPublisher(world)

	var received []ClickEvent
	ClickEventType.Subscribe(world, func(w donburi.World, e ClickEvent) {
		received = append(received, e)
	})

	host := minimap.HostFunc(func() minimap.Size { return minimap.Size{Width: 1000, Height: 800} })
	o := minimap.New(minimap.Size{Width: 200, Height: 150}, minimap.Config{Host: host})
	h := minimap.SetClickListener(o, pub)
	defer h.Remove()

	o.HandlePointerDown(minimap.Vec2{X: 100, Y: 75}, nil)
	o.HandlePointerUp(minimap.Vec2{X: 100, Y: 75}, nil)

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("received %d events before processing", len(received))
	}
	ClickEventType.ProcessEvents(world)

	if len(received) != 1 || received[0].World != (minimap.Vec2{X: 500, Y: 400}) {
		t.Errorf("received = %+v, want one click at (500,400)", received)
	}
	if pub.Published() != 1 {
		t.Errorf("Published() = %d, want 1", pub.Published())
	}
}

func TestClickPublisherMultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	pub := NewClickPublisher(world)

	var count1, count2 int
	ClickEventType.Subscribe(world, func(w donburi.World, e ClickEvent) {
		count1++
	})
	ClickEventType.Subscribe(world, func(w donburi.World, e ClickEvent) {
		count2++
	})

	pub.OnOverlayClicked(minimap.Vec2{X: 1, Y: 2})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
