// Package ecs connects a minimap overlay to a [Donburi] world.
//
// Entities that carry both the [Position] and [Marker] components are shown
// on the overlay by [Collect] or [UpdateOverlay]. Overlay clicks can be fed
// back into the world as [ClickEvent] values through a [ClickPublisher];
// subscribe to [ClickEventType] in your systems to receive them.
//
// Usage:
//
//	pub := ecs.NewClickPublisher(world)
//	minimap.SetClickListener(overlay, pub)
//
//	// each frame
//	ecs.UpdateOverlay(overlay, world, worldSize)
//	ecs.ClickEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
