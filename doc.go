// Package minimap is a mini-map overlay widget for 2D games.
//
// An [Overlay] shows a scaled-down view of the game world: entity markers,
// the camera's visible rectangle, and an optional anchor marker (a base,
// a spawn point). Pointer input on the overlay is turned back into either
// layout changes (drag the top band to move, drag the bottom-right corner
// to resize, secondary press to reset) or a world-space click delivered to
// a [ClickListener].
//
// # Quick start
//
//	ov := minimap.NewAnchored(
//		minimap.Size{Width: 200, Height: 150},
//		minimap.AnchorBottomRight,
//		minimap.Size{Width: 1280, Height: 720},
//		minimap.DefaultMargin,
//		minimap.Config{Renderer: canvas, Host: host},
//	)
//	handle := minimap.SetClickListener(ov, game)
//	defer handle.Remove()
//
// Each frame, feed it the world:
//
//	ov.UpdateEntities(minimap.Entities(units), worldSize)
//	ov.UpdateViewportFrame(cam.Center(), cam.Zoom(), worldSize)
//
// and forward pointer events:
//
//	if ov.HandlePointerDown(p, nil) {
//		return // consumed by the overlay
//	}
//
// # Coordinate spaces
//
// World space is the game world. Host space is where pointer events and the
// overlay [Geometry] live. Overlay space is local to the widget, with its
// origin at [Geometry.Position] and bounded by [Geometry.Size]. [ToOverlay]
// and [ToWorld] map between world and overlay space with an independent
// scale per axis.
//
// # Y axis
//
// Hosts differ on which way Y grows. [Config.YAxis] selects [YDown]
// (top-left origin) or [YUp] (bottom-left origin); the drag band and the
// resize corner follow reading order under both.
//
// # Rendering
//
// The overlay draws through the [Renderer] interface and never touches a
// graphics API itself. Package ebitenhost provides an Ebitengine renderer,
// pointer source and host; package ecs adapts Donburi worlds.
package minimap
