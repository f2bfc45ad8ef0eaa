package minimap

// ToOverlay maps a world-space point into overlay space. Each axis is scaled
// independently (overlay/world); there is no rotation. worldSize must be
// positive on both axes.
func ToOverlay(world Vec2, worldSize, overlaySize Size) Vec2 {
	if debugMode {
		debugCheckScale("ToOverlay", worldSize)
	}
	return Vec2{
		X: world.X * overlaySize.Width / worldSize.Width,
		Y: world.Y * overlaySize.Height / worldSize.Height,
	}
}

// ToWorld maps an overlay-space point back into world space. It is the
// inverse of ToOverlay for the same pair of sizes. overlaySize must be
// positive on both axes.
func ToWorld(local Vec2, overlaySize, worldSize Size) Vec2 {
	if debugMode {
		debugCheckScale("ToWorld", overlaySize)
	}
	return Vec2{
		X: local.X * worldSize.Width / overlaySize.Width,
		Y: local.Y * worldSize.Height / overlaySize.Height,
	}
}

// Host supplies the scene size used to turn overlay clicks into world
// coordinates. It is queried at click time, never cached, because the
// scene may be resized between updates.
type Host interface {
	SceneSize() Size
}

// HostFunc adapts a plain function to the Host interface.
type HostFunc func() Size

// SceneSize calls f.
func (f HostFunc) SceneSize() Size { return f() }

// CoordinateSpace converts a point reported by a pointer source into host
// space (the space the overlay's Position lives in). A nil CoordinateSpace
// means the point is already in host space.
type CoordinateSpace interface {
	ToHost(p Vec2) Vec2
}

// CoordinateSpaceFunc adapts a plain function to the CoordinateSpace interface.
type CoordinateSpaceFunc func(p Vec2) Vec2

// ToHost calls f.
func (f CoordinateSpaceFunc) ToHost(p Vec2) Vec2 { return f(p) }

// toHost resolves p through space, treating nil as identity.
func toHost(space CoordinateSpace, p Vec2) Vec2 {
	if space == nil {
		return p
	}
	return space.ToHost(p)
}
