package minimap

import "math"

// ViewportFrame is the camera's visible world rectangle projected into
// overlay space. Corners are stored TL, TR, BR, BL and each one is clamped
// independently to the overlay bounds.
type ViewportFrame [4]Vec2

// Points returns the frame corners as a closed-path point list.
func (f ViewportFrame) Points() []Vec2 {
	return []Vec2{f[0], f[1], f[2], f[3]}
}

// camera holds the last camera parameters handed to UpdateViewportFrame so
// the frame can be recomputed when the overlay is resized.
type camera struct {
	center    Vec2
	zoom      float64
	worldSize Size
	valid     bool
}

// ComputeViewportFrame returns the overlay-space frame for a camera centered
// at center, with corners ordered TL, TR, BR, BL for the given axis
// convention. The visible world rectangle is worldSize*zoom (zoom < 1 is
// zoomed in, zoom > 1 zoomed out). The four world corners are projected one
// by one and then clamped componentwise into [0, overlaySize], so a view
// reaching far past the world edges collapses onto the overlay border rather
// than disappearing.
func ComputeViewportFrame(center Vec2, zoom float64, worldSize, overlaySize Size, axis YAxis) ViewportFrame {
	halfW := worldSize.Width * zoom / 2
	halfH := worldSize.Height * zoom / 2

	top, bottom := center.Y-halfH, center.Y+halfH
	if axis == YUp {
		top, bottom = bottom, top
	}
	corners := [4]Vec2{
		{center.X - halfW, top},
		{center.X + halfW, top},
		{center.X + halfW, bottom},
		{center.X - halfW, bottom},
	}

	var f ViewportFrame
	for i, c := range corners {
		p := ToOverlay(c, worldSize, overlaySize)
		f[i] = Vec2{
			X: clamp(p.X, 0, overlaySize.Width),
			Y: clamp(p.Y, 0, overlaySize.Height),
		}
	}
	return f
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
