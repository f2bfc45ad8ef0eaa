package minimap

import "testing"

func TestRectContainsEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},
		{110, 70, true},
		{60, 45, true},
		{9.99, 45, false},
		{60, 70.01, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestGeometryContainsIsLocal(t *testing.T) {
	o, _, _ := newTestOverlay(t, YDown)
	o.SetPosition(Vec2{500, 500})
	if !o.Contains(Vec2{0, 0}) || !o.Contains(Vec2{200, 150}) {
		t.Error("overlay corners should be inside")
	}
	if o.Contains(Vec2{500, 500}) {
		t.Error("Contains takes overlay-local points")
	}
	if got := o.Local(Vec2{510, 520}); got != (Vec2{10, 20}) {
		t.Errorf("Local = %v, want (10,20)", got)
	}
}

func TestSizeHelpers(t *testing.T) {
	if (Size{1, 0}).Positive() {
		t.Error("zero height reported positive")
	}
	if got := (Size{50, 300}).Max(Size{100, 100}); got != (Size{100, 300}) {
		t.Errorf("Max = %v", got)
	}
	if got := (Vec2{1, 2}).Add(Vec2{3, 4}).Sub(Vec2{1, 1}); got != (Vec2{3, 5}) {
		t.Errorf("Add/Sub = %v", got)
	}
}

func TestEnumStrings(t *testing.T) {
	if YDown.String() != "down" || YUp.String() != "up" {
		t.Error("YAxis strings")
	}
	for k, want := range map[GestureKind]string{
		GestureIdle:     "idle",
		GestureDragging: "dragging",
		GestureResizing: "resizing",
	} {
		if k.String() != want {
			t.Errorf("%d.String() = %q, want %q", k, k.String(), want)
		}
	}
}

func TestRefreshAppliesAppearance(t *testing.T) {
	o, rend, _ := newTestOverlay(t, YDown)
	o.UpdateEntities([]Entity{Point{}}, testWorld)

	o.Appearance.ZIndex = 7
	o.Appearance.BackgroundOpacity = 0.25
	o.Refresh()

	bg := rend.live(kindRect)[0]
	if bg.z != 7+zBackground || bg.style.Opacity != 0.25 {
		t.Errorf("background z=%d opacity=%v", bg.z, bg.style.Opacity)
	}
	if z := o.markers.shapes[0].(*recShape).z; z != 7+zMarkers {
		t.Errorf("marker z = %d, want %d", z, 7+zMarkers)
	}
	if z := rend.live(kindPath)[0].z; z != 7+zFrame {
		t.Errorf("frame z = %d, want %d", z, 7+zFrame)
	}
}
