package minimap

import "testing"

func TestClickPulseFades(t *testing.T) {
	o, rend, _ := newTestOverlay(t, YDown)
	o.PulseEnabled = true

	circlesBefore := len(rend.live(kindCircle))
	o.HandlePointerDown(Vec2{100, 75}, nil)
	o.HandlePointerUp(Vec2{100, 75}, nil)

	circles := rend.live(kindCircle)
	if len(circles) != circlesBefore+1 {
		t.Fatalf("circles = %d, want %d", len(circles), circlesBefore+1)
	}
	pulse := circles[len(circles)-1]
	if !pulse.visible || pulse.center != (Vec2{100, 75}) {
		t.Errorf("pulse shape = %+v", pulse)
	}
	if pulse.style.Opacity != 1 || pulse.style.Filled {
		t.Errorf("pulse style = %+v, want unfilled at opacity 1", pulse.style)
	}
	if pulse.z != o.Appearance.ZIndex+zPulse {
		t.Errorf("pulse z = %d", pulse.z)
	}

	o.Update(0.1)
	mid := pulse.style.Opacity
	if mid <= 0 || mid >= 1 {
		t.Errorf("opacity after 0.1s = %v, want in (0,1)", mid)
	}
	if pulse.center != (Vec2{100, 75}) {
		t.Errorf("pulse moved to %v", pulse.center)
	}

	o.Update(0.5)
	if pulse.visible {
		t.Error("pulse still visible after its duration")
	}

	// A second click reuses the shape.
	o.HandlePointerDown(Vec2{50, 50}, nil)
	o.HandlePointerUp(Vec2{50, 50}, nil)
	if n := len(rend.live(kindCircle)); n != circlesBefore+1 {
		t.Errorf("circles after second click = %d", n)
	}
	if !pulse.visible || pulse.center != (Vec2{50, 50}) {
		t.Errorf("pulse after second click = %+v", pulse)
	}
}

func TestClickPulseDisabledByDefault(t *testing.T) {
	o, rend, _ := newTestOverlay(t, YDown)
	before := len(rend.live(kindCircle))
	o.HandlePointerDown(Vec2{100, 75}, nil)
	o.HandlePointerUp(Vec2{100, 75}, nil)
	o.Update(0.1)
	if n := len(rend.live(kindCircle)); n != before {
		t.Errorf("circles = %d, want %d", n, before)
	}
}

func TestClickPulseUpdate(t *testing.T) {
	var p clickPulse
	if p.update(0.1) {
		t.Error("inactive pulse reported active")
	}
	p.start(Vec2{1, 1}, 0)
	if !p.active || p.opacity != 1 {
		t.Fatalf("pulse after start = %+v", p)
	}
	if !p.update(DefaultPulseDuration / 2) {
		t.Error("pulse ended halfway")
	}
	if p.update(DefaultPulseDuration) {
		t.Error("pulse still active after full duration")
	}
	if p.opacity != 0 {
		t.Errorf("opacity = %v, want 0", p.opacity)
	}
}
