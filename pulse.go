package minimap

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultPulseDuration is how long, in seconds, the click pulse takes to fade.
const DefaultPulseDuration float32 = 0.35

// clickPulse is a circle drawn at the last clicked overlay point whose
// opacity fades from 1 to 0. It never moves.
type clickPulse struct {
	tween   *gween.Tween
	shape   CircleShape
	at      Vec2
	opacity float64
	active  bool
}

// start restarts the fade at overlay-local point at.
func (p *clickPulse) start(at Vec2, duration float32) {
	if duration <= 0 {
		duration = DefaultPulseDuration
	}
	p.tween = gween.New(1, 0, duration, ease.OutQuad)
	p.at = at
	p.opacity = 1
	p.active = true
}

// update advances the fade by dt seconds. It reports whether the pulse is
// still visible.
func (p *clickPulse) update(dt float32) bool {
	if !p.active {
		return false
	}
	val, done := p.tween.Update(dt)
	p.opacity = float64(val)
	if done {
		p.active = false
		p.tween = nil
		p.opacity = 0
	}
	return p.active
}

// render pushes the pulse state to its shape, creating it on first use.
func (p *clickPulse) render(rend Renderer, a *Appearance) {
	if p.shape == nil {
		if !p.active {
			return
		}
		p.shape = rend.NewCircle()
	}
	p.shape.SetVisible(p.active)
	if !p.active {
		return
	}
	p.shape.SetCircle(p.at, a.PulseRadius)
	p.shape.SetStyle(ShapeStyle{
		Stroke:      a.PulseColor,
		StrokeWidth: 1,
		Opacity:     p.opacity,
	})
	p.shape.SetZIndex(a.ZIndex + zPulse)
}
