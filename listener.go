package minimap

import "weak"

// ClickListener receives overlay clicks converted to world space.
type ClickListener interface {
	OnOverlayClicked(world Vec2)
}

// listenerSlot is the overlay's single click listener registration.
// notify reports false once the listener has been collected.
type listenerSlot struct {
	id     uint32
	notify func(world Vec2) bool
}

// ListenerHandle allows revoking a click listener registration.
type ListenerHandle struct {
	id      uint32
	overlay *Overlay
}

// Remove unregisters the listener. It is a no-op if another listener has
// been registered since.
func (h ListenerHandle) Remove() {
	if h.overlay == nil || h.overlay.listener.id != h.id {
		return
	}
	h.overlay.listener = listenerSlot{}
}

// SetClickListener registers l as the overlay's click listener, replacing
// any previous one. The overlay keeps only a weak reference: once nothing
// else references l, it may be collected and later clicks are dropped.
// Passing nil clears the listener.
//
// l must point to a type with non-zero size; weak references to zero-sized
// values are never cleared.
func SetClickListener[T any, P interface {
	*T
	ClickListener
}](o *Overlay, l P) ListenerHandle {
	ptr := (*T)(l)
	if ptr == nil {
		o.listener = listenerSlot{}
		return ListenerHandle{}
	}

	wp := weak.Make(ptr)
	o.nextListenerID++
	id := o.nextListenerID
	o.listener = listenerSlot{
		id: id,
		notify: func(world Vec2) bool {
			target := wp.Value()
			if target == nil {
				return false
			}
			P(target).OnOverlayClicked(world)
			return true
		},
	}
	return ListenerHandle{id: id, overlay: o}
}
