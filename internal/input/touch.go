package input

import "math"

// TouchButtons maps the number of active contacts to the button they act as.
// Two fingers are the right button and three the middle one.
var TouchButtons = map[int]Button{
	1: ButtonLeft,
	2: ButtonRight,
	3: ButtonMiddle,
}

const (
	pinchDeadZone  = 10   // distance change below which motion is damped
	pinchDampening = 0.01 // rotation per pixel inside the dead zone
	pinchStep      = 0.5  // rotation for any change at or above the dead zone
)

type pinchState struct {
	active bool
	p1, p2 Position
}

// TouchAdapter feeds a PointerHub from both pointer events and multi-touch
// batches. Touches are averaged into a single virtual pointer whose button
// depends on the number of contacts, and a two-finger pinch drives the wheel.
type TouchAdapter struct {
	hub   PointerHub
	pinch pinchState
}

// NewTouchAdapter returns an adapter with every button idle.
func NewTouchAdapter() *TouchAdapter {
	return &TouchAdapter{hub: *NewPointerHub()}
}

// Hub exposes the live state. Reading it does not consume one-shot flags; use
// Transfer or Pick for that.
func (a *TouchAdapter) Hub() *PointerHub {
	return &a.hub
}

// Pinching reports whether a two-finger pinch is being tracked.
func (a *TouchAdapter) Pinching() bool {
	return a.pinch.active
}

// OnPress forwards a mouse press to the hub.
func (a *TouchAdapter) OnPress(ev PointerEvent) { a.hub.OnPress(ev) }

// OnRelease forwards a mouse release to the hub.
func (a *TouchAdapter) OnRelease(ev PointerEvent) { a.hub.OnRelease(ev) }

// OnMove forwards a mouse move to the hub.
func (a *TouchAdapter) OnMove(ev PointerEvent) { a.hub.OnMove(ev) }

// OnWheel forwards a wheel event to the hub.
func (a *TouchAdapter) OnWheel(ev WheelEvent) { a.hub.OnWheel(ev) }

// FocusLost releases every button.
func (a *TouchAdapter) FocusLost() { a.hub.FocusLost() }

// Transfer moves the polled state into dst. See PointerHub.Transfer.
func (a *TouchAdapter) Transfer(dst *PointerHub) error { return a.hub.Transfer(dst) }

// Pick transfers the polled state into a new hub.
func (a *TouchAdapter) Pick() *PointerHub { return a.hub.Pick() }

// OnTouchStart handles a contact being added. Every switch is re-based at the
// new centroid, then the button for the current contact count is pressed and
// the others are released.
func (a *TouchAdapter) OnTouchStart(b TouchBatch) {
	a.trackPinch(b)
	ev := virtualEvent(b)
	for _, s := range a.hub.switches() {
		s.SetPosition(ev)
	}
	a.dispatch(ev, a.hub.OnPress, a.hub.OnRelease)
}

// OnTouchMove moves every switch to the centroid of the contacts.
func (a *TouchAdapter) OnTouchMove(b TouchBatch) {
	a.trackPinch(b)
	a.hub.OnMove(virtualEvent(b))
}

// OnTouchEnd handles a contact being removed. All buttons are released.
func (a *TouchAdapter) OnTouchEnd(b TouchBatch) {
	a.trackPinch(b)
	ev := virtualEvent(b)
	a.dispatch(ev, a.hub.OnRelease, a.hub.OnRelease)
}

// OnTouchCancel is handled like OnTouchEnd.
func (a *TouchAdapter) OnTouchCancel(b TouchBatch) {
	a.OnTouchEnd(b)
}

// dispatch calls on for the event's own button and off for every other one.
func (a *TouchAdapter) dispatch(ev PointerEvent, on, off func(PointerEvent)) {
	target := ev.Button
	for _, b := range Buttons {
		ev.Button = b
		if b == target {
			on(ev)
		} else {
			off(ev)
		}
	}
}

// trackPinch turns the change in distance between two contacts into wheel
// rotation. Pinching in rotates towards positive values and spreading the
// fingers apart towards negative ones. Small changes are damped and large
// jumps are capped.
func (a *TouchAdapter) trackPinch(b TouchBatch) {
	if len(b.Contacts) != 2 {
		a.pinch = pinchState{}
		return
	}
	p1 := Pt(b.Contacts[0].X, b.Contacts[0].Y)
	p2 := Pt(b.Contacts[1].X, b.Contacts[1].Y)
	if !a.pinch.active {
		a.pinch = pinchState{active: true, p1: p1, p2: p2}
		return
	}
	delta := Distance(a.pinch.p1, a.pinch.p2) - Distance(p1, p2)
	a.pinch.p1, a.pinch.p2 = p1, p2

	r := pinchStep
	if abs := math.Abs(delta); abs < pinchDeadZone {
		r = abs * pinchDampening
	}
	if delta > 0 {
		a.hub.WheelRotation += r
	} else {
		a.hub.WheelRotation -= r
	}
}

// virtualEvent builds the pointer event a touch batch acts as. Zero contacts,
// or more than the table covers, yield the left button at the origin.
func virtualEvent(b TouchBatch) PointerEvent {
	ev := PointerEvent{Target: b.Target}
	button, ok := TouchButtons[len(b.Contacts)]
	if !ok {
		return ev
	}
	for _, c := range b.Contacts {
		ev.X += c.X
		ev.Y += c.Y
	}
	n := float64(len(b.Contacts))
	ev.X /= n
	ev.Y /= n
	ev.Button = button
	return ev
}
