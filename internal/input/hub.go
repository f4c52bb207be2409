package input

// PointerHub routes pointer events to one DraggableSwitch per button and
// accumulates wheel rotation.
type PointerHub struct {
	Left   DraggableSwitch
	Middle DraggableSwitch
	Right  DraggableSwitch

	// Cursor follows the left switch's cursor after every move.
	Cursor Position
	// WheelRotation is the signed number of wheel notches since the last
	// transfer. Scrolling down is negative.
	WheelRotation float64
}

// NewPointerHub returns a hub with every button idle.
func NewPointerHub() *PointerHub {
	return &PointerHub{
		Left:   NewDraggableSwitch(ButtonLeft),
		Middle: NewDraggableSwitch(ButtonMiddle),
		Right:  NewDraggableSwitch(ButtonRight),
	}
}

func (h *PointerHub) switches() [3]*DraggableSwitch {
	return [3]*DraggableSwitch{&h.Left, &h.Middle, &h.Right}
}

// Button returns the switch tracking b, or nil if b is not a tracked button.
func (h *PointerHub) Button(b Button) *DraggableSwitch {
	switch b {
	case ButtonLeft:
		return &h.Left
	case ButtonMiddle:
		return &h.Middle
	case ButtonRight:
		return &h.Right
	}
	return nil
}

// OnPress hands ev to every button; only the named one reacts.
func (h *PointerHub) OnPress(ev PointerEvent) {
	for _, s := range h.switches() {
		s.OnPress(ev)
	}
}

// OnRelease hands ev to every button; only the named one reacts.
func (h *PointerHub) OnRelease(ev PointerEvent) {
	for _, s := range h.switches() {
		s.OnRelease(ev)
	}
}

// OnMove moves every button's cursor and updates Cursor.
func (h *PointerHub) OnMove(ev PointerEvent) {
	for _, s := range h.switches() {
		s.OnMove(ev)
	}
	h.Cursor = h.Left.Cursor
}

// OnWheel adds one notch per event, against the sign of the delta. The
// magnitude of the delta is ignored.
func (h *PointerHub) OnWheel(ev WheelEvent) {
	switch {
	case ev.DeltaY > 0:
		h.WheelRotation--
	case ev.DeltaY < 0:
		h.WheelRotation++
	}
}

// FocusLost releases every button. Call it when the pointer leaves the surface
// so that no button stays held.
func (h *PointerHub) FocusLost() {
	for _, s := range h.switches() {
		s.FocusLost()
	}
}

// Transfer copies the hub state into dst and consumes the per-frame values:
// one-shot flags, drag and wheel rotation.
func (h *PointerHub) Transfer(dst *PointerHub) error {
	if dst == nil {
		return ErrInvalidArgument
	}
	dsts := dst.switches()
	for i, s := range h.switches() {
		if err := s.Transfer(dsts[i]); err != nil {
			return err
		}
	}
	dst.Cursor = h.Cursor
	dst.WheelRotation = h.WheelRotation
	h.WheelRotation = 0
	return nil
}

// Pick transfers the hub state into a new hub and returns it.
func (h *PointerHub) Pick() *PointerHub {
	dst := NewPointerHub()
	// dst is never nil.
	_ = h.Transfer(dst)
	return dst
}
