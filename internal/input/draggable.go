package input

// DraggableSwitch is a Switch bound to one button that also tracks where the
// pointer is and how far it was dragged while the button was held.
type DraggableSwitch struct {
	Button  Button
	Switch  Switch
	Cursor  Position
	Dragged Position // sum of move deltas since the last press or transfer

	origin Position
}

// NewDraggableSwitch returns an idle switch for button b.
func NewDraggableSwitch(b Button) DraggableSwitch {
	return DraggableSwitch{Button: b}
}

// CorrectedPosition maps client coordinates into target's pixel space. This
// accounts for a surface displayed at a different size than its resolution.
// With no target the coordinates are returned unchanged.
func CorrectedPosition(x, y float64, target Surface) Position {
	if target == nil {
		return Pt(x, y)
	}
	cw, ch := target.ClientSize()
	w, h := target.Resolution()
	if w == 0 {
		w = cw
	}
	if h == 0 {
		h = ch
	}
	return Pt(scaleAxis(x, cw, w), scaleAxis(y, ch, h))
}

func scaleAxis(v, displayed, intrinsic float64) float64 {
	if displayed == 0 {
		return v
	}
	return v / displayed * intrinsic
}

func (ev PointerEvent) position() Position {
	return CorrectedPosition(ev.X, ev.Y, ev.Target)
}

// SetPosition moves the cursor and drag origin to the event position and
// clears the accumulated drag, whichever button the event names.
func (d *DraggableSwitch) SetPosition(ev PointerEvent) {
	p := ev.position()
	d.Cursor = p
	d.origin = p
	d.Dragged = Position{}
}

// OnPress presses the switch if ev names its button. A fresh press starts a
// new drag at the event position.
func (d *DraggableSwitch) OnPress(ev PointerEvent) {
	if ev.Button != d.Button {
		return
	}
	p := ev.position()
	if !d.Switch.Pressed {
		d.Dragged = Position{}
	}
	d.Switch.Press()
	d.Cursor = p
	d.origin = p
}

// OnRelease releases the switch if ev names its button and it is held.
func (d *DraggableSwitch) OnRelease(ev PointerEvent) {
	if ev.Button != d.Button || !d.Switch.Pressed {
		return
	}
	d.Switch.Release()
}

// OnMove updates the cursor. While pressed, the distance moved since the
// previous event is added to Dragged.
func (d *DraggableSwitch) OnMove(ev PointerEvent) {
	p := ev.position()
	if d.Switch.Pressed {
		delta := p
		delta.Sub(d.origin)
		d.Dragged.Add(delta)
	}
	d.Cursor = p
	d.origin = p
}

// FocusLost releases the switch.
func (d *DraggableSwitch) FocusLost() {
	d.Switch.FocusLost()
}

// Transfer copies the switch state, cursor and drag into dst, then clears the
// one-shot flags and the accumulated drag.
func (d *DraggableSwitch) Transfer(dst *DraggableSwitch) error {
	if dst == nil {
		return ErrInvalidArgument
	}
	if err := d.Switch.Transfer(&dst.Switch); err != nil {
		return err
	}
	dst.Cursor = d.Cursor
	dst.Dragged = d.Dragged
	d.Dragged = Position{}
	return nil
}
