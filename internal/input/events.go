package input

// Button identifies a logical pointer button. Values follow the DOM
// MouseEvent.button numbering.
type Button int

const (
	ButtonLeft   Button = 0
	ButtonMiddle Button = 1
	ButtonRight  Button = 2
)

// Buttons lists every button a PointerHub tracks, in dispatch order.
var Buttons = [...]Button{ButtonLeft, ButtonMiddle, ButtonRight}

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "unknown"
	}
}

// Surface is the element an event was delivered to. It is used to map raw
// client coordinates into the element's own pixel space.
type Surface interface {
	// ClientSize reports the size the element is displayed at.
	ClientSize() (w, h float64)
	// Resolution reports the element's backing size. A zero component means
	// the element has no explicit size on that axis.
	Resolution() (w, h float64)
}

// PointerEvent is a press, release or move of a pointer. Touch input is turned
// into PointerEvents by TouchAdapter.
type PointerEvent struct {
	Button Button
	X, Y   float64
	Target Surface
}

// WheelEvent reports wheel movement. Only the vertical axis is used.
type WheelEvent struct {
	DeltaY float64
}

// Contact is one active touch point.
type Contact struct {
	X, Y float64
}

// TouchBatch holds every contact that is active after a touch event.
type TouchBatch struct {
	Contacts []Contact
	Target   Surface
}
