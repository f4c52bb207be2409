package wire

import (
	"fmt"

	"github.com/junsooki/inputdetect/internal/input"
)

// Point is a position on the wire.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func pointOf(p input.Position) Point   { return Point{X: p.X, Y: p.Y} }
func (p Point) position() input.Position { return input.Pt(p.X, p.Y) }

// ButtonState is one button of a polled snapshot.
type ButtonState struct {
	Pressed  bool  `json:"pressed"`
	Typed    bool  `json:"typed"`
	Released bool  `json:"released"`
	Duration int   `json:"duration"`
	Cursor   Point `json:"cursor"`
	Dragged  Point `json:"dragged"`
}

// State is the wire format for a polled snapshot.
type State struct {
	Seq           uint64      `json:"seq"`
	Cursor        Point       `json:"cursor"`
	WheelRotation float64     `json:"wheelRotation"`
	Left          ButtonState `json:"left"`
	Middle        ButtonState `json:"middle"`
	Right         ButtonState `json:"right"`
}

func buttonStateOf(d *input.DraggableSwitch) ButtonState {
	return ButtonState{
		Pressed:  d.Switch.Pressed,
		Typed:    d.Switch.Typed,
		Released: d.Switch.Released,
		Duration: d.Switch.Duration,
		Cursor:   pointOf(d.Cursor),
		Dragged:  pointOf(d.Dragged),
	}
}

func (b ButtonState) apply(d *input.DraggableSwitch) {
	d.Switch = input.Switch{
		Typed:    b.Typed,
		Pressed:  b.Pressed,
		Released: b.Released,
		Duration: b.Duration,
	}
	d.Cursor = b.Cursor.position()
	d.Dragged = b.Dragged.position()
}

// NewState converts a picked hub into its wire form.
func NewState(seq uint64, h *input.PointerHub) State {
	return State{
		Seq:           seq,
		Cursor:        pointOf(h.Cursor),
		WheelRotation: h.WheelRotation,
		Left:          buttonStateOf(&h.Left),
		Middle:        buttonStateOf(&h.Middle),
		Right:         buttonStateOf(&h.Right),
	}
}

// Hub rebuilds the snapshot as a PointerHub.
func (s State) Hub() *input.PointerHub {
	h := input.NewPointerHub()
	s.Left.apply(&h.Left)
	s.Middle.apply(&h.Middle)
	s.Right.apply(&h.Right)
	h.Cursor = s.Cursor.position()
	h.WheelRotation = s.WheelRotation
	return h
}

func EncodeState(s State) ([]byte, error) {
	return json.Marshal(s)
}

func DecodeState(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, fmt.Errorf("decode state: %w", err)
	}
	return s, nil
}
