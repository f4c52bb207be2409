package wire

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/junsooki/inputdetect/internal/input"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrUnknownEvent is returned for events whose type is not recognised.
var ErrUnknownEvent = errors.New("wire: unknown event type")

// EventType identifies the kind of raw input event.
type EventType string

const (
	EventMouseDown   EventType = "mouse_down"
	EventMouseUp     EventType = "mouse_up"
	EventMouseMove   EventType = "mouse_move"
	EventMouseWheel  EventType = "mouse_wheel"
	EventFocusLost   EventType = "focus_lost"
	EventTouchStart  EventType = "touch_start"
	EventTouchMove   EventType = "touch_move"
	EventTouchEnd    EventType = "touch_end"
	EventTouchCancel EventType = "touch_cancel"
)

// Touch is one active contact of a touch event.
type Touch struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Target describes the surface an event was delivered to. Width and Height
// are the backing resolution and may be zero when the surface has none.
type Target struct {
	ClientWidth  float64 `json:"clientWidth"`
	ClientHeight float64 `json:"clientHeight"`
	Width        float64 `json:"width,omitempty"`
	Height       float64 `json:"height,omitempty"`
}

func (t *Target) ClientSize() (w, h float64) { return t.ClientWidth, t.ClientHeight }
func (t *Target) Resolution() (w, h float64) { return t.Width, t.Height }

// Event is the wire format for raw pointer and touch events. Coordinates are
// relative to the target surface as displayed.
type Event struct {
	Type    EventType    `json:"type"`
	X       float64      `json:"x,omitempty"`
	Y       float64      `json:"y,omitempty"`
	Button  input.Button `json:"button,omitempty"`
	DeltaY  float64      `json:"deltaY,omitempty"`
	Touches []Touch      `json:"touches,omitempty"`
	Target  *Target      `json:"target,omitempty"`
}

// surface avoids handing the core a non-nil interface holding a nil *Target.
func (e *Event) surface() input.Surface {
	if e.Target == nil {
		return nil
	}
	return e.Target
}

func (e *Event) pointer() input.PointerEvent {
	return input.PointerEvent{Button: e.Button, X: e.X, Y: e.Y, Target: e.surface()}
}

func (e *Event) batch() input.TouchBatch {
	contacts := make([]input.Contact, len(e.Touches))
	for i, t := range e.Touches {
		contacts[i] = input.Contact{X: t.X, Y: t.Y}
	}
	return input.TouchBatch{Contacts: contacts, Target: e.surface()}
}

// Encode serializes an event.
func Encode(e Event) ([]byte, error) {
	return json.Marshal(e)
}

// Decode parses an event and validates its type.
func Decode(data []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return Event{}, fmt.Errorf("decode event: %w", err)
	}
	if !e.Type.valid() {
		return Event{}, fmt.Errorf("%w: %q", ErrUnknownEvent, e.Type)
	}
	return e, nil
}

func (t EventType) valid() bool {
	switch t {
	case EventMouseDown, EventMouseUp, EventMouseMove, EventMouseWheel, EventFocusLost,
		EventTouchStart, EventTouchMove, EventTouchEnd, EventTouchCancel:
		return true
	}
	return false
}

// Apply delivers e to a.
func Apply(a *input.TouchAdapter, e Event) error {
	switch e.Type {
	case EventMouseDown:
		a.OnPress(e.pointer())
	case EventMouseUp:
		a.OnRelease(e.pointer())
	case EventMouseMove:
		a.OnMove(e.pointer())
	case EventMouseWheel:
		a.OnWheel(input.WheelEvent{DeltaY: e.DeltaY})
	case EventFocusLost:
		a.FocusLost()
	case EventTouchStart:
		a.OnTouchStart(e.batch())
	case EventTouchMove:
		a.OnTouchMove(e.batch())
	case EventTouchEnd:
		a.OnTouchEnd(e.batch())
	case EventTouchCancel:
		a.OnTouchCancel(e.batch())
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, e.Type)
	}
	return nil
}
