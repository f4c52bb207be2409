package input

import "errors"

// ErrInvalidArgument is returned when a transfer is attempted into a nil
// destination.
var ErrInvalidArgument = errors.New("input: invalid argument")

// Switch tracks the press lifecycle of a single button.
//
// Typed and Released are one-shot flags: they stay set until the switch is
// transferred, regardless of how many times they are read.
type Switch struct {
	Typed    bool // first press since the last transfer
	Pressed  bool
	Released bool // released since the last transfer
	Duration int  // press calls since the button went down
}

// Press records that the button is down.
func (s *Switch) Press() {
	if !s.Pressed {
		s.Typed = true
	}
	s.Pressed = true
	s.Duration++
}

// Release records that the button is up. Releasing an already released switch
// still raises Released.
func (s *Switch) Release() {
	s.Pressed = false
	s.Released = true
	s.Duration = 0
}

// FocusLost releases the switch.
func (s *Switch) FocusLost() {
	s.Release()
}

// Transfer copies the switch state into dst and consumes the one-shot flags.
func (s *Switch) Transfer(dst *Switch) error {
	if dst == nil {
		return ErrInvalidArgument
	}
	*dst = *s
	s.Typed = false
	s.Released = false
	return nil
}
