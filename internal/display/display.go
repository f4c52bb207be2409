package display

import (
	"github.com/junsooki/inputdetect/internal/input"
	"github.com/junsooki/inputdetect/internal/wire"
)

// Display renders polled input state and captures user input.
type Display interface {
	Run() error
	SetState(h *input.PointerHub)
	OnTick(fn func())
}

var _ Display = (*EbitenDisplay)(nil)

// InputCallback is called for each raw input event the user generates.
type InputCallback func(e wire.Event)
