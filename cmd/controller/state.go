package main

import (
	"github.com/kataras/golog"

	"github.com/junsooki/inputdetect/internal/display"
	"github.com/junsooki/inputdetect/internal/wire"
)

// showState returns a state channel callback that draws each snapshot the
// host sends on d. Undecodable snapshots are logged and skipped.
func showState(d display.Display) func(data []byte) {
	return func(data []byte) {
		s, err := wire.DecodeState(data)
		if err != nil {
			golog.Warnf("state: %v", err)
			return
		}
		d.SetState(s.Hub())
	}
}
