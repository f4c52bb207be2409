// Package throttle limits how often mouse moves are forwarded without losing
// the final position of a motion.
package throttle

import (
	"golang.org/x/time/rate"

	"github.com/junsooki/inputdetect/internal/wire"
)

// Throttle forwards events to a send function. Mouse moves above the
// configured rate are held back and only the latest one is kept; it is sent
// before the next other event or on a later Tick. Drag is the sum of per-move
// deltas, so skipping intermediate mouse moves does not change it.
//
// Touch moves always go through. Pinch rotation is damped per sample, so
// merging two-finger samples would change the rotation of a gesture.
type Throttle struct {
	limiter *rate.Limiter
	send    func(wire.Event)
	pending *wire.Event
}

// New returns a Throttle allowing perSecond mouse moves. Zero or less disables
// throttling.
func New(perSecond int, send func(wire.Event)) *Throttle {
	t := &Throttle{send: send}
	if perSecond > 0 {
		t.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
	return t
}

func isMove(e wire.Event) bool {
	return e.Type == wire.EventMouseMove
}

// Send forwards e, or holds it back if it is a mouse move over the rate.
func (t *Throttle) Send(e wire.Event) {
	if !isMove(e) {
		t.Flush()
		t.send(e)
		return
	}
	if t.limiter == nil || t.limiter.Allow() {
		t.pending = nil
		t.send(e)
		return
	}
	t.pending = &e
}

// Tick sends a held-back move once the rate allows it.
func (t *Throttle) Tick() {
	if t.pending != nil && t.limiter.Allow() {
		t.Flush()
	}
}

// Flush sends a held-back move immediately.
func (t *Throttle) Flush() {
	if t.pending == nil {
		return
	}
	e := *t.pending
	t.pending = nil
	t.send(e)
}
