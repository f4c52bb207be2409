package display

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/junsooki/inputdetect/internal/wire"
)

// touchTracker turns per-tick touch positions into touch start/move/end
// batches. An end batch carries the contacts that stayed down; start and move
// batches carry every contact down after the change.
type touchTracker struct {
	prev map[ebiten.TouchID]wire.Touch
}

func (t *touchTracker) update(ids []ebiten.TouchID, pos func(ebiten.TouchID) wire.Touch) []wire.Event {
	slices.Sort(ids)
	cur := make(map[ebiten.TouchID]wire.Touch, len(ids))
	batch := make([]wire.Touch, 0, len(ids))
	var kept []wire.Touch
	for _, id := range ids {
		p := pos(id)
		cur[id] = p
		batch = append(batch, p)
		if _, ok := t.prev[id]; ok {
			kept = append(kept, p)
		}
	}

	var added, removed, moved bool
	for id, p := range cur {
		old, ok := t.prev[id]
		if !ok {
			added = true
		} else if old != p {
			moved = true
		}
	}
	for id := range t.prev {
		if _, ok := cur[id]; !ok {
			removed = true
		}
	}
	t.prev = cur

	var events []wire.Event
	if removed {
		events = append(events, wire.Event{Type: wire.EventTouchEnd, Touches: kept})
	}
	if added {
		events = append(events, wire.Event{Type: wire.EventTouchStart, Touches: batch})
	}
	if moved && !added && !removed {
		events = append(events, wire.Event{Type: wire.EventTouchMove, Touches: batch})
	}
	return events
}

// active reports whether any contact is down.
func (t *touchTracker) active() bool {
	return len(t.prev) > 0
}
