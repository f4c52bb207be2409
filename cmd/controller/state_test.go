package main

import (
	"testing"

	"github.com/junsooki/inputdetect/internal/input"
	"github.com/junsooki/inputdetect/internal/wire"
)

type recordingDisplay struct {
	states []*input.PointerHub
}

func (d *recordingDisplay) Run() error                   { return nil }
func (d *recordingDisplay) OnTick(func())                {}
func (d *recordingDisplay) SetState(h *input.PointerHub) { d.states = append(d.states, h) }

func TestShowState(t *testing.T) {
	hub := input.NewPointerHub()
	hub.OnPress(input.PointerEvent{Button: input.ButtonRight, X: 3, Y: 4})
	hub.OnWheel(input.WheelEvent{DeltaY: 1})
	data, err := wire.EncodeState(wire.NewState(1, hub.Pick()))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	d := &recordingDisplay{}
	show := showState(d)
	show(data)
	show([]byte("not json"))

	if len(d.states) != 1 {
		t.Fatalf("drew %d states, want 1", len(d.states))
	}
	got := d.states[0]
	if !got.Right.Switch.Typed || got.Right.Cursor != input.Pt(3, 4) || got.WheelRotation != -1 {
		t.Fatalf("unexpected state drawn: %+v", got)
	}
}
