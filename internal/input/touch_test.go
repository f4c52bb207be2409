package input

import (
	"math"
	"testing"
)

func batch(contacts ...Contact) TouchBatch {
	return TouchBatch{Contacts: contacts}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTouchCountToButton(t *testing.T) {
	tests := []struct {
		contacts []Contact
		want     Button
	}{
		{[]Contact{{10, 10}}, ButtonLeft},
		{[]Contact{{10, 10}, {20, 10}}, ButtonRight},
		{[]Contact{{10, 10}, {20, 10}, {30, 10}}, ButtonMiddle},
	}
	for _, tt := range tests {
		a := NewTouchAdapter()
		a.OnTouchStart(batch(tt.contacts...))
		got := a.Pick()
		for _, b := range Buttons {
			s := got.Button(b).Switch
			if b == tt.want {
				if !s.Pressed || !s.Typed {
					t.Fatalf("%d contacts: %v not pressed: %+v", len(tt.contacts), b, s)
				}
			} else if s.Pressed {
				t.Fatalf("%d contacts: %v pressed too", len(tt.contacts), b)
			}
		}
	}
}

func TestTouchCentroid(t *testing.T) {
	a := NewTouchAdapter()
	a.OnTouchStart(batch(Contact{0, 0}, Contact{10, 20}))
	a.OnTouchMove(batch(Contact{2, 0}, Contact{12, 20}))
	got := a.Pick()
	if got.Cursor != Pt(7, 10) {
		t.Fatalf("cursor = %v, want (7,10)", got.Cursor)
	}
	if got.Right.Dragged != Pt(2, 0) {
		t.Fatalf("right drag = %v, want (2,0)", got.Right.Dragged)
	}
	if got.Left.Dragged != (Position{}) {
		t.Fatalf("left dragged without being pressed: %v", got.Left.Dragged)
	}
}

func TestTouchStartResetsAllBaselines(t *testing.T) {
	a := NewTouchAdapter()
	a.OnPress(PointerEvent{Button: ButtonLeft})
	a.OnMove(PointerEvent{X: 5, Y: 5})

	a.OnTouchStart(batch(Contact{100, 100}, Contact{120, 100}))
	hub := a.Hub()
	for _, b := range Buttons {
		s := hub.Button(b)
		if s.Cursor != Pt(110, 100) {
			t.Fatalf("%v cursor = %v", b, s.Cursor)
		}
		if s.Dragged != (Position{}) {
			t.Fatalf("%v drag not reset: %v", b, s.Dragged)
		}
	}
	// Adding a second finger switches from left to right.
	if hub.Left.Switch.Pressed || !hub.Right.Switch.Pressed {
		t.Fatalf("expected right pressed and left released")
	}
}

func TestTouchEndReleasesEverything(t *testing.T) {
	a := NewTouchAdapter()
	a.OnTouchStart(batch(Contact{1, 1}, Contact{2, 2}, Contact{3, 3}))
	a.Pick()
	a.OnTouchEnd(batch())
	got := a.Pick()
	if got.Middle.Switch.Pressed || !got.Middle.Switch.Released {
		t.Fatalf("middle not released: %+v", got.Middle.Switch)
	}
	if got.Left.Switch.Released || got.Right.Switch.Released {
		t.Fatalf("idle buttons should not report a release")
	}

	a.OnTouchStart(batch(Contact{1, 1}))
	a.OnTouchCancel(batch())
	if a.Hub().Left.Switch.Pressed {
		t.Fatalf("cancel did not release")
	}
}

func TestTouchTooManyContacts(t *testing.T) {
	a := NewTouchAdapter()
	a.OnTouchStart(batch(Contact{10, 10}, Contact{20, 20}, Contact{30, 30}, Contact{40, 40}))
	got := a.Pick()
	if !got.Left.Switch.Pressed {
		t.Fatalf("four contacts should act as the left button")
	}
	if got.Left.Cursor != (Position{}) {
		t.Fatalf("four contacts should sit at the origin, got %v", got.Left.Cursor)
	}
}

func TestPinchToWheel(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		want     float64
	}{
		{"large pinch in", 100, 70, 0.5},
		{"small pinch in", 100, 95, 0.05},
		{"large spread", 100, 150, -0.5},
		{"small spread", 100, 104, -0.04},
		{"still", 100, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewTouchAdapter()
			a.OnTouchMove(batch(Contact{0, 0}, Contact{tt.from, 0}))
			if !a.Pinching() {
				t.Fatalf("two contacts should start tracking")
			}
			if a.Hub().WheelRotation != 0 {
				t.Fatalf("first sample rotated the wheel")
			}
			a.OnTouchMove(batch(Contact{0, 0}, Contact{tt.to, 0}))
			if got := a.Pick().WheelRotation; !approx(got, tt.want) {
				t.Fatalf("wheel rotation = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPinchStartsOnTouchStart(t *testing.T) {
	a := NewTouchAdapter()
	a.OnTouchStart(batch(Contact{0, 0}))
	if a.Pinching() {
		t.Fatalf("one contact should not track a pinch")
	}
	a.OnTouchStart(batch(Contact{0, 0}, Contact{100, 0}))
	a.OnTouchMove(batch(Contact{0, 0}, Contact{70, 0}))
	if got := a.Pick().WheelRotation; !approx(got, 0.5) {
		t.Fatalf("wheel rotation = %v, want 0.5", got)
	}
}

func TestPinchStopsOnOtherCounts(t *testing.T) {
	a := NewTouchAdapter()
	a.OnTouchMove(batch(Contact{0, 0}, Contact{100, 0}))
	a.OnTouchMove(batch(Contact{0, 0}, Contact{100, 0}, Contact{50, 50}))
	if a.Pinching() {
		t.Fatalf("three contacts should stop tracking")
	}
	// The next two-finger sample is a new baseline, not a jump from 100 to 10.
	a.OnTouchMove(batch(Contact{0, 0}, Contact{10, 0}))
	if got := a.Pick().WheelRotation; got != 0 {
		t.Fatalf("wheel rotation = %v, want 0", got)
	}
}

func TestTouchAdapterForwardsMouse(t *testing.T) {
	a := NewTouchAdapter()
	a.OnPress(PointerEvent{Button: ButtonMiddle, X: 1, Y: 1})
	a.OnMove(PointerEvent{X: 4, Y: 5})
	a.OnWheel(WheelEvent{DeltaY: 3})
	a.OnRelease(PointerEvent{Button: ButtonMiddle})

	got := NewPointerHub()
	if err := a.Transfer(got); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if got.Middle.Dragged != Pt(3, 4) || got.WheelRotation != -1 || !got.Middle.Switch.Released {
		t.Fatalf("unexpected state: %+v", got)
	}

	a.OnPress(PointerEvent{Button: ButtonLeft})
	a.FocusLost()
	if a.Hub().Left.Switch.Pressed {
		t.Fatalf("focus lost did not release")
	}
}
