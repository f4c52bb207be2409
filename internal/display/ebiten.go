package display

import (
	"fmt"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kataras/golog"

	"github.com/junsooki/inputdetect/internal/input"
	"github.com/junsooki/inputdetect/internal/wire"
)

var logger = golog.Child("[display]")

const markRadius = 25

var markColors = map[input.Button]color.RGBA{
	input.ButtonLeft:   {0xff, 0x60, 0x20, 0xcc},
	input.ButtonMiddle: {0x20, 0xc0, 0x60, 0xcc},
	input.ButtonRight:  {0xe0, 0xe0, 0xff, 0xcc},
}

var mouseButtons = []struct {
	eb  ebiten.MouseButton
	btn input.Button
}{
	{ebiten.MouseButtonLeft, input.ButtonLeft},
	{ebiten.MouseButtonMiddle, input.ButtonMiddle},
	{ebiten.MouseButtonRight, input.ButtonRight},
}

// EbitenDisplay shows a fixed-size canvas letterboxed in a resizable window.
// Input over the canvas is reported in canvas coordinates together with a
// Target describing how large the canvas is on screen.
type EbitenDisplay struct {
	title   string
	width   int
	height  int
	onInput InputCallback
	onTick  func()

	mu      sync.Mutex
	pending []*input.PointerHub

	canvas  *ebiten.Image
	viewW   int
	viewH   int
	inside  bool
	focused bool
	prevX   float64
	prevY   float64
	touches touchTracker
	wheel   float64 // running total of polled wheel rotation
}

// NewEbitenDisplay creates a display whose canvas is width x height pixels.
func NewEbitenDisplay(title string, width, height int, onInput InputCallback) *EbitenDisplay {
	return &EbitenDisplay{
		title:   title,
		width:   width,
		height:  height,
		onInput: onInput,
		viewW:   width,
		viewH:   height,
		focused: true,
	}
}

// OnTick registers fn to run on the game loop after each tick's input has
// been reported. It is the place to poll a local adapter.
func (d *EbitenDisplay) OnTick(fn func()) {
	d.onTick = fn
}

// SetState queues a snapshot to be drawn on the next frame. Safe to call from
// any goroutine.
func (d *EbitenDisplay) SetState(h *input.PointerHub) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = append(d.pending, h)
}

// Run starts the Ebitengine game loop. Must be called from the main goroutine.
func (d *EbitenDisplay) Run() error {
	ebiten.SetWindowSize(d.width, d.height)
	ebiten.SetWindowTitle(d.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	applyPresentation()
	return ebiten.RunGame(d)
}

// applyPresentation sets up how the surface looks under the pointer. The
// input core never touches presentation.
func applyPresentation() {
	ebiten.SetCursorShape(ebiten.CursorShapeCrosshair)
}

// --- ebiten.Game interface ---

func (d *EbitenDisplay) Update() error {
	d.captureInput()
	if d.onTick != nil {
		d.onTick()
	}
	return nil
}

func (d *EbitenDisplay) Draw(screen *ebiten.Image) {
	if d.canvas == nil {
		d.canvas = ebiten.NewImage(d.width, d.height)
		d.canvas.Fill(color.Black)
	}

	// Update may run more than once per frame; every snapshot is painted so
	// that no edge or wheel rotation is skipped.
	d.mu.Lock()
	pending := d.pending
	d.pending = nil
	d.mu.Unlock()

	for _, h := range pending {
		d.paint(h)
	}

	scale, offsetX, offsetY := aspectFitTransform(float64(d.viewW), float64(d.viewH), float64(d.width), float64(d.height))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offsetX, offsetY)
	screen.DrawImage(d.canvas, op)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("wheel %.2f", d.wheel))
}

func (d *EbitenDisplay) Layout(outsideWidth, outsideHeight int) (int, int) {
	d.viewW, d.viewH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// paint marks every pressed button at its cursor. Marks accumulate on the
// canvas; a middle-button press clears it.
func (d *EbitenDisplay) paint(h *input.PointerHub) {
	if h.Middle.Switch.Typed {
		d.canvas.Fill(color.Black)
	}
	d.wheel += h.WheelRotation
	for _, b := range input.Buttons {
		s := h.Button(b)
		if !s.Switch.Pressed {
			continue
		}
		vector.DrawFilledCircle(d.canvas, float32(s.Cursor.X), float32(s.Cursor.Y), markRadius, markColors[b], true)
	}
}

// --- Input capture ---

func (d *EbitenDisplay) target() (t *wire.Target, offsetX, offsetY float64) {
	w, h := float64(d.width), float64(d.height)
	scale, offsetX, offsetY := aspectFitTransform(float64(d.viewW), float64(d.viewH), w, h)
	return &wire.Target{
		ClientWidth:  w * scale,
		ClientHeight: h * scale,
		Width:        w,
		Height:       h,
	}, offsetX, offsetY
}

func (d *EbitenDisplay) captureInput() {
	target, offsetX, offsetY := d.target()

	focused := ebiten.IsFocused()
	if !focused && d.focused {
		d.send(wire.Event{Type: wire.EventFocusLost})
	}
	d.focused = focused
	if !focused {
		return
	}

	d.captureTouches(target, offsetX, offsetY)
	if d.touches.active() {
		return
	}
	d.captureMouse(target, offsetX, offsetY)
}

func (d *EbitenDisplay) captureMouse(target *wire.Target, offsetX, offsetY float64) {
	mx, my := ebiten.CursorPosition()
	x := float64(mx) - offsetX
	y := float64(my) - offsetY

	inside := x >= 0 && y >= 0 && x < target.ClientWidth && y < target.ClientHeight
	if !inside {
		if d.inside {
			// Leaving the canvas releases everything, like a pointer-out.
			d.send(wire.Event{Type: wire.EventFocusLost})
		}
		d.inside = false
		return
	}
	d.inside = true

	if x != d.prevX || y != d.prevY {
		d.prevX, d.prevY = x, y
		d.send(wire.Event{Type: wire.EventMouseMove, X: x, Y: y, Target: target})
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			d.send(wire.Event{Type: wire.EventMouseDown, X: x, Y: y, Button: b.btn, Target: target})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			d.send(wire.Event{Type: wire.EventMouseUp, X: x, Y: y, Button: b.btn, Target: target})
		}
	}

	// Ebitengine reports scrolling up as positive; wire events follow the
	// DOM convention where scrolling down is positive.
	if _, dy := ebiten.Wheel(); dy != 0 {
		d.send(wire.Event{Type: wire.EventMouseWheel, DeltaY: -dy})
	}
}

func (d *EbitenDisplay) captureTouches(target *wire.Target, offsetX, offsetY float64) {
	ids := ebiten.AppendTouchIDs(nil)
	events := d.touches.update(ids, func(id ebiten.TouchID) wire.Touch {
		x, y := ebiten.TouchPosition(id)
		return wire.Touch{X: float64(x) - offsetX, Y: float64(y) - offsetY}
	})
	for _, e := range events {
		e.Target = target
		d.send(e)
	}
}

func (d *EbitenDisplay) send(e wire.Event) {
	if d.onInput == nil {
		return
	}
	logger.Debugf("input %s x=%.1f y=%.1f button=%s touches=%d", e.Type, e.X, e.Y, e.Button, len(e.Touches))
	d.onInput(e)
}

// aspectFitTransform returns scale and offsets to fit frame into view with letterboxing.
func aspectFitTransform(viewW, viewH, frameW, frameH float64) (scale, offsetX, offsetY float64) {
	scale = math.Min(viewW/frameW, viewH/frameH)
	offsetX = (viewW - frameW*scale) / 2
	offsetY = (viewH - frameH*scale) / 2
	return
}
