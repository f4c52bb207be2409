// Command demo polls pointer and touch input locally and draws a mark under
// each pressed button.
package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"github.com/kataras/golog"

	"github.com/junsooki/inputdetect/internal/config"
	"github.com/junsooki/inputdetect/internal/display"
	"github.com/junsooki/inputdetect/internal/input"
	"github.com/junsooki/inputdetect/internal/wire"
)

func main() {
	cfg, err := config.ParseDemoFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		golog.Fatalf("config: %v", err)
	}
	golog.SetLevel(cfg.LogLevel)

	adapter := input.NewTouchAdapter()
	var disp display.Display = display.NewEbitenDisplay("inputdetect demo", cfg.Width, cfg.Height, func(e wire.Event) {
		if err := wire.Apply(adapter, e); err != nil {
			golog.Warnf("apply %s: %v", e.Type, err)
		}
	})

	var (
		frame   int
		lastLog time.Time
	)
	disp.OnTick(func() {
		frame++
		state := adapter.Pick()
		disp.SetState(state)
		if cfg.LogEvery > 0 && time.Since(lastLog) >= cfg.LogEvery {
			lastLog = time.Now()
			logState(frame, state)
		}
	})

	if err := disp.Run(); err != nil {
		golog.Fatalf("display: %v", err)
	}
}

func logState(frame int, h *input.PointerHub) {
	golog.Infof("frame[%d] position=%.1f,%.1f wheel=%.2f", frame, h.Cursor.X, h.Cursor.Y, h.WheelRotation)
	golog.Infof("  dragged  L=%.1f,%.1f R=%.1f,%.1f", h.Left.Dragged.X, h.Left.Dragged.Y, h.Right.Dragged.X, h.Right.Dragged.Y)
	golog.Infof("  pressed  %t,%t,%t", h.Left.Switch.Pressed, h.Right.Switch.Pressed, h.Middle.Switch.Pressed)
	golog.Infof("  released %t,%t,%t", h.Left.Switch.Released, h.Right.Switch.Released, h.Middle.Switch.Released)
	golog.Infof("  typed    %t,%t,%t", h.Left.Switch.Typed, h.Right.Switch.Typed, h.Middle.Switch.Typed)
}
