package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"sync/atomic"
	"time"

	"github.com/kataras/golog"

	"github.com/junsooki/inputdetect/internal/config"
	"github.com/junsooki/inputdetect/internal/display"
	"github.com/junsooki/inputdetect/internal/peer"
	"github.com/junsooki/inputdetect/internal/signaling"
	"github.com/junsooki/inputdetect/internal/throttle"
	"github.com/junsooki/inputdetect/internal/wire"
)

const connectTimeout = 10 * time.Second

func main() {
	cfg, err := config.ParseControllerFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		golog.Fatalf("config: %v (usage: controller -signaling <url> -host <host-id>)", err)
	}
	golog.SetLevel(cfg.LogLevel)

	golog.Infof("inputdetect controller starting")
	golog.Infof("  Controller ID: %s", cfg.ControllerID)
	golog.Infof("  Signaling:     %s", cfg.SignalingURL)
	golog.Infof("  Target host:   %s", cfg.HostID)

	var ctrlPeer atomic.Pointer[peer.Controller]

	// Input goes to the host; the display only shows what the host polled.
	moves := throttle.New(cfg.MoveRate, func(e wire.Event) {
		c := ctrlPeer.Load()
		if c == nil {
			return
		}
		data, err := wire.Encode(e)
		if err != nil {
			golog.Warnf("encode %s: %v", e.Type, err)
			return
		}
		if err := c.Transport().SendInput(data); err != nil {
			golog.Debugf("send %s: %v", e.Type, err)
		}
	})
	var disp display.Display = display.NewEbitenDisplay("inputdetect controller", cfg.Width, cfg.Height, moves.Send)
	disp.OnTick(moves.Tick)

	var sig *signaling.Client
	sig = signaling.NewClient(cfg.SignalingURL, cfg.ControllerID, signaling.ClientTypeController, signaling.Handler{
		OnRegistered: func() {
			golog.Infof("registered with signaling server")
			if err := sig.RequestHostList(); err != nil {
				golog.Warnf("request host list: %v", err)
			}

			c, err := peer.NewController(sig, cfg.HostID)
			if err != nil {
				golog.Fatalf("create controller peer: %v", err)
			}
			c.Transport().OnState(showState(disp))
			ctrlPeer.Store(c)

			if err := c.Connect(); err != nil {
				golog.Errorf("controller connect: %v", err)
			}
		},
		OnAnswer: func(from string, payload json.RawMessage) {
			if c := ctrlPeer.Load(); c != nil {
				if err := c.HandleAnswer(payload); err != nil {
					golog.Errorf("handle answer: %v", err)
				}
			}
		},
		OnICECandidate: func(from string, payload json.RawMessage) {
			if c := ctrlPeer.Load(); c != nil {
				if err := c.HandleICECandidate(payload); err != nil {
					golog.Warnf("handle ICE candidate: %v", err)
				}
			}
		},
		OnHostsUpdated: func(hosts []signaling.HostInfo) {
			if !sig.HostOnline(cfg.HostID) {
				golog.Warnf("host %s is not online (%d hosts known)", cfg.HostID, len(hosts))
			}
		},
		OnHostDisconnected: func(hostID string) {
			if hostID == cfg.HostID {
				golog.Warnf("host %s disconnected", hostID)
			}
		},
		OnError: func(msg string) {
			golog.Errorf("signaling error: %s", msg)
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	err = sig.Connect(ctx)
	cancel()
	if err != nil {
		golog.Fatalf("signaling connect: %v", err)
	}
	defer sig.Close()

	// Ebitengine RunGame must be on the main goroutine (macOS requirement).
	if err := disp.Run(); err != nil {
		golog.Fatalf("display: %v", err)
	}

	if c := ctrlPeer.Load(); c != nil {
		c.Close()
	}
}
