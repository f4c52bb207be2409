package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/kataras/golog"
	"golang.org/x/sync/errgroup"

	"github.com/junsooki/inputdetect/internal/config"
	"github.com/junsooki/inputdetect/internal/peer"
	"github.com/junsooki/inputdetect/internal/poller"
	"github.com/junsooki/inputdetect/internal/signaling"
	"github.com/junsooki/inputdetect/internal/wire"
)

var (
	errNoController  = errors.New("no controller connected")
	errSignalingLost = errors.New("signaling connection lost")
)

func main() {
	cfg, err := config.ParseHostFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		golog.Fatalf("config: %v", err)
	}
	golog.SetLevel(cfg.LogLevel)

	golog.Infof("inputdetect host starting")
	golog.Infof("  Host ID:    %s", cfg.HostID)
	golog.Infof("  Signaling:  %s", cfg.SignalingURL)
	golog.Infof("  Rate:       %d/s", cfg.Rate)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sess := &session{}

	p := poller.New(cfg.Interval(), func(s wire.State) error {
		h := sess.peer()
		if h == nil {
			return errNoController
		}
		data, err := wire.EncodeState(s)
		if err != nil {
			return err
		}
		return h.Transport().SendState(data)
	})
	sess.focusLost = p.FocusLost

	var sig *signaling.Client
	sig = signaling.NewClient(cfg.SignalingURL, cfg.HostID, signaling.ClientTypeHost, signaling.Handler{
		OnRegistered: func() {
			golog.Infof("registered with signaling server")
		},
		OnOffer: func(from string, payload json.RawMessage) {
			golog.Infof("received offer from %s", from)
			h, err := peer.NewHost(sig, sess.lost)
			if err != nil {
				golog.Errorf("create host peer: %v", err)
				return
			}
			h.Transport().OnInput(func(data []byte) {
				if err := p.Handle(data); err != nil {
					golog.Warnf("input from %s: %v", from, err)
				}
			})
			if old := sess.replace(h); old != nil {
				old.Close()
			}
			if err := h.HandleOffer(from, payload); err != nil {
				golog.Errorf("handle offer: %v", err)
				sess.drop(h)
				h.Close()
			}
		},
		OnICECandidate: func(from string, payload json.RawMessage) {
			h := sess.peer()
			if h == nil {
				return
			}
			if err := h.HandleICECandidate(payload); err != nil {
				golog.Warnf("handle ICE candidate: %v", err)
			}
		},
		OnError: func(msg string) {
			golog.Errorf("signaling error: %s", msg)
		},
	})

	if err := sig.Connect(ctx); err != nil {
		golog.Fatalf("signaling connect: %v", err)
	}
	defer sig.Close()

	golog.Infof("host ready, share this ID with controllers: %s", cfg.HostID)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return p.Run(gctx)
	})
	g.Go(func() error {
		select {
		case <-gctx.Done():
			return nil
		case <-sig.Done():
			return errSignalingLost
		}
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		golog.Errorf("%v", err)
	}

	golog.Infof("shutting down")
	if h := sess.replace(nil); h != nil {
		h.Close()
	}
}
