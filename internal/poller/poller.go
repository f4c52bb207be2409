// Package poller owns a TouchAdapter that receives events from other
// goroutines and publishes a snapshot of it at a fixed rate.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/kataras/golog"

	"github.com/junsooki/inputdetect/internal/input"
	"github.com/junsooki/inputdetect/internal/wire"
)

var logger = golog.Child("[poller]")

// Sink receives each snapshot.
type Sink func(s wire.State) error

// Poller serializes event delivery and polling on one adapter.
type Poller struct {
	mu       sync.Mutex
	adapter  *input.TouchAdapter
	seq      uint64
	interval time.Duration
	sink     Sink
}

// New creates a Poller that publishes to sink every interval.
func New(interval time.Duration, sink Sink) *Poller {
	return &Poller{
		adapter:  input.NewTouchAdapter(),
		interval: interval,
		sink:     sink,
	}
}

// Handle decodes one wire event and applies it.
func (p *Poller) Handle(data []byte) error {
	e, err := wire.Decode(data)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return wire.Apply(p.adapter, e)
}

// FocusLost releases every button, for when the event source goes away.
func (p *Poller) FocusLost() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.adapter.FocusLost()
}

// Poll takes a snapshot and consumes its per-frame values.
func (p *Poller) Poll() wire.State {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq++
	return wire.NewState(p.seq, p.adapter.Pick())
}

// Run publishes a snapshot every interval until ctx is done.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s := p.Poll()
			if err := p.sink(s); err != nil {
				logger.Debugf("drop snapshot seq=%d: %v", s.Seq, err)
			}
		}
	}
}
