package transport

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pion/webrtc/v4"
)

// ErrChannelNotSet is returned when sending before the DataChannel exists.
var ErrChannelNotSet = errors.New("data channel not set")

// Channel labels negotiated between host and controller.
const (
	LabelState = "state"
	LabelInput = "input"
)

// DataChannelTransport carries snapshots and input events over WebRTC
// DataChannels.
type DataChannelTransport struct {
	mu      sync.RWMutex
	stateDC *webrtc.DataChannel
	inputDC *webrtc.DataChannel

	onState func(data []byte)
	onInput func(data []byte)
}

// NewDataChannelTransport wraps two DataChannels (state + input). Either may
// be nil and set later once the remote side opens it.
func NewDataChannelTransport(stateDC, inputDC *webrtc.DataChannel) *DataChannelTransport {
	t := &DataChannelTransport{}
	if stateDC != nil {
		t.SetStateChannel(stateDC)
	}
	if inputDC != nil {
		t.SetInputChannel(inputDC)
	}
	return t
}

// SendState sends an encoded snapshot to the controller.
func (t *DataChannelTransport) SendState(data []byte) error {
	t.mu.RLock()
	dc := t.stateDC
	t.mu.RUnlock()
	if dc == nil {
		return fmt.Errorf("%s: %w", LabelState, ErrChannelNotSet)
	}
	return dc.Send(data)
}

// SendInput sends an encoded input event to the host.
func (t *DataChannelTransport) SendInput(data []byte) error {
	t.mu.RLock()
	dc := t.inputDC
	t.mu.RUnlock()
	if dc == nil {
		return fmt.Errorf("%s: %w", LabelInput, ErrChannelNotSet)
	}
	return dc.Send(data)
}

// OnState registers a callback for snapshots from the host.
func (t *DataChannelTransport) OnState(cb func(data []byte)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onState = cb
}

// OnInput registers a callback for input events from the controller.
func (t *DataChannelTransport) OnInput(cb func(data []byte)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onInput = cb
}

// SetStateChannel sets or replaces the state DataChannel.
func (t *DataChannelTransport) SetStateChannel(dc *webrtc.DataChannel) {
	t.mu.Lock()
	t.stateDC = dc
	t.mu.Unlock()
	dc.OnMessage(func(msg webrtc.DataChannelMessage) {
		t.deliver(msg.Data, func() func([]byte) { return t.onState })
	})
}

// SetInputChannel sets or replaces the input DataChannel.
func (t *DataChannelTransport) SetInputChannel(dc *webrtc.DataChannel) {
	t.mu.Lock()
	t.inputDC = dc
	t.mu.Unlock()
	dc.OnMessage(func(msg webrtc.DataChannelMessage) {
		t.deliver(msg.Data, func() func([]byte) { return t.onInput })
	})
}

func (t *DataChannelTransport) deliver(data []byte, pick func() func([]byte)) {
	t.mu.RLock()
	cb := pick()
	t.mu.RUnlock()
	if cb != nil {
		cb(data)
	}
}
