package peer

import (
	"encoding/json"
	"fmt"

	"github.com/pion/webrtc/v4"

	"github.com/junsooki/inputdetect/internal/signaling"
	"github.com/junsooki/inputdetect/internal/transport"
)

// Host is the side that owns the input state: it receives events on the
// input channel and publishes snapshots on the state channel.
type Host struct {
	pc        *webrtc.PeerConnection
	sig       *signaling.Client
	transport *transport.DataChannelTransport
	peerID    string // the controller we're connected to
}

// NewHost creates a Host peer. onLost is called with the peer when its
// controller goes away; it may run after a newer peer has replaced this one.
func NewHost(sig *signaling.Client, onLost func(*Host)) (*Host, error) {
	h := &Host{sig: sig}
	lost := func() {
		if onLost != nil {
			onLost(h)
		}
	}

	pc, err := NewPeerConnection(lost)
	if err != nil {
		return nil, err
	}
	h.pc = pc

	// Stale snapshots are useless, so the state channel never retransmits.
	stateOrdered := false
	stateMaxRetransmits := uint16(0)
	stateDC, err := pc.CreateDataChannel(transport.LabelState, &webrtc.DataChannelInit{
		Ordered:        &stateOrdered,
		MaxRetransmits: &stateMaxRetransmits,
	})
	if err != nil {
		pc.Close()
		return nil, fmt.Errorf("create %s channel: %w", transport.LabelState, err)
	}

	// Edges must not be lost or reordered on the input channel.
	inputOrdered := true
	inputDC, err := pc.CreateDataChannel(transport.LabelInput, &webrtc.DataChannelInit{
		Ordered: &inputOrdered,
	})
	if err != nil {
		pc.Close()
		return nil, fmt.Errorf("create %s channel: %w", transport.LabelInput, err)
	}
	inputDC.OnClose(func() {
		logger.Infof("input channel closed")
		lost()
	})

	h.transport = transport.NewDataChannelTransport(stateDC, inputDC)

	pc.OnICECandidate(func(c *webrtc.ICECandidate) {
		if c == nil || h.peerID == "" {
			return
		}
		data, err := json.Marshal(c.ToJSON())
		if err != nil {
			logger.Warnf("marshal ICE candidate: %v", err)
			return
		}
		if err := sig.SendICECandidate(h.peerID, data); err != nil {
			logger.Debugf("send ICE candidate: %v", err)
		}
	})

	return h, nil
}

// Transport returns the DataChannelTransport for sending snapshots and
// receiving input.
func (h *Host) Transport() *transport.DataChannelTransport {
	return h.transport
}

// HandleOffer processes an incoming offer from a controller.
func (h *Host) HandleOffer(from string, payload json.RawMessage) error {
	h.peerID = from

	var offer webrtc.SessionDescription
	if err := json.Unmarshal(payload, &offer); err != nil {
		return fmt.Errorf("decode offer: %w", err)
	}
	if err := h.pc.SetRemoteDescription(offer); err != nil {
		return err
	}

	answer, err := h.pc.CreateAnswer(nil)
	if err != nil {
		return err
	}
	if err := h.pc.SetLocalDescription(answer); err != nil {
		return err
	}

	answerJSON, err := json.Marshal(answer)
	if err != nil {
		return err
	}
	return h.sig.SendAnswer(from, answerJSON)
}

// HandleICECandidate adds a remote ICE candidate.
func (h *Host) HandleICECandidate(payload json.RawMessage) error {
	return addCandidate(h.pc, payload)
}

// Close shuts down the peer connection.
func (h *Host) Close() error {
	return h.pc.Close()
}

func addCandidate(pc *webrtc.PeerConnection, payload json.RawMessage) error {
	var candidate webrtc.ICECandidateInit
	if err := json.Unmarshal(payload, &candidate); err != nil {
		return fmt.Errorf("decode ICE candidate: %w", err)
	}
	return pc.AddICECandidate(candidate)
}
