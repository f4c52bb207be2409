package peer

import (
	"encoding/json"
	"fmt"

	"github.com/pion/webrtc/v4"

	"github.com/junsooki/inputdetect/internal/signaling"
	"github.com/junsooki/inputdetect/internal/transport"
)

// Controller is the side that captures input and streams it to a Host.
type Controller struct {
	pc        *webrtc.PeerConnection
	sig       *signaling.Client
	transport *transport.DataChannelTransport
	hostID    string
}

// NewController creates a Controller peer for hostID.
func NewController(sig *signaling.Client, hostID string) (*Controller, error) {
	pc, err := NewPeerConnection(nil)
	if err != nil {
		return nil, err
	}

	ctrl := &Controller{
		pc:        pc,
		sig:       sig,
		transport: transport.NewDataChannelTransport(nil, nil),
		hostID:    hostID,
	}

	// The host creates both channels; accept them as they arrive.
	pc.OnDataChannel(func(dc *webrtc.DataChannel) {
		label := dc.Label()
		dc.OnOpen(func() {
			logger.Infof("%s channel open", label)
		})
		switch label {
		case transport.LabelState:
			ctrl.transport.SetStateChannel(dc)
		case transport.LabelInput:
			ctrl.transport.SetInputChannel(dc)
		default:
			logger.Warnf("unexpected data channel %q", label)
		}
	})

	pc.OnICECandidate(func(c *webrtc.ICECandidate) {
		if c == nil {
			return
		}
		data, err := json.Marshal(c.ToJSON())
		if err != nil {
			logger.Warnf("marshal ICE candidate: %v", err)
			return
		}
		if err := sig.SendICECandidate(hostID, data); err != nil {
			logger.Debugf("send ICE candidate: %v", err)
		}
	})

	return ctrl, nil
}

// Transport returns the DataChannelTransport.
func (c *Controller) Transport() *transport.DataChannelTransport {
	return c.transport
}

// Connect initiates the WebRTC connection by creating and sending an offer.
func (c *Controller) Connect() error {
	// An offer without any media or data section cannot negotiate SCTP, so
	// open a placeholder channel; the host's channels arrive via OnDataChannel.
	if _, err := c.pc.CreateDataChannel("control", nil); err != nil {
		return fmt.Errorf("create control channel: %w", err)
	}

	offer, err := c.pc.CreateOffer(nil)
	if err != nil {
		return err
	}
	if err := c.pc.SetLocalDescription(offer); err != nil {
		return err
	}

	offerJSON, err := json.Marshal(offer)
	if err != nil {
		return err
	}
	return c.sig.SendOffer(c.hostID, offerJSON)
}

// HandleAnswer processes an incoming SDP answer.
func (c *Controller) HandleAnswer(payload json.RawMessage) error {
	var answer webrtc.SessionDescription
	if err := json.Unmarshal(payload, &answer); err != nil {
		return fmt.Errorf("decode answer: %w", err)
	}
	return c.pc.SetRemoteDescription(answer)
}

// HandleICECandidate adds a remote ICE candidate.
func (c *Controller) HandleICECandidate(payload json.RawMessage) error {
	return addCandidate(c.pc, payload)
}

// Close shuts down the peer connection.
func (c *Controller) Close() error {
	return c.pc.Close()
}
