package peer

import (
	"github.com/kataras/golog"
	"github.com/pion/webrtc/v4"
)

var logger = golog.Child("[peer]")

// ICEServers is the default ICE server configuration.
var ICEServers = []webrtc.ICEServer{
	{URLs: []string{"stun:stun.l.google.com:19302", "stun:stun1.l.google.com:19302"}},
}

// NewPeerConnection creates a configured PeerConnection. onLost, if set, is
// called when the connection drops so the caller can release held buttons.
func NewPeerConnection(onLost func()) (*webrtc.PeerConnection, error) {
	pc, err := webrtc.NewPeerConnection(webrtc.Configuration{
		ICEServers: ICEServers,
	})
	if err != nil {
		return nil, err
	}
	pc.OnConnectionStateChange(func(state webrtc.PeerConnectionState) {
		logger.Infof("connection state: %s", state.String())
		if onLost != nil && connectionLost(state) {
			onLost()
		}
	})
	return pc, nil
}

func connectionLost(state webrtc.PeerConnectionState) bool {
	switch state {
	case webrtc.PeerConnectionStateDisconnected,
		webrtc.PeerConnectionStateFailed,
		webrtc.PeerConnectionStateClosed:
		return true
	}
	return false
}
