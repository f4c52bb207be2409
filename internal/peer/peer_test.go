package peer

import (
	"testing"

	"github.com/pion/webrtc/v4"
)

func TestConnectionLost(t *testing.T) {
	tests := []struct {
		state webrtc.PeerConnectionState
		want  bool
	}{
		{webrtc.PeerConnectionStateNew, false},
		{webrtc.PeerConnectionStateConnecting, false},
		{webrtc.PeerConnectionStateConnected, false},
		{webrtc.PeerConnectionStateDisconnected, true},
		{webrtc.PeerConnectionStateFailed, true},
		{webrtc.PeerConnectionStateClosed, true},
	}
	for _, tt := range tests {
		if got := connectionLost(tt.state); got != tt.want {
			t.Errorf("connectionLost(%s) = %v, want %v", tt.state, got, tt.want)
		}
	}
}
