package main

import (
	"testing"

	"github.com/junsooki/inputdetect/internal/peer"
)

func TestSessionIgnoresReplacedPeer(t *testing.T) {
	var released int
	s := &session{focusLost: func() { released++ }}

	first, second := &peer.Host{}, &peer.Host{}
	if old := s.replace(first); old != nil {
		t.Fatalf("replace on an empty session returned %p", old)
	}
	if released != 0 {
		t.Fatalf("first controller should not release anything, released %d times", released)
	}

	if old := s.replace(second); old != first {
		t.Fatalf("replace returned %p, want the first peer", old)
	}
	if released != 1 {
		t.Fatalf("taking over should release the old controller's buttons once, released %d times", released)
	}

	// The replaced peer reports its loss after the new controller is in.
	s.lost(first)
	if released != 1 {
		t.Fatalf("a replaced peer released the new controller's buttons")
	}

	s.lost(second)
	if released != 2 {
		t.Fatalf("losing the current peer should release, released %d times", released)
	}
}

func TestSessionDrop(t *testing.T) {
	s := &session{focusLost: func() {}}
	first, second := &peer.Host{}, &peer.Host{}
	s.replace(first)
	s.drop(second)
	if s.peer() != first {
		t.Fatalf("dropping another peer cleared the current one")
	}
	s.drop(first)
	if s.peer() != nil {
		t.Fatalf("current peer not dropped")
	}
}
