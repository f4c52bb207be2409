package main

import (
	"sync"

	"github.com/junsooki/inputdetect/internal/peer"
)

// session tracks the peer of the connected controller. Buttons held by a
// controller are released when it goes away, but a late loss report from a
// replaced peer must not touch the state the new controller is driving.
type session struct {
	mu        sync.Mutex
	current   *peer.Host
	focusLost func()
}

// replace makes h the current peer and returns the one it replaced. Input of
// the replaced controller is released right away.
func (s *session) replace(h *peer.Host) *peer.Host {
	s.mu.Lock()
	old := s.current
	s.current = h
	s.mu.Unlock()
	if old != nil {
		s.focusLost()
	}
	return old
}

// drop forgets h if it is still the current peer.
func (s *session) drop(h *peer.Host) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == h {
		s.current = nil
	}
}

// peer returns the current peer, or nil.
func (s *session) peer() *peer.Host {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// lost releases held buttons if h is still the current peer.
func (s *session) lost(h *peer.Host) {
	s.mu.Lock()
	current := h != nil && h == s.current
	s.mu.Unlock()
	if current {
		s.focusLost()
	}
}
