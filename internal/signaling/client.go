package signaling

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kataras/golog"
)

var logger = golog.Child("[signaling]")

const keepaliveInterval = 25 * time.Second

var errNotConnected = errors.New("signaling: not connected")

// Handler receives signaling messages. Nil callbacks are skipped. Callbacks
// run one at a time on the read goroutine.
type Handler struct {
	OnRegistered       func()
	OnOffer            func(from string, payload json.RawMessage)
	OnAnswer           func(from string, payload json.RawMessage)
	OnICECandidate     func(from string, payload json.RawMessage)
	OnHostsUpdated     func(hosts []HostInfo)
	OnHostDisconnected func(hostID string)
	OnError            func(msg string)
}

// Client is a WebSocket signaling client. It also remembers which hosts the
// server last reported online.
type Client struct {
	url     string
	self    Message // register message
	handler Handler

	mu     sync.Mutex
	conn   *websocket.Conn
	hosts  map[string]bool
	done   chan struct{}
	closed bool
}

// NewClient creates a signaling client registering as id with the given
// client type.
func NewClient(url, id, clientType string, handler Handler) *Client {
	return &Client{
		url:     url,
		self:    Message{Type: TypeRegister, ID: id, ClientType: clientType},
		handler: handler,
		hosts:   map[string]bool{},
		done:    make(chan struct{}),
	}
}

// Connect dials the server, registers and starts reading in the background.
func (c *Client) Connect(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("signaling dial: %w", err)
	}
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	if err := c.send(c.self); err != nil {
		conn.Close()
		return fmt.Errorf("signaling register: %w", err)
	}

	go c.readLoop(conn)
	go c.keepalive()
	return nil
}

// Done is closed once the connection is gone.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Close shuts down the connection. It is safe to call more than once.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.done)
	if c.conn != nil {
		c.conn.Close()
	}
}

// SendOffer sends an SDP offer to target.
func (c *Client) SendOffer(target string, payload json.RawMessage) error {
	return c.relay(TypeOffer, target, payload)
}

// SendAnswer sends an SDP answer to target.
func (c *Client) SendAnswer(target string, payload json.RawMessage) error {
	return c.relay(TypeAnswer, target, payload)
}

// SendICECandidate sends an ICE candidate to target.
func (c *Client) SendICECandidate(target string, payload json.RawMessage) error {
	return c.relay(TypeICECandidate, target, payload)
}

// RequestHostList asks the server for the hosts it knows. The answer arrives
// through OnHostsUpdated.
func (c *Client) RequestHostList() error {
	return c.send(Message{Type: TypeListHosts})
}

// HostOnline reports whether the server last listed id as an online host.
func (c *Client) HostOnline(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hosts[id]
}

func (c *Client) relay(typ, target string, payload json.RawMessage) error {
	return c.send(Message{Type: typ, Target: target, Payload: payload})
}

func (c *Client) send(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil || c.closed {
		return errNotConnected
	}
	return c.conn.WriteJSON(msg)
}

func (c *Client) readLoop(conn *websocket.Conn) {
	defer c.Close()
	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			select {
			case <-c.done:
			default:
				logger.Warnf("read: %v", err)
			}
			return
		}
		c.dispatch(msg)
	}
}

// setHosts records host presence. A full list replaces what was known.
func (c *Client) setHosts(hosts []HostInfo, replace bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if replace {
		clear(c.hosts)
	}
	for _, h := range hosts {
		c.hosts[h.ID] = h.Online
	}
}

func (c *Client) dispatch(msg Message) {
	h := c.handler
	peerMsg := func(fn func(string, json.RawMessage)) {
		if fn != nil {
			fn(msg.From, msg.Payload)
		}
	}

	switch msg.Type {
	case TypeOffer:
		peerMsg(h.OnOffer)
	case TypeAnswer:
		peerMsg(h.OnAnswer)
	case TypeICECandidate:
		peerMsg(h.OnICECandidate)
	case TypeHosts, TypeHostsUpdated:
		c.setHosts(msg.List, true)
		if h.OnHostsUpdated != nil {
			h.OnHostsUpdated(msg.List)
		}
	case TypeHostDisconnected:
		c.setHosts([]HostInfo{{ID: msg.HostID}}, false)
		if h.OnHostDisconnected != nil {
			h.OnHostDisconnected(msg.HostID)
		}
	case TypeRegistered:
		if h.OnRegistered != nil {
			h.OnRegistered()
		}
	case TypeError:
		if h.OnError != nil {
			h.OnError(msg.Msg)
		}
	case TypePong:
	default:
		logger.Debugf("ignoring message type %q", msg.Type)
	}
}

// keepalive pings the server so idle connections are not dropped by proxies.
func (c *Client) keepalive() {
	ticker := time.NewTicker(keepaliveInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			if err := c.send(Message{Type: TypePing}); err != nil {
				logger.Debugf("ping: %v", err)
			}
		}
	}
}
