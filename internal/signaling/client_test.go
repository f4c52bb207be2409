package signaling

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// fakeServer registers the first client and then sends it an offer.
func fakeServer(t *testing.T, registered chan<- Message) *httptest.Server {
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()

		var reg Message
		if err := conn.ReadJSON(&reg); err != nil {
			t.Errorf("read register: %v", err)
			return
		}
		registered <- reg
		conn.WriteJSON(Message{Type: TypeRegistered})
		conn.WriteJSON(Message{Type: TypeOffer, From: "controller-1", Payload: json.RawMessage(`{"sdp":"x"}`)})

		// Echo until the client hangs up.
		for {
			var msg Message
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
		}
	}))
}

func TestClientRegistersAndDispatches(t *testing.T) {
	registered := make(chan Message, 1)
	srv := fakeServer(t, registered)
	defer srv.Close()

	gotRegistered := make(chan struct{})
	offers := make(chan string, 1)
	c := NewClient("ws"+strings.TrimPrefix(srv.URL, "http"), "host-1", ClientTypeHost, Handler{
		OnRegistered: func() { close(gotRegistered) },
		OnOffer: func(from string, payload json.RawMessage) {
			offers <- from + " " + string(payload)
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Connect(ctx); err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer c.Close()

	select {
	case reg := <-registered:
		if reg.Type != TypeRegister || reg.ID != "host-1" || reg.ClientType != ClientTypeHost {
			t.Fatalf("unexpected register message %+v", reg)
		}
	case <-ctx.Done():
		t.Fatalf("server never saw the register message")
	}

	select {
	case <-gotRegistered:
	case <-ctx.Done():
		t.Fatalf("OnRegistered not called")
	}

	select {
	case got := <-offers:
		if got != `controller-1 {"sdp":"x"}` {
			t.Fatalf("unexpected offer %q", got)
		}
	case <-ctx.Done():
		t.Fatalf("OnOffer not called")
	}
}

func TestSendBeforeConnect(t *testing.T) {
	c := NewClient("ws://unused", "id", ClientTypeController, Handler{})
	if err := c.SendOffer("host", nil); err != errNotConnected {
		t.Fatalf("SendOffer = %v, want errNotConnected", err)
	}
	c.Close()
	c.Close()
	select {
	case <-c.Done():
	default:
		t.Fatalf("Done not closed after Close")
	}
}

func TestClientTracksHosts(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		for {
			var msg Message
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			if msg.Type == TypeListHosts {
				conn.WriteJSON(Message{Type: TypeHosts, List: []HostInfo{
					{ID: "host-a", Online: true},
					{ID: "host-b", Online: false},
				}})
				conn.WriteJSON(Message{Type: TypeHostDisconnected, HostID: "host-a"})
			}
		}
	}))
	defer srv.Close()

	type listed struct {
		hosts        []HostInfo
		aOnline      bool
		bOnline      bool
		unknownKnown bool
	}
	lists := make(chan listed, 1)
	gone := make(chan string, 1)
	var c *Client
	c = NewClient("ws"+strings.TrimPrefix(srv.URL, "http"), "controller-1", ClientTypeController, Handler{
		// Presence is checked here, before the next message is read.
		OnHostsUpdated: func(hosts []HostInfo) {
			lists <- listed{hosts, c.HostOnline("host-a"), c.HostOnline("host-b"), c.HostOnline("host-c")}
		},
		OnHostDisconnected: func(id string) { gone <- id },
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Connect(ctx); err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer c.Close()

	if err := c.RequestHostList(); err != nil {
		t.Fatalf("request host list: %v", err)
	}
	select {
	case got := <-lists:
		if len(got.hosts) != 2 {
			t.Fatalf("unexpected host list %+v", got.hosts)
		}
		if !got.aOnline || got.bOnline || got.unknownKnown {
			t.Fatalf("host presence not recorded from the list: %+v", got)
		}
	case <-ctx.Done():
		t.Fatalf("OnHostsUpdated not called")
	}

	select {
	case id := <-gone:
		if id != "host-a" || c.HostOnline("host-a") {
			t.Fatalf("host-a should be offline after %q disconnected", id)
		}
	case <-ctx.Done():
		t.Fatalf("OnHostDisconnected not called")
	}
}
