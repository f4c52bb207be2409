package transport

import (
	"errors"
	"testing"
)

func TestSendWithoutChannels(t *testing.T) {
	tr := NewDataChannelTransport(nil, nil)
	if err := tr.SendState([]byte("{}")); !errors.Is(err, ErrChannelNotSet) {
		t.Fatalf("SendState = %v, want ErrChannelNotSet", err)
	}
	if err := tr.SendInput([]byte("{}")); !errors.Is(err, ErrChannelNotSet) {
		t.Fatalf("SendInput = %v, want ErrChannelNotSet", err)
	}
}

func TestDeliverUsesCurrentCallback(t *testing.T) {
	tr := NewDataChannelTransport(nil, nil)
	var got []string
	tr.OnInput(func(data []byte) { got = append(got, "first:"+string(data)) })
	tr.deliver([]byte("a"), func() func([]byte) { return tr.onInput })
	tr.OnInput(func(data []byte) { got = append(got, "second:"+string(data)) })
	tr.deliver([]byte("b"), func() func([]byte) { return tr.onInput })
	// No state callback registered: delivery is dropped.
	tr.deliver([]byte("c"), func() func([]byte) { return tr.onState })

	if len(got) != 2 || got[0] != "first:a" || got[1] != "second:b" {
		t.Fatalf("unexpected deliveries %q", got)
	}
}
