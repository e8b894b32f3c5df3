package ws

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestHubBroadcast(t *testing.T) {
	h := NewHub(zap.NewNop())
	go h.Run()
	defer h.Stop()

	c1 := &Client{Send: make(chan []byte, 1)}
	c2 := &Client{Send: make(chan []byte, 1)}
	h.Register(c1)
	h.Register(c2)

	h.Broadcast([]byte(`{"event":"company_updated"}`))

	for i, c := range []*Client{c1, c2} {
		select {
		case got := <-c.Send:
			if string(got) != `{"event":"company_updated"}` {
				t.Fatalf("client %d got %q", i, got)
			}
		case <-time.After(500 * time.Millisecond):
			t.Fatalf("timeout waiting for client %d", i)
		}
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	h := NewHub(zap.NewNop())
	go h.Run()
	defer h.Stop()

	c := &Client{Send: make(chan []byte, 1)}
	h.Register(c)
	h.Unregister(c)

	select {
	case _, open := <-c.Send:
		if open {
			t.Fatal("expected closed send channel")
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timeout waiting for close")
	}
}
