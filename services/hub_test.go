package services

import (
	"fmt"
	"sync"
	"testing"
)

func newTestClient(sessionID string) *Client {
	return &Client{sessionID: sessionID, send: make(chan []byte, 1)}
}

func TestFanOutSurvivesClosedSendChannel(t *testing.T) {
	hub := NewHub(nil)

	alive := newTestClient("s-1")
	dead := newTestClient("s-1")
	hub.register(alive)
	hub.register(dead)

	// A disconnecting spectator closes its send channel; the fan-out
	// must keep delivering to everyone else instead of panicking.
	close(dead.send)
	hub.fanOut("s-1", []byte(`{"kind":"draw"}`))

	select {
	case msg := <-alive.send:
		if string(msg) != `{"kind":"draw"}` {
			t.Fatalf("unexpected payload %s", msg)
		}
	default:
		t.Fatal("live spectator should still receive the event")
	}
}

func TestFanOutConcurrentDisconnects(t *testing.T) {
	hub := NewHub(nil)

	clients := make([]*Client, 0, 200)
	for i := 0; i < 200; i++ {
		c := newTestClient("s-2")
		hub.register(c)
		clients = append(clients, c)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for _, c := range clients {
			close(c.send)
			hub.unregisterEntry(c)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			hub.fanOut("s-2", []byte(fmt.Sprintf(`{"ts":%d}`, i)))
		}
	}()
	wg.Wait()
}

func TestUnregisterDropsEmptySessions(t *testing.T) {
	hub := NewHub(nil)

	c := newTestClient("s-3")
	hub.register(c)
	hub.unregisterEntry(c)

	hub.mu.RLock()
	_, ok := hub.clients["s-3"]
	hub.mu.RUnlock()
	if ok {
		t.Fatal("session entry should be removed once its last spectator leaves")
	}
}
