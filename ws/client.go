package ws

import (
	"context"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/farhatamiine/restaurent-menu/events"
)

const (
	reconnectBase = time.Second
	reconnectMax  = 30 * time.Second
)

// Subscriber keeps a MenuView current by consuming the change feed over a
// websocket, reconnecting with capped backoff when the connection drops.
type Subscriber struct {
	url  string
	view *MenuView
}

func NewSubscriber(url string, view *MenuView) *Subscriber {
	return &Subscriber{url: url, view: view}
}

// nextBackoff advances the reconnect delay: a session that reached the
// server resets to the base, repeated dial failures double up to the cap.
func nextBackoff(cur time.Duration, connected bool) time.Duration {
	if connected || cur == 0 {
		return reconnectBase
	}
	cur *= 2
	if cur > reconnectMax {
		cur = reconnectMax
	}
	return cur
}

// Run blocks until ctx is cancelled. Cancellation closes the connection and
// stops the goroutine; nothing mutates the view afterwards.
func (s *Subscriber) Run(ctx context.Context) {
	var backoff time.Duration

	for {
		connected, err := s.consume(ctx)
		backoff = nextBackoff(backoff, connected)
		if err != nil && ctx.Err() == nil {
			log.Printf("ws feed: %v, reconnecting in %s", err, backoff)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
	}
}

// consume reports whether the dial succeeded, so Run can distinguish a
// dropped session from a server that was never reachable.
func (s *Subscriber) consume(ctx context.Context) (bool, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	// Unblock ReadJSON when the subscription is torn down.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		var ev events.Event
		if err := conn.ReadJSON(&ev); err != nil {
			return true, err
		}
		s.view.Apply(ev)
	}
}
