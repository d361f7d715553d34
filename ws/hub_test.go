package ws

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"net/http/httptest"

	"github.com/farhatamiine/restaurent-menu/entity"
	"github.com/farhatamiine/restaurent-menu/events"
)

func newFeedServer(t *testing.T) (*FeedHub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewFeedHub()
	go hub.Run()

	r := gin.New()
	r.GET("/ws/menu", hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/menu"
}

// publishUntil re-sends ev until the consumer signals done; registration of a
// fresh connection races the first broadcast, so a single publish can be lost.
func publishUntil(hub *FeedHub, ev events.Event, done <-chan struct{}) {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			hub.Publish(ev)
		}
	}
}

// Publishers must never stall: even with nothing draining the hub, Publish
// drops on a full buffer instead of blocking the mutation that produced the
// event.
func TestPublishNeverBlocksWithoutConsumer(t *testing.T) {
	hub := NewFeedHub() // Run deliberately not started

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < broadcastBuffer*3; i++ {
			hub.Publish(events.Event{Kind: events.KindUpdated, Table: events.TableMenuItems, ID: uint(i)})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked with no consumer draining the hub")
	}
}

func TestNextBackoffResetsAfterConnectedSession(t *testing.T) {
	// Repeated dial failures double up to the cap.
	b := nextBackoff(0, false)
	require.Equal(t, reconnectBase, b)
	b = nextBackoff(b, false)
	require.Equal(t, 2*reconnectBase, b)
	for i := 0; i < 10; i++ {
		b = nextBackoff(b, false)
	}
	require.Equal(t, reconnectMax, b)

	// A session that reached the server resets the delay, however long the
	// connection lasted before dropping.
	require.Equal(t, reconnectBase, nextBackoff(b, true))
}

func TestHubBroadcastsToClient(t *testing.T) {
	hub, url := newFeedServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	item := &entity.MenuItem{Model: gorm.Model{ID: 7}, Name: "Ramen", IsAvailable: false, CategoryID: 1}

	done := make(chan struct{})
	go publishUntil(hub, events.ItemUpdated(item), done)

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var got events.Event
	require.NoError(t, conn.ReadJSON(&got))
	close(done)

	require.Equal(t, events.KindUpdated, got.Kind)
	require.Equal(t, events.TableMenuItems, got.Table)
	require.Equal(t, uint(7), got.ID)
	require.NotNil(t, got.After)
	require.Equal(t, "Ramen", got.After.Name)
	require.False(t, got.After.IsAvailable)
}

func TestSubscriberKeepsViewCurrent(t *testing.T) {
	hub, url := newFeedServer(t)

	view := NewMenuView([]entity.Category{
		{
			Model: gorm.Model{ID: 1},
			Name:  "Mains",
			Items: []entity.MenuItem{
				{Model: gorm.Model{ID: 7}, Name: "Ramen", IsAvailable: true, CategoryID: 1},
			},
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := NewSubscriber(url, view)
	stopped := make(chan struct{})
	go func() {
		sub.Run(ctx)
		close(stopped)
	}()

	soldOut := &entity.MenuItem{Model: gorm.Model{ID: 7}, Name: "Ramen", IsAvailable: false, CategoryID: 1}
	done := make(chan struct{})
	go publishUntil(hub, events.ItemUpdated(soldOut), done)

	require.Eventually(t, func() bool {
		return !view.Categories()[0].Items[0].IsAvailable
	}, 5*time.Second, 20*time.Millisecond)
	close(done)

	// Teardown stops the goroutine; the view is no longer mutated.
	cancel()
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("subscriber did not stop on cancellation")
	}
}
