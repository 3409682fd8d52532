// handlers/schedule_ws.go - Live schedule feed over websocket
package handlers

import (
	"log"

	"shaurya/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// ScheduleFeedUpgrade rejects plain HTTP requests to the feed endpoint.
func ScheduleFeedUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// ScheduleFeedHandler streams ground-allocation events to the client until
// it disconnects.
var ScheduleFeedHandler = websocket.New(func(conn *websocket.Conn) {
	feed := services.GetScheduleFeed()
	if feed == nil {
		conn.Close()
		return
	}

	id, events := feed.Subscribe()
	defer feed.Unsubscribe(id)

	// Reader goroutine: we never expect client messages, but reading is
	// what surfaces the close frame.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				log.Printf("schedule feed: write to %s failed: %v", id[:8], err)
				return
			}
		case <-done:
			return
		}
	}
})
