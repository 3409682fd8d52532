// services/schedulefeed.go - Live Ground Allocation Feed
package services

import (
	"log"
	"sync"

	"shaurya/models"

	"github.com/google/uuid"
)

// Feed event types.
const (
	EventAllocationCreated = "allocation_created"
	EventAllocationUpdated = "allocation_updated"
	EventAllocationDeleted = "allocation_deleted"
)

// ScheduleEvent is pushed to every subscriber when a ground allocation
// changes.
type ScheduleEvent struct {
	Type       string                   `json:"type"`
	Allocation *models.GroundAllocation `json:"allocation"`
}

// ScheduleFeed fans allocation events out to websocket subscribers.
type ScheduleFeed struct {
	mu          sync.RWMutex
	subscribers map[string]chan ScheduleEvent
}

var scheduleFeed *ScheduleFeed

// InitScheduleFeed initializes the singleton feed.
func InitScheduleFeed() {
	scheduleFeed = &ScheduleFeed{
		subscribers: make(map[string]chan ScheduleEvent),
	}
}

// GetScheduleFeed returns the initialized feed, or nil before InitScheduleFeed.
func GetScheduleFeed() *ScheduleFeed {
	return scheduleFeed
}

// Subscribe registers a new listener and returns its id and event channel.
func (f *ScheduleFeed) Subscribe() (string, chan ScheduleEvent) {
	id := uuid.New().String()
	ch := make(chan ScheduleEvent, 16)

	f.mu.Lock()
	f.subscribers[id] = ch
	f.mu.Unlock()

	log.Printf("schedule feed: subscriber %s connected (%d total)", id[:8], f.Count())
	return id, ch
}

// Unsubscribe removes a listener and closes its channel.
func (f *ScheduleFeed) Unsubscribe(id string) {
	f.mu.Lock()
	if ch, ok := f.subscribers[id]; ok {
		delete(f.subscribers, id)
		close(ch)
	}
	f.mu.Unlock()
}

// Publish delivers an event to all subscribers. Slow subscribers with a
// full buffer miss the event rather than blocking the publisher.
func (f *ScheduleFeed) Publish(event ScheduleEvent) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, ch := range f.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// Count returns the number of connected subscribers.
func (f *ScheduleFeed) Count() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subscribers)
}

// PublishAllocationEvent is a convenience wrapper safe to call before the
// feed is initialized (e.g. from tests that never start it).
func PublishAllocationEvent(eventType string, allocation *models.GroundAllocation) {
	if scheduleFeed == nil {
		return
	}
	scheduleFeed.Publish(ScheduleEvent{Type: eventType, Allocation: allocation})
}
