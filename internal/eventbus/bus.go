package eventbus

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/kazz187/aisa/internal/task"
)

type Type string

const (
	TypeTaskCreated       Type = "task.created"
	TypeTaskStatusChanged Type = "task.status_changed"
)

type Event struct {
	ID        string        `json:"id"`
	Type      Type          `json:"type"`
	TaskID    string        `json:"task_id"`
	Status    task.Status   `json:"status"`
	Platform  task.Platform `json:"platform"`
	CreatedAt time.Time     `json:"created_at"`
}

type Bus struct {
	mu          sync.RWMutex
	subscribers map[string]chan *Event
}

func New() *Bus {
	return &Bus{
		subscribers: make(map[string]chan *Event),
	}
}

func (b *Bus) Subscribe(bufSize int) (string, <-chan *Event) {
	id := ulid.Make().String()
	ch := make(chan *Event, bufSize)
	b.mu.Lock()
	b.subscribers[id] = ch
	b.mu.Unlock()
	return id, ch
}

func (b *Bus) Unsubscribe(id string) {
	b.mu.Lock()
	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
	b.mu.Unlock()
}

func (b *Bus) Publish(event *Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			// buffer full, drop event for this subscriber
		}
	}
}

// PublishTask publishes an event describing the current state of t.
func (b *Bus) PublishTask(eventType Type, t *task.Task) {
	b.Publish(&Event{
		ID:        ulid.Make().String(),
		Type:      eventType,
		TaskID:    t.ID,
		Status:    t.Status,
		Platform:  t.Platform,
		CreatedAt: time.Now().UTC(),
	})
}
