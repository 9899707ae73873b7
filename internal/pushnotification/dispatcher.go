package pushnotification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kazz187/aisa/internal/eventbus"
	"github.com/kazz187/aisa/internal/task"
	"github.com/kazz187/aisa/pkg/clog"
)

type Dispatcher struct {
	eventBus *eventbus.Bus
	sender   *Sender
}

func NewDispatcher(eventBus *eventbus.Bus, sender *Sender) *Dispatcher {
	return &Dispatcher{
		eventBus: eventBus,
		sender:   sender,
	}
}

// Start forwards task status changes that need a human to every push
// subscription. It blocks until ctx is done.
func (d *Dispatcher) Start(ctx context.Context) {
	subID, ch := d.eventBus.Subscribe(256)
	defer d.eventBus.Unsubscribe(subID)

	slog.InfoContext(ctx, "push notification dispatcher started")
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "push notification dispatcher stopped")
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if event.Type == eventbus.TypeTaskStatusChanged {
				d.handleStatusChanged(ctx, event)
			}
		}
	}
}

func (d *Dispatcher) handleStatusChanged(ctx context.Context, event *eventbus.Event) {
	payload := notificationFor(event)
	if payload == nil {
		return
	}
	d.sender.SendToAll(clog.WithTaskID(ctx, event.TaskID), payload)
}

func notificationFor(event *eventbus.Event) *NotificationPayload {
	var title, body string
	switch event.Status {
	case task.StatusReady:
		title = "Script Ready"
		body = fmt.Sprintf("The %s automation script for task %s is ready to run.", event.Platform, event.TaskID)
	case task.StatusSucceeded:
		title = "Execution Succeeded"
		body = fmt.Sprintf("Task %s finished successfully.", event.TaskID)
	case task.StatusFailed:
		title = "Task Failed"
		body = fmt.Sprintf("Task %s failed.", event.TaskID)
	default:
		return nil
	}
	return &NotificationPayload{
		Title: title,
		Body:  body,
		URL:   "/api/tasks/" + event.TaskID,
		Tag:   event.TaskID,
	}
}
