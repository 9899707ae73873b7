package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazz187/aisa/internal/task"
)

func TestBus_PublishSubscribe(t *testing.T) {
	b := New()
	id1, ch1 := b.Subscribe(4)
	_, ch2 := b.Subscribe(4)

	tk := task.New("t1", task.PlatformWeb, "sign up")
	b.PublishTask(TypeTaskCreated, tk)

	for _, ch := range []<-chan *Event{ch1, ch2} {
		ev := <-ch
		assert.Equal(t, TypeTaskCreated, ev.Type)
		assert.Equal(t, "t1", ev.TaskID)
		assert.Equal(t, task.StatusCreated, ev.Status)
		assert.NotEmpty(t, ev.ID)
	}

	b.Unsubscribe(id1)
	_, ok := <-ch1
	assert.False(t, ok)

	b.Unsubscribe("unknown")
}

func TestBus_DropsWhenBufferFull(t *testing.T) {
	b := New()
	_, ch := b.Subscribe(1)
	tk := task.New("t1", task.PlatformMobile, "log in")

	b.PublishTask(TypeTaskStatusChanged, tk)
	b.PublishTask(TypeTaskStatusChanged, tk)

	require.Len(t, ch, 1)
}
