package game

import (
	"context"
	"time"

	"github.com/cbodonnell/moralmaze/pkg/messages"
)

// publish enqueues a stream message. A full or missing queue drops it.
func (c *SessionController) publish(messageType string, payload interface{}) {
	if c.eventQueue == nil {
		return
	}
	msg, err := messages.NewMessage(messageType, payload)
	if err != nil {
		c.logger.Error("Failed to build %s message: %v", messageType, err)
		return
	}
	if err := c.eventQueue.Enqueue(msg); err != nil {
		c.logger.Warn("Dropped %s message: %v", messageType, err)
	}
}

// commit persists the state and publishes the resulting state view.
func (c *SessionController) commit(ctx context.Context, now time.Time) *messages.StateView {
	c.persist(ctx, now)
	view := c.stateView(now)
	c.publish(messages.MessageTypeStateUpdate, view)
	return view
}
