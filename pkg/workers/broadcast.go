package workers

import (
	"context"
	"errors"
	"fmt"

	"github.com/cbodonnell/moralmaze/pkg/log"
	"github.com/cbodonnell/moralmaze/pkg/messages"
	"github.com/cbodonnell/moralmaze/pkg/queue"
)

// Broadcaster delivers a message to stream subscribers.
type Broadcaster interface {
	Broadcast(msg *messages.Message) error
}

type BroadcastMessageWorker struct {
	broadcaster Broadcaster
	eventQueue  queue.Queue
}

type NewBroadcastMessageWorkerOptions struct {
	Broadcaster Broadcaster
	EventQueue  queue.Queue
}

// NewBroadcastMessageWorker creates a new BroadcastMessageWorker.
// The worker drains session events from the queue and forwards them
// to the stream.
func NewBroadcastMessageWorker(opts NewBroadcastMessageWorkerOptions) *BroadcastMessageWorker {
	return &BroadcastMessageWorker{
		broadcaster: opts.Broadcaster,
		eventQueue:  opts.EventQueue,
	}
}

func (w *BroadcastMessageWorker) Start(ctx context.Context) {
	for {
		item, err := w.eventQueue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			log.Error("Failed to dequeue event: %v", err)
			continue
		}
		if err := w.handle(item); err != nil {
			log.Error("Failed to broadcast event: %v", err)
		}
	}
}

func (w *BroadcastMessageWorker) handle(item interface{}) error {
	msg, ok := item.(*messages.Message)
	if !ok {
		return fmt.Errorf("unexpected event type %T", item)
	}
	switch msg.Type {
	case messages.MessageTypeStateUpdate,
		messages.MessageTypeTrapTriggered,
		messages.MessageTypeDecisionResolved,
		messages.MessageTypeSessionRestarted:
		return w.broadcaster.Broadcast(msg)
	default:
		return fmt.Errorf("unknown server message type: %v", msg.Type)
	}
}
