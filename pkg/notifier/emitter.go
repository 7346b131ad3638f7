package notifier

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/scoir/canis-exchange/pkg/amqp"
)

//go:generate mockery -name=Notifier
type Notifier interface {
	Notify(ctx context.Context, topic, event string, data interface{})
}

// Emitter queues notifications for the agent's webhook server.
type Emitter struct {
	pub   amqp.Publisher
	queue string
}

func NewEmitter(pub amqp.Publisher, endpointDID string) *Emitter {
	return &Emitter{
		pub:   pub,
		queue: QueueName(endpointDID),
	}
}

// Notify never fails the operation being reported; publish errors are logged.
func (r *Emitter) Notify(ctx context.Context, topic, event string, data interface{}) {
	err := r.publish(ctx, &Notification{Topic: topic, Event: event, EventData: data})
	if err != nil {
		logger.WithError(err).WithField("topic", topic).WithField("event", event).Warn("unable to queue notification")
	}
}

func (r *Emitter) publish(ctx context.Context, note *Notification) error {
	d, err := json.Marshal(note)
	if err != nil {
		return errors.Wrap(err, "unable to marshal notification")
	}

	return r.pub.Publish(ctx, r.queue, d, "application/json")
}
