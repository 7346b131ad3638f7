package transport

import (
	"context"

	"github.com/pkg/errors"

	"github.com/scoir/canis-exchange/pkg/amqp"
	"github.com/scoir/canis-exchange/pkg/schema"
)

const (
	queuePrefix       = "canis.agent."
	sealedContentType = "application/ssi-agent-wire"
)

// QueueName is the AMQP queue an endpoint DID receives on.
func QueueName(endpointDID string) string {
	return queuePrefix + endpointDID
}

// AMQPOutbound delivers to the queue of the recipient's endpoint.
type AMQPOutbound struct {
	pub amqp.Publisher
}

func NewAMQPOutbound(pub amqp.Publisher) *AMQPOutbound {
	return &AMQPOutbound{pub: pub}
}

func (r *AMQPOutbound) Deliver(ctx context.Context, endpointDID string, msg []byte) error {
	err := r.pub.Publish(ctx, QueueName(endpointDID), msg, sealedContentType)
	if err != nil {
		return errors.Wrapf(err, "unable to deliver to %s", endpointDID)
	}

	return nil
}

// Opener removes the anoncrypt layer from inbound bytes.
type Opener interface {
	Open(ctx context.Context, sealed []byte) (*schema.Envelope, error)
}

// Inbound feeds deliveries from the agent's endpoint queue to a Handler.
type Inbound struct {
	listener amqp.Listener
	opener   Opener
	handler  Handler
}

func NewInbound(listener amqp.Listener, opener Opener, handler Handler) *Inbound {
	return &Inbound{
		listener: listener,
		opener:   opener,
		handler:  handler,
	}
}

// Start consumes until ctx is done or the delivery channel closes. Each delivery is acknowledged once
// handled, including failures, which are logged.
func (r *Inbound) Start(ctx context.Context) error {
	deliveries, err := r.listener.Listen()
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				_ = r.listener.Close()
				return
			case d, ok := <-deliveries:
				if !ok {
					logger.Warn("inbound delivery channel closed")
					return
				}

				r.handle(ctx, d.Body)
				if err := d.Ack(false); err != nil {
					logger.WithError(err).Warn("unable to ack delivery")
				}
			}
		}
	}()

	return nil
}

func (r *Inbound) handle(ctx context.Context, body []byte) {
	env, err := r.opener.Open(ctx, body)
	if err != nil {
		logger.WithError(err).Warn("discarding undecryptable message")
		return
	}

	err = r.handler.Handle(ctx, env)
	if err != nil {
		logger.WithError(err).WithField("type", env.Type).WithField("origin", env.Origin).Error("unable to handle message")
	}
}
