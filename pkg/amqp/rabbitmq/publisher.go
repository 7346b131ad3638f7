package rabbitmq

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/streadway/amqp"
)

// Publisher publishes to any queue, declaring each one the first time it is used.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	declared map[string]bool
}

func NewPublisher(addr string) (*Publisher, error) {
	conn, err := dial(addr)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "unable to create an AMQP channel")
	}

	return &Publisher{
		conn:     conn,
		ch:       ch,
		declared: map[string]bool{},
	}, nil
}

func (r *Publisher) Publish(ctx context.Context, queue string, body []byte, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.declared[queue] {
		err := declare(r.ch, queue)
		if err != nil {
			return err
		}
		r.declared[queue] = true
	}

	err := r.ch.Publish(
		"",    // exchange
		queue, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  contentType,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		})

	return errors.Wrap(err, "rabbitMQ publish failed")
}

func (r *Publisher) Close() error {
	return r.conn.Close()
}
