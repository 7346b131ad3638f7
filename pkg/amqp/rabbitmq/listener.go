package rabbitmq

import (
	"github.com/pkg/errors"
	"github.com/streadway/amqp"
)

type Listener struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

func NewListener(addr, queue string) (*Listener, error) {
	l := &Listener{queue: queue}

	var err error
	l.conn, err = dial(addr)
	if err != nil {
		return nil, err
	}

	l.ch, err = l.conn.Channel()
	if err != nil {
		_ = l.conn.Close()
		return nil, errors.Wrap(err, "unable to get channel")
	}

	err = declare(l.ch, queue)
	if err != nil {
		_ = l.conn.Close()
		return nil, err
	}

	return l, nil
}

// Listen consumes with manual acknowledgement; callers Ack or Nack each delivery.
func (r *Listener) Listen() (<-chan amqp.Delivery, error) {
	msgs, err := r.ch.Consume(
		r.queue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, errors.Wrap(err, "unable to consume")
	}

	return msgs, nil
}

func (r *Listener) Close() error {
	return r.conn.Close()
}
