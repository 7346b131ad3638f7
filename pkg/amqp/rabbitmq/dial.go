package rabbitmq

import (
	"time"

	"github.com/cenkalti/backoff"
	"github.com/pkg/errors"
	"github.com/streadway/amqp"

	"github.com/scoir/canis-exchange/pkg/util"
)

// DialTimeout bounds how long dial keeps retrying an unreachable broker.
var DialTimeout = 30 * time.Second

func dial(addr string) (*amqp.Connection, error) {
	var conn *amqp.Connection

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = DialTimeout

	err := backoff.RetryNotify(func() error {
		var err error
		conn, err = amqp.Dial(addr)
		return err
	}, b, util.Logger)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to connect to RabbitMQ at %s", addr)
	}

	return conn, nil
}

func declare(ch *amqp.Channel, queue string) error {
	_, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return errors.Wrapf(err, "unable to declare AMQP queue %s", queue)
	}

	return nil
}
