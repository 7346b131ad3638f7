/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package context

import (
	"github.com/pkg/errors"

	"github.com/scoir/canis-exchange/pkg/amqp"
	"github.com/scoir/canis-exchange/pkg/amqp/rabbitmq"
)

var (
	newPublisher = func(addr string) (amqp.Publisher, error) { return rabbitmq.NewPublisher(addr) }
	newListener  = func(addr, queue string) (amqp.Listener, error) { return rabbitmq.NewListener(addr, queue) }
)

// Publisher is shared by every outbound delivery.
func (r *Provider) Publisher() (amqp.Publisher, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.pub != nil {
		return r.pub, nil
	}

	pub, err := newPublisher(r.conf.AMQPAddress())
	if err != nil {
		return nil, errors.Wrap(err, "unable to create amqp publisher")
	}

	r.pub = pub
	return r.pub, nil
}

// Listener consumes queue. Each call opens its own connection.
func (r *Provider) Listener(queue string) (amqp.Listener, error) {
	l, err := newListener(r.conf.AMQPAddress(), queue)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to listen on %s", queue)
	}

	return l, nil
}
