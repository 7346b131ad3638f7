package amqp

import "context"

//go:generate mockery -name=Publisher
type Publisher interface {
	Publish(ctx context.Context, queue string, body []byte, contentType string) error
	Close() error
}
