package port

import (
	"context"
)

// Event is a broker message: a routing key plus opaque payload bytes.
// Payload encoding is up to callers; keep this port free from serialization
// concerns to avoid coupling.
type Event struct {
	Key     string
	Payload []byte
}

// Handler consumes an Event. A non-nil error signals retry per adapter
// policy, so handlers that decide to drop an event must return nil.
// Delivery is at-least-once; handlers must be idempotent.
type Handler func(ctx context.Context, e Event) error

// Publisher sends events to the exchange. The adapter fans each event out to
// every queue bound to its routing key.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Server runs the consumer side of one durable queue. Register binds a
// handler to a routing key; Run blocks until the context is canceled or
// Stop is called.
type Server interface {
	Register(key string, h Handler)
	Run(ctx context.Context) error
	Stop(ctx context.Context) error
}
