package adapter

import (
	"context"
	"sync"

	"github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/eventbus/port"
)

// MemoryBus is an in-process exchange for tests and single-binary dev runs.
// Delivery is synchronous: Publish invokes, for each queue bound to the
// event's key, the handler that queue registered for that key. Published
// events are recorded for assertions.
type MemoryBus struct {
	mu       sync.Mutex
	bindings map[string][]string
	handlers map[string]map[string]port.Handler // queue -> key -> handler
	events   []port.Event
}

func NewMemoryBus(bindings map[string][]string) *MemoryBus {
	return &MemoryBus{
		bindings: bindings,
		handlers: make(map[string]map[string]port.Handler),
	}
}

var _ port.Publisher = (*MemoryBus)(nil)

func (b *MemoryBus) Publish(ctx context.Context, e port.Event) error {
	b.mu.Lock()
	b.events = append(b.events, e)
	var hs []port.Handler
	for _, q := range b.bindings[e.Key] {
		if h, ok := b.handlers[q][e.Key]; ok {
			hs = append(hs, h)
		}
	}
	b.mu.Unlock()

	// Handlers run outside the lock so they may publish follow-up events.
	for _, h := range hs {
		if err := h(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (b *MemoryBus) Close() error { return nil }

// Published returns a copy of every event published so far, in order.
func (b *MemoryBus) Published() []port.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]port.Event, len(b.events))
	copy(out, b.events)
	return out
}

// PublishedWithKey returns the published events carrying the given key.
func (b *MemoryBus) PublishedWithKey(key string) []port.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []port.Event
	for _, e := range b.events {
		if e.Key == key {
			out = append(out, e)
		}
	}
	return out
}

// Queue returns the consumer-side view of one queue on this bus.
func (b *MemoryBus) Queue(queue string) *MemoryServer {
	return &MemoryServer{bus: b, queue: queue}
}

// MemoryServer implements port.Server for one queue of a MemoryBus.
type MemoryServer struct {
	bus   *MemoryBus
	queue string
}

var _ port.Server = (*MemoryServer)(nil)

func (s *MemoryServer) Register(key string, h port.Handler) {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()
	if s.bus.handlers[s.queue] == nil {
		s.bus.handlers[s.queue] = make(map[string]port.Handler)
	}
	s.bus.handlers[s.queue][key] = h
}

func (s *MemoryServer) Run(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func (s *MemoryServer) Stop(ctx context.Context) error { return nil }
