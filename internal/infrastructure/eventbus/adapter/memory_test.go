package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/eventbus/port"
)

func TestMemoryBus_DeliversToEveryBoundQueue(t *testing.T) {
	bus := NewMemoryBus(map[string][]string{
		"order.created": {"billing", "shipping"},
	})

	var billing, shipping []string
	bus.Queue("billing").Register("order.created", func(_ context.Context, e port.Event) error {
		billing = append(billing, string(e.Payload))
		return nil
	})
	bus.Queue("shipping").Register("order.created", func(_ context.Context, e port.Event) error {
		shipping = append(shipping, string(e.Payload))
		return nil
	})

	err := bus.Publish(context.Background(), port.Event{Key: "order.created", Payload: []byte("o-1")})
	require.NoError(t, err)

	assert.Equal(t, []string{"o-1"}, billing)
	assert.Equal(t, []string{"o-1"}, shipping)
}

func TestMemoryBus_UnboundKeyIsRecordedNotDelivered(t *testing.T) {
	bus := NewMemoryBus(map[string][]string{})

	delivered := 0
	bus.Queue("billing").Register("order.created", func(context.Context, port.Event) error {
		delivered++
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), port.Event{Key: "order.created"}))
	assert.Zero(t, delivered)
	assert.Len(t, bus.Published(), 1)
}

func TestMemoryBus_HandlerMayPublishFollowUps(t *testing.T) {
	bus := NewMemoryBus(map[string][]string{
		"first":  {"q"},
		"second": {"q"},
	})

	var seen []string
	bus.Queue("q").Register("first", func(ctx context.Context, e port.Event) error {
		seen = append(seen, e.Key)
		return bus.Publish(ctx, port.Event{Key: "second"})
	})
	bus.Queue("q").Register("second", func(_ context.Context, e port.Event) error {
		seen = append(seen, e.Key)
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), port.Event{Key: "first"}))
	assert.Equal(t, []string{"first", "second"}, seen)
}
