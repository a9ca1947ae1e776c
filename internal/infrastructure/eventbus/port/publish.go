package port

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// PublishJSON marshals v and publishes it under key with a bounded timeout.
// Broker operations must never block indefinitely.
func PublishJSON(ctx context.Context, p Publisher, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("eventbus: encode %s payload: %w", key, err)
	}
	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return p.Publish(pctx, Event{Key: key, Payload: b})
}
