package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	cacheport "github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/cache/port"
	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/notification/profile/port"
)

// CachedClient memoizes profile lookups. Display data changes rarely and
// every event delivery triggers a lookup, so a short TTL takes most of the
// load off the user service. Cache failures degrade to a direct lookup.
type CachedClient struct {
	next  port.Client
	cache cacheport.Cache
	ttl   time.Duration
	log   *slog.Logger
}

func NewCachedClient(next port.Client, cache cacheport.Cache, ttl time.Duration, log *slog.Logger) *CachedClient {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &CachedClient{next: next, cache: cache, ttl: ttl, log: log}
}

var _ port.Client = (*CachedClient)(nil)

func (c *CachedClient) GetProfile(ctx context.Context, userID string) (*port.Profile, error) {
	key := "profile:" + userID

	if raw, err := c.cache.Get(ctx, key); err == nil {
		var p port.Profile
		if err := json.Unmarshal([]byte(raw), &p); err == nil {
			return &p, nil
		}
		// corrupt entry, fall through to a fresh lookup
		_, _ = c.cache.Del(ctx, key)
	} else if !errors.Is(err, cacheport.ErrMiss) {
		c.log.Warn("profile cache read failed", "userId", userID, "error", err)
	}

	p, err := c.next.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(p); err == nil {
		if err := c.cache.Set(ctx, key, string(raw), c.ttl); err != nil {
			c.log.Warn("profile cache write failed", "userId", userID, "error", err)
		}
	}
	return p, nil
}
