package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/notification/profile/port"
)

// HTTPClient resolves profiles with a synchronous POST to the user
// service, the only synchronous cross-service call in the system.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

var _ port.Client = (*HTTPClient)(nil)

type profileRequest struct {
	UserID string `json:"userId"`
}

func (c *HTTPClient) GetProfile(ctx context.Context, userID string) (*port.Profile, error) {
	body, err := json.Marshal(profileRequest{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("profile: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/profile-email", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("profile: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("profile: lookup %s: %w", userID, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile: lookup %s: unexpected status %d", userID, resp.StatusCode)
	}

	var p port.Profile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("profile: decode response: %w", err)
	}
	return &p, nil
}
