package prereqmap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single prerequisite fetch.
const DefaultTimeout = 10 * time.Second

// Client fetches the prerequisite map from the analysis service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	fallback   Map
}

// NewClient creates a client for the given base URL. When baseURL is
// empty, Fetch always returns the fallback.
func NewClient(baseURL string, fallback Map) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		fallback:   fallback,
	}
}

// Fetch retrieves and normalizes the prerequisite map. On any failure —
// network error, non-200 status, malformed body — it degrades to the
// configured fallback map rather than returning an error: a missing map
// means "no prerequisites known", never a broken graph.
func (c *Client) Fetch(ctx context.Context) Map {
	m, err := c.fetch(ctx)
	if err != nil {
		if c.fallback != nil {
			return c.fallback
		}
		return Map{}
	}
	return m
}

func (c *Client) fetch(ctx context.Context) (Map, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("no prerequisite service configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/prerequisites", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch prerequisites: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("prerequisite service returned %d", resp.StatusCode)
	}

	var raw map[string][]string
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode prerequisite map: %w", err)
	}

	return Normalize(raw), nil
}
