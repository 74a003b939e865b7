// Package catalogclient is the HTTP client for the catalog service.
package catalogclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/clerkd/clerkd/domain/catalog"
	"github.com/clerkd/clerkd/internal/domain"
)

const defaultTimeout = 30 * time.Second

// Client fetches items from the catalog service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option is a functional option for Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// New creates a Client targeting the catalog service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// itemRecord is the catalog service wire form of an item.
type itemRecord struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    int      `json:"price"`
	Tags     []string `json:"tags"`
}

// FetchAll retrieves the item collection with no filters applied. The
// catalog's own default listing cap still applies; the truncation is
// inherited, not corrected here.
func (c *Client) FetchAll(ctx context.Context) ([]catalog.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport-level failure: the service never answered.
		return nil, fmt.Errorf("%w: %s", domain.ErrCatalogUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog service responded with status %d", resp.StatusCode)
	}

	var records []itemRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}

	items := make([]catalog.Item, len(records))
	for i, r := range records {
		items[i] = catalog.NewItem(r.ID, r.Name, r.Category, r.Price, r.Tags)
	}
	return items, nil
}
