package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"swiftwasm/internal/infra/config"
)

// Client fetches the swift.org install catalogs. Every run fetches fresh;
// nothing is cached.
type Client struct {
	releasesURL string
	devBaseURL  string
	client      *http.Client
	logger      *slog.Logger
}

// NewClient creates a catalog client with a bounded fetch timeout.
func NewClient(cfg config.CatalogConfig, logger *slog.Logger) *Client {
	return &Client{
		releasesURL: cfg.ReleasesURL,
		devBaseURL:  strings.TrimRight(cfg.DevBaseURL, "/"),
		client:      &http.Client{Timeout: cfg.Timeout()},
		logger:      logger,
	}
}

// Releases fetches the stable release catalog.
func (c *Client) Releases(ctx context.Context) ([]ReleaseEntry, error) {
	var entries []ReleaseEntry
	if err := c.getJSON(ctx, c.releasesURL, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Snapshots fetches the development snapshot catalog for a branch.
func (c *Client) Snapshots(ctx context.Context, branch string) ([]SnapshotEntry, error) {
	url := fmt.Sprintf("%s/%s/wasm-sdk.json", c.devBaseURL, branch)
	var entries []SnapshotEntry
	if err := c.getJSON(ctx, url, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("catalog request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("catalog fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog fetch %s: HTTP %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("catalog decode: %w", err)
	}
	c.logger.Debug("catalog fetched", "url", url)
	return nil
}
