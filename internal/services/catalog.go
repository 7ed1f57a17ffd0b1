// Catalog API [Catalog] implementation
//
// Communicates with the daemon's library endpoints on port 9000.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/slimytm/slimctl/internal/models"
)

const defaultCatalogBaseURL string = "http://localhost:9000"

// CatalogService implements the Catalog interface over HTTP.
type CatalogService struct {
	baseURL    string
	httpClient *http.Client
}

// NewCatalogService creates a new catalog client. A nil client falls back to
// [http.DefaultClient].
func NewCatalogService(baseURL string, client *http.Client) *CatalogService {
	if baseURL == "" {
		baseURL = defaultCatalogBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &CatalogService{
		baseURL:    baseURL,
		httpClient: client,
	}
}

func (c *CatalogService) doRequest(ctx context.Context, endpoint string, result any) error {
	apiURL := c.baseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("catalog API error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// GetPlaylists retrieves the library playlist listing.
//
// Calls GET /api/library/playlists on the daemon.
func (c *CatalogService) GetPlaylists(ctx context.Context) ([]models.PlaylistSummary, error) {
	var playlists []models.PlaylistSummary
	if err := c.doRequest(ctx, "/api/library/playlists", &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

// GetPlaylist retrieves a single playlist with up to limit tracks.
//
// Calls GET /api/playlist/{id}?limit=N on the daemon.
func (c *CatalogService) GetPlaylist(ctx context.Context, id string, limit int) (*models.PlaylistDetail, error) {
	endpoint := fmt.Sprintf("/api/playlist/%s?limit=%d", url.PathEscape(id), limit)

	var detail models.PlaylistDetail
	if err := c.doRequest(ctx, endpoint, &detail); err != nil {
		return nil, err
	}
	if detail.ID == "" {
		detail.ID = id
	}
	return &detail, nil
}
