// package services defines interface Catalog for fetching library data from
// the daemon's HTTP API
package services

import (
	"context"

	"github.com/slimytm/slimctl/internal/models"
)

// Catalog defines the request/response surface of the daemon's library API.
// Fetches are one-shot: no retry, no auth, no pagination beyond a single
// limit parameter.
type Catalog interface {
	// GetPlaylists retrieves the library playlist listing.
	GetPlaylists(ctx context.Context) ([]models.PlaylistSummary, error)

	// GetPlaylist retrieves a single playlist with up to limit tracks.
	GetPlaylist(ctx context.Context, id string, limit int) (*models.PlaylistDetail, error)
}
