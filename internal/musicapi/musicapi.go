package musicapi

import (
	"context"
	"errors"
)

var (
	// ErrUpstream indicates the track-search service answered with a
	// non-success status.
	ErrUpstream = errors.New("track search failed upstream")
	// ErrUnreachable indicates the track-search service could not be reached.
	ErrUnreachable = errors.New("track search service unreachable")
)

// Image is one entry of the image list embedded in a search result, smallest
// size first.
type Image struct {
	URL  string `json:"url"`
	Size string `json:"size"`
}

// Track is a normalized hit from the track-search service.
type Track struct {
	Name      string  `json:"name"`
	Artist    string  `json:"artist"`
	Listeners int64   `json:"listeners"`
	URL       string  `json:"url"`
	Images    []Image `json:"images,omitempty"`
}

// TrackSearcher resolves a free-text query into candidate tracks.
type TrackSearcher interface {
	SearchTracks(ctx context.Context, query string) ([]Track, error)
}

// ImageResolver finds a cover image URL for a track. Cover art is best-effort
// enrichment: implementations return "" when nothing is found, and callers
// treat an error the same as no image.
type ImageResolver interface {
	ResolveImage(ctx context.Context, track Track) (string, error)
}
