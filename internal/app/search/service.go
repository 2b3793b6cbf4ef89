package search

import (
	"context"
	"time"

	"songfinder/internal/musicapi"
)

// resolvePause is the courtesy gap between consecutive cover-art lookups.
const resolvePause = 100 * time.Millisecond

// Result is one enriched search hit.
type Result struct {
	Name      string `json:"name"`
	Artist    string `json:"artist"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	Listeners int64  `json:"listeners"`
	URL       string `json:"url"`
}

// Service exposes the aggregated track search.
type Service interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

type service struct {
	searcher musicapi.TrackSearcher
	images   musicapi.ImageResolver
	pause    time.Duration
}

// New constructs a search Service over the given track searcher and image
// resolver.
func New(searcher musicapi.TrackSearcher, images musicapi.ImageResolver) Service {
	return &service{
		searcher: searcher,
		images:   images,
		pause:    resolvePause,
	}
}

// Search runs one track search and enriches each hit with cover art in input
// order. A failed search aborts; a failed art lookup only leaves that hit's
// image empty.
func (s *service) Search(ctx context.Context, query string) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tracks, err := s.searcher.SearchTracks(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(tracks))
	for i, track := range tracks {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.pause):
			}
		}

		image, err := s.images.ResolveImage(ctx, track)
		if err != nil {
			image = ""
		}

		results = append(results, Result{
			Name:      track.Name,
			Artist:    track.Artist,
			Title:     track.Name,
			Image:     image,
			Listeners: track.Listeners,
			URL:       track.URL,
		})
	}

	return results, nil
}
