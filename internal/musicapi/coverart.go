package musicapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	musicbrainzBaseURL = "https://musicbrainz.org"
	coverArtBaseURL    = "https://coverartarchive.org"

	// MusicBrainz rejects requests without a descriptive User-Agent.
	coverArtUserAgent = "songfinder/1.0 (personal music tracker)"
)

// CoverArtResolver looks up cover art via a MusicBrainz recording search
// followed by a Cover Art Archive existence probe on the release group.
type CoverArtResolver struct {
	mbBaseURL  string
	caaBaseURL string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewCoverArtResolver creates a resolver against the public MusicBrainz and
// Cover Art Archive endpoints.
func NewCoverArtResolver() *CoverArtResolver {
	return &CoverArtResolver{
		mbBaseURL:  musicbrainzBaseURL,
		caaBaseURL: coverArtBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		// 1 req/s per MusicBrainz guidelines.
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

type mbRecordingSearchResponse struct {
	Recordings []struct {
		ID       string `json:"id"`
		Releases []struct {
			ReleaseGroup struct {
				ID string `json:"id"`
			} `json:"release-group"`
		} `json:"releases"`
	} `json:"recordings"`
}

// ResolveImage returns a front-cover URL for the track, or "" when any step
// of the lookup misses or fails. Errors are never propagated.
func (r *CoverArtResolver) ResolveImage(ctx context.Context, track Track) (string, error) {
	releaseGroupID := r.lookupReleaseGroup(ctx, track.Artist, track.Name)
	if releaseGroupID == "" {
		return "", nil
	}

	imageURL := fmt.Sprintf("%s/release-group/%s/front-250", r.caaBaseURL, releaseGroupID)
	if !r.probe(ctx, imageURL) {
		return "", nil
	}
	return imageURL, nil
}

func (r *CoverArtResolver) lookupReleaseGroup(ctx context.Context, artist, title string) string {
	if err := r.limiter.Wait(ctx); err != nil {
		return ""
	}

	params := url.Values{}
	params.Set("query", fmt.Sprintf("artist:%q AND recording:%q", artist, title))
	params.Set("fmt", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		r.mbBaseURL+"/ws/2/recording?"+params.Encode(), nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", coverArtUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var payload mbRecordingSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ""
	}
	if len(payload.Recordings) == 0 || len(payload.Recordings[0].Releases) == 0 {
		return ""
	}
	return payload.Recordings[0].Releases[0].ReleaseGroup.ID
}

func (r *CoverArtResolver) probe(ctx context.Context, imageURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, imageURL, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", coverArtUserAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
