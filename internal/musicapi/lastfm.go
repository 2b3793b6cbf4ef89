package musicapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	lastfmBaseURL = "https://ws.audioscrobbler.com"

	// Last.fm returns up to this many matches per search.
	searchLimit = 8

	unknownArtist = "Unknown Artist"
	unknownTrack  = "Unknown Track"
)

// LastFMClient implements TrackSearcher against the Last.fm track.search API.
type LastFMClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewLastFMClient creates a Last.fm API client.
func NewLastFMClient(apiKey string) *LastFMClient {
	return &LastFMClient{
		apiKey:  apiKey,
		baseURL: lastfmBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type lastfmSearchResponse struct {
	Results struct {
		TrackMatches struct {
			// An array normally, but a bare object when there is exactly
			// one match. Decoded in two steps for that reason.
			Track json.RawMessage `json:"track"`
		} `json:"trackmatches"`
	} `json:"results"`
}

type lastfmTrack struct {
	Name      string        `json:"name"`
	Artist    string        `json:"artist"`
	Listeners string        `json:"listeners"`
	URL       string        `json:"url"`
	Image     []lastfmImage `json:"image"`
}

type lastfmImage struct {
	URL  string `json:"#text"`
	Size string `json:"size"`
}

// SearchTracks queries Last.fm for tracks matching the free-text query.
func (c *LastFMClient) SearchTracks(ctx context.Context, query string) ([]Track, error) {
	params := url.Values{}
	params.Set("method", "track.search")
	params.Set("track", query)
	params.Set("api_key", c.apiKey)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(searchLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/2.0/?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var payload lastfmSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	matches, err := normalizeTrackMatches(payload.Results.TrackMatches.Track)
	if err != nil {
		return nil, fmt.Errorf("decode track matches: %w", err)
	}

	tracks := make([]Track, 0, len(matches))
	for _, m := range matches {
		tracks = append(tracks, newTrack(m))
	}
	return tracks, nil
}

// normalizeTrackMatches tolerates the list wrapper Last.fm omits when a query
// has exactly one match.
func normalizeTrackMatches(raw json.RawMessage) ([]lastfmTrack, error) {
	if len(raw) == 0 || string(raw) == "null" || string(raw) == `""` {
		return nil, nil
	}

	var list []lastfmTrack
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var single lastfmTrack
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	return []lastfmTrack{single}, nil
}

func newTrack(m lastfmTrack) Track {
	t := Track{
		Name:   m.Name,
		Artist: m.Artist,
		URL:    m.URL,
	}
	if t.Name == "" {
		t.Name = unknownTrack
	}
	if t.Artist == "" {
		t.Artist = unknownArtist
	}
	if n, err := strconv.ParseInt(m.Listeners, 10, 64); err == nil {
		t.Listeners = n
	}
	for _, img := range m.Image {
		t.Images = append(t.Images, Image{URL: img.URL, Size: img.Size})
	}
	return t
}
