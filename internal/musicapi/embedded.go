package musicapi

import "context"

// EmbeddedImageResolver picks cover art out of the image list the search
// service already returned. Entries are ordered smallest first, so the last
// one with a URL is the largest available.
type EmbeddedImageResolver struct{}

// ResolveImage never touches the network.
func (EmbeddedImageResolver) ResolveImage(_ context.Context, track Track) (string, error) {
	for i := len(track.Images) - 1; i >= 0; i-- {
		if track.Images[i].URL != "" {
			return track.Images[i].URL, nil
		}
	}
	return "", nil
}
