package musicbrainz

import (
	"context"
	"fmt"
	"strconv"

	"github.com/handiism/mp3-autotag/internal/http"
	"github.com/handiism/mp3-autotag/internal/model"
	"github.com/handiism/mp3-autotag/internal/musicbrainz/dto"
	"github.com/handiism/mp3-autotag/internal/report"
)

const (
	artistEndpoint       = "artist"
	releaseGroupEndpoint = "release-group"
)

// Getter is the transport the Client needs. *http.Client implements it.
type Getter interface {
	GetJSON(ctx context.Context, path string, params map[string]string, out any) error
}

var _ Getter = (*http.Client)(nil)

// Client is a MusicBrainz catalog client.
type Client struct {
	http       Getter
	albumLimit int
	onProgress report.Func
}

// NewClient returns a Client using httpClient, which must already carry the
// MusicBrainz base URL and User-Agent. albumLimit caps the release-groups
// requested per artist; MusicBrainz accepts at most 100.
func NewClient(httpClient Getter, albumLimit int, onProgress report.Func) *Client {
	if albumLimit < 1 || albumLimit > 100 {
		albumLimit = 100
	}
	return &Client{
		http:       httpClient,
		albumLimit: albumLimit,
		onProgress: onProgress,
	}
}

// SearchArtists returns the artists matching a free-text query, best match
// first. On failure the error is reported and nil is returned.
func (c *Client) SearchArtists(ctx context.Context, name string) []model.Artist {
	artists, err := c.searchArtists(ctx, name)
	if err != nil {
		c.onProgress.Send(report.LevelError, fmt.Sprintf("Error searching for artist: %v", err))
		return nil
	}
	return artists
}

// AlbumsByArtist returns the studio albums of an artist, one per title,
// ordered by first release date. On failure the error is reported and nil
// is returned.
func (c *Client) AlbumsByArtist(ctx context.Context, artistID string) []*model.Album {
	albums, err := c.albumsByArtist(ctx, artistID)
	if err != nil {
		c.onProgress.Send(report.LevelError, fmt.Sprintf("Error fetching albums: %v", err))
		return nil
	}
	return albums
}

func (c *Client) searchArtists(ctx context.Context, name string) ([]model.Artist, error) {
	params := map[string]string{
		"query": name,
		"fmt":   "json",
	}

	var result dto.ArtistSearch
	if err := c.http.GetJSON(ctx, artistEndpoint, params, &result); err != nil {
		return nil, err
	}

	return result.ToArtists(), nil
}

func (c *Client) albumsByArtist(ctx context.Context, artistID string) ([]*model.Album, error) {
	params := map[string]string{
		"artist": artistID,
		"fmt":    "json",
		"limit":  strconv.Itoa(c.albumLimit),
		"type":   "album",
		"inc":    "artist-credits",
	}

	var result dto.ReleaseGroupBrowse
	if err := c.http.GetJSON(ctx, releaseGroupEndpoint, params, &result); err != nil {
		return nil, err
	}

	return SelectAlbums(result.ReleaseGroups), nil
}
