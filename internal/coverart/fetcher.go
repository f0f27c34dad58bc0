package coverart

import (
	"context"
	"errors"
	"fmt"

	"github.com/handiism/mp3-autotag/internal/report"
	"github.com/pborman/uuid"
	caa "gopkg.in/mineo/gocaa.v1"
)

// CAAClient is the part of the Cover Art Archive client the Fetcher uses.
type CAAClient interface {
	GetReleaseGroupFront(mbid uuid.UUID, size int) (image caa.CoverArtImage, err error)
}

var _ CAAClient = (*caa.CAAClient)(nil)

// Fetcher downloads original-size front covers. It does not retry.
type Fetcher struct {
	client     CAAClient
	onProgress report.Func
}

// NewFetcher returns a Fetcher talking to the archive at baseURL.
func NewFetcher(baseURL, userAgent string, onProgress report.Func) *Fetcher {
	client := caa.NewCAAClient(userAgent)
	if baseURL != "" {
		client.BaseURL = baseURL
	}
	return NewFetcherWithClient(client, onProgress)
}

// NewFetcherWithClient returns a Fetcher using an already configured client.
func NewFetcherWithClient(client CAAClient, onProgress report.Func) *Fetcher {
	return &Fetcher{
		client:     client,
		onProgress: onProgress,
	}
}

// FrontCover returns the front cover of the release group, or nil.
//
// A non-200 answer is reported as a warning ("No artwork found."). Any
// other failure, including an id that is not a UUID, is reported as an
// error.
func (f *Fetcher) FrontCover(ctx context.Context, releaseGroupID string) []byte {
	if err := ctx.Err(); err != nil {
		f.onProgress.Send(report.LevelError, fmt.Sprintf("Artwork error: %v", err))
		return nil
	}

	data, err := f.frontCover(releaseGroupID)
	if err != nil {
		var httpErr caa.HTTPError
		if errors.As(err, &httpErr) {
			f.onProgress.Send(report.LevelWarning, "No artwork found.")
			f.onProgress.Send(report.LevelVerbose, fmt.Sprintf("Cover Art Archive answered %d", httpErr.StatusCode))
			return nil
		}
		f.onProgress.Send(report.LevelError, fmt.Sprintf("Artwork error: %v", err))
		return nil
	}

	if len(data) == 0 {
		f.onProgress.Send(report.LevelWarning, "No artwork found.")
		return nil
	}
	return data
}

func (f *Fetcher) frontCover(releaseGroupID string) (data []byte, err error) {
	mbid := uuid.Parse(releaseGroupID)
	if mbid == nil {
		return nil, fmt.Errorf("invalid release group id %q", releaseGroupID)
	}

	// gocaa dereferences a nil response when the request itself fails.
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, fmt.Errorf("cover art request failed: %v", r)
		}
	}()

	// Release groups are only served in original size.
	img, err := f.client.GetReleaseGroupFront(mbid, caa.ImageSizeOriginal)
	if err != nil {
		return nil, err
	}
	return img.Data, nil
}
