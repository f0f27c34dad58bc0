// Package coverart downloads release-group front covers from the Cover Art
// Archive.
//
// The Fetcher wraps the gocaa client and turns every failure into a
// progress event, so callers only check for nil data:
//
//	fetcher := coverart.NewFetcher(settings.CoverArtURL, settings.UserAgent, console.Report)
//	if img := fetcher.FrontCover(ctx, album.ID); img != nil {
//	    // embed img
//	}
package coverart
