// Package musicbrainz queries the MusicBrainz web service for artists and
// their albums.
//
// Two read-only JSON endpoints are used:
//
//  1. Artist search: GET /ws/2/artist?query=<name>&fmt=json
//  2. Release-group browse: GET /ws/2/release-group?artist=<mbid>&type=album&limit=100&fmt=json
//
// # Failure Handling
//
// The exported methods never return errors. Failures are reported through
// the progress callback and an empty result is returned, so that the
// interactive session can simply offer the user another try:
//
//	client := musicbrainz.NewClient(httpClient, 100, console.Report)
//	artists := client.SearchArtists(ctx, "Portishead")
//	if len(artists) == 0 {
//	    // nothing found or the request failed
//	}
//
// # Album Listing
//
// Release-groups are filtered to primary type "Album" without secondary
// types, deduplicated by title keeping the earliest first-release-date and
// sorted by that date. Dates are compared as strings, so "1999" sorts
// before "1999-03-02".
package musicbrainz
