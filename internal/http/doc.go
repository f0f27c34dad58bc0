// Package http provides the HTTP client used for MusicBrainz API requests.
//
// The Client in this package handles:
//   - The fixed User-Agent MusicBrainz asks every application to send
//   - A base URL that relative request paths are resolved against
//   - Decoding JSON responses
//   - Debug logging of every request through logrus
//
// # Basic Usage
//
//	client := http.NewClient("https://musicbrainz.org/ws/2/", userAgent, logger)
//
//	var result dto.ArtistSearch
//	err := client.GetJSON(ctx, "artist", map[string]string{"query": "Portishead"}, &result)
package http
