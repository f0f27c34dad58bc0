package model

import "fmt"

// Album represents a MusicBrainz release-group of primary type "Album".
//
// Albums are listed for an artist, deduplicated by title and ordered by
// FirstReleaseDate before being shown to the user.
//
// Example:
//
//	album := &Album{
//	    ID:               "48140466-cff6-3222-bd55-63c27e43190d",
//	    Title:            "Dummy",
//	    FirstReleaseDate: "1994-08-22",
//	    ArtistCredit:     []ArtistCredit{{Name: "Portishead"}},
//	}
type Album struct {
	// ID is the release-group MBID. It selects the cover art to embed.
	ID string

	// Title is the album title written into the TALB frame.
	Title string

	// FirstReleaseDate is the catalog date string ("1994", "1994-08" or
	// "1994-08-22"). It is compared as a plain string.
	FirstReleaseDate string

	// ArtistCredit lists the credited artists, in catalog order.
	ArtistCredit []ArtistCredit
}

// ArtistCredit is one entry of an album's artist credit.
type ArtistCredit struct {
	Name string
}

// CreditedArtist returns the name of the first credited artist, or fallback
// when the album carries no usable credit.
func (a *Album) CreditedArtist(fallback string) string {
	if len(a.ArtistCredit) > 0 && a.ArtistCredit[0].Name != "" {
		return a.ArtistCredit[0].Name
	}
	return fallback
}

// Label renders the album the way it is listed in the selection menu.
func (a *Album) Label() string {
	return fmt.Sprintf("%s (%s)", a.Title, a.FirstReleaseDate)
}

// TagFields holds the text frames written into an audio file.
type TagFields struct {
	Title  string
	Artist string
	Album  string
}

// String formats the fields like the confirmation line printed after tagging.
func (f TagFields) String() string {
	return fmt.Sprintf("%s - %s | Album: %s", f.Title, f.Artist, f.Album)
}
