package model

import "fmt"

// Artist represents a performer in the MusicBrainz catalog.
//
// Artists only exist as transient search results and are never modified
// once fetched.
type Artist struct {
	// ID is the MusicBrainz identifier (MBID) of the artist.
	ID string

	// Name is the artist name as stored in the catalog.
	Name string

	// Disambiguation is the optional comment MusicBrainz uses to tell
	// artists with the same name apart.
	Disambiguation string

	// Score is the search relevance (0-100) reported by the catalog.
	Score int
}

// Label renders the artist the way it is listed in the selection menu.
func (a Artist) Label() string {
	if a.Disambiguation != "" {
		return fmt.Sprintf("%s [%s] (ID: %s)", a.Name, a.Disambiguation, a.ID)
	}
	return fmt.Sprintf("%s (ID: %s)", a.Name, a.ID)
}

// Selection is the artist and album chosen during the interactive session.
type Selection struct {
	Artist Artist
	Album  *Album
}
