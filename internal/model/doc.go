// Package model defines the core data structures used throughout
// the mp3-autotag application.
//
// # Artist
//
// Artist is a performer returned by a MusicBrainz artist search:
//
//	artist := model.Artist{ID: "a74b1b7f-...", Name: "Portishead"}
//	fmt.Println(artist.Label()) // "Portishead (ID: a74b1b7f-...)"
//
// # Album
//
// Album is a MusicBrainz release-group, the catalog concept grouping every
// edition of one conceptual album:
//
//	album := &model.Album{ID: id, Title: "Dummy", FirstReleaseDate: "1994-08-22"}
//	fmt.Println(album.Label())                    // "Dummy (1994-08-22)"
//	fmt.Println(album.CreditedArtist("Fallback")) // first artist credit or "Fallback"
//
// # Selection
//
// Selection is the outcome of the interactive session: one artist and one of
// its albums. Every file found on the command line is tagged with it.
package model
