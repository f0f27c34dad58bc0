package dto

import "github.com/handiism/mp3-autotag/internal/model"

const (
	unknownTitle = "Unknown Title"
	unknownDate  = "Unknown Date"
)

// ReleaseGroupBrowse is the response of GET /ws/2/release-group?artist=...&fmt=json.
type ReleaseGroupBrowse struct {
	Count         int                `json:"release-group-count"`
	Offset        int                `json:"release-group-offset"`
	ReleaseGroups []JSONReleaseGroup `json:"release-groups"`
}

// JSONReleaseGroup represents one release-group of the browse response.
//
// Title and FirstReleaseDate are pointers so that a missing key can be told
// apart from an empty value.
type JSONReleaseGroup struct {
	ID               string             `json:"id"`
	Title            *string            `json:"title"`
	PrimaryType      string             `json:"primary-type"`
	SecondaryTypes   []string           `json:"secondary-types"`
	FirstReleaseDate *string            `json:"first-release-date"`
	ArtistCredit     []JSONArtistCredit `json:"artist-credit"`
}

// JSONArtistCredit is one entry of an artist credit. Name is the credited
// name, which may differ from the artist's catalog name.
type JSONArtistCredit struct {
	Name       string `json:"name"`
	JoinPhrase string `json:"joinphrase"`
}

// IsStudioAlbum reports whether the release-group is a plain album: primary
// type "Album" without secondary types such as Compilation or Live.
func (rg *JSONReleaseGroup) IsStudioAlbum() bool {
	return rg.PrimaryType == "Album" && len(rg.SecondaryTypes) == 0
}

// ToAlbum converts JSONReleaseGroup to a model.Album.
func (rg *JSONReleaseGroup) ToAlbum() *model.Album {
	title := unknownTitle
	if rg.Title != nil {
		title = *rg.Title
	}

	date := unknownDate
	if rg.FirstReleaseDate != nil {
		date = *rg.FirstReleaseDate
	}

	album := &model.Album{
		ID:               rg.ID,
		Title:            title,
		FirstReleaseDate: date,
	}
	for _, credit := range rg.ArtistCredit {
		album.ArtistCredit = append(album.ArtistCredit, model.ArtistCredit{Name: credit.Name})
	}

	return album
}
