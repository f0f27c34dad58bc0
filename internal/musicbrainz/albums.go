package musicbrainz

import (
	"sort"

	"github.com/handiism/mp3-autotag/internal/model"
	"github.com/handiism/mp3-autotag/internal/musicbrainz/dto"
)

// SelectAlbums turns a release-group listing into the album menu.
//
// Only studio albums are kept. When several release-groups share a title,
// the one with the smallest first-release-date string wins; on equal dates
// the first one listed is kept. The result is sorted by date ascending,
// ties keeping their first-seen order.
func SelectAlbums(groups []dto.JSONReleaseGroup) []*model.Album {
	byTitle := make(map[string]*model.Album)
	var order []string

	for i := range groups {
		if !groups[i].IsStudioAlbum() {
			continue
		}

		album := groups[i].ToAlbum()
		kept, seen := byTitle[album.Title]
		if !seen {
			byTitle[album.Title] = album
			order = append(order, album.Title)
			continue
		}
		if album.FirstReleaseDate < kept.FirstReleaseDate {
			byTitle[album.Title] = album
		}
	}

	albums := make([]*model.Album, 0, len(order))
	for _, title := range order {
		albums = append(albums, byTitle[title])
	}

	sort.SliceStable(albums, func(i, j int) bool {
		return albums[i].FirstReleaseDate < albums[j].FirstReleaseDate
	})

	return albums
}
