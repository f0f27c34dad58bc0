package dto

import "github.com/handiism/mp3-autotag/internal/model"

// ArtistSearch is the response of GET /ws/2/artist?query=...&fmt=json.
type ArtistSearch struct {
	Count   int          `json:"count"`
	Offset  int          `json:"offset"`
	Artists []JSONArtist `json:"artists"`
}

// JSONArtist is one artist search hit.
type JSONArtist struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Disambiguation string `json:"disambiguation"`
	Score          int    `json:"score"`
}

// ToArtist converts JSONArtist to a model.Artist.
func (ja *JSONArtist) ToArtist() model.Artist {
	return model.Artist{
		ID:             ja.ID,
		Name:           ja.Name,
		Disambiguation: ja.Disambiguation,
		Score:          ja.Score,
	}
}

// ToArtists converts every search hit, keeping catalog order.
func (s *ArtistSearch) ToArtists() []model.Artist {
	artists := make([]model.Artist, 0, len(s.Artists))
	for i := range s.Artists {
		artists = append(artists, s.Artists[i].ToArtist())
	}
	return artists
}
