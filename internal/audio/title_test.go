package audio

import "testing"

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"03 - Song Name.mp3", "Song Name"},
		{"Song Name.mp3", "Song Name"},
		{"/music/Portishead/Dummy/01 Mysterons.mp3", "Mysterons"},
		{"07.Glory Box.mp3", "Glory Box"},
		{"12-Roads.MP3", "Roads"},
		{"1-02 Disc Track.mp3", "02 Disc Track"},
		{"Side A - 01.mp3", "Side A - 01"},
		// A name that is only a number keeps it rather than becoming empty.
		{"1999.mp3", "1999"},
		{"07.mp3", "07"},
		{"no extension", "no extension"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := CleanTitle(tt.input); got != tt.want {
				t.Errorf("CleanTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
