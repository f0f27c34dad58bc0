package audio

import (
	"errors"
	"fmt"
	"os"

	"github.com/dhowden/tag"
	"github.com/handiism/mp3-autotag/internal/model"
)

// ReadFields returns the title, artist and album currently stored in the
// file's tags. A file without any tag yields empty fields and no error.
func ReadFields(path string) (model.TagFields, error) {
	file, err := os.Open(path)
	if err != nil {
		return model.TagFields{}, err
	}
	defer file.Close()

	metadata, err := tag.ReadFrom(file)
	if err != nil {
		if errors.Is(err, tag.ErrNoTagsFound) {
			return model.TagFields{}, nil
		}
		return model.TagFields{}, fmt.Errorf("reading tags of %s: %w", path, err)
	}

	return model.TagFields{
		Title:  metadata.Title(),
		Artist: metadata.Artist(),
		Album:  metadata.Album(),
	}, nil
}

// ReadFields returns the fields currently stored in the file at path.
func (t *Tagger) ReadFields(path string) (model.TagFields, error) {
	return ReadFields(path)
}
