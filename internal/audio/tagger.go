package audio

import (
	"fmt"

	"github.com/bogem/id3v2"
	"github.com/handiism/mp3-autotag/internal/model"
)

// TagEditAction selects what WriteText does with one text frame.
type TagEditAction int

const (
	// TagEmpty writes an empty value.
	TagEmpty TagEditAction = iota

	// TagModify writes the value resolved for the file.
	TagModify

	// TagDoNotModify keeps whatever the file already has.
	TagDoNotModify
)

// Front cover attached picture settings.
const (
	CoverMimeType    = "image/jpeg"
	CoverDescription = "Cover"
)

// TagConfig holds tagging configuration for each ID3 field.
//
// Example:
//
//	cfg := &TagConfig{
//	    ModifyTags: true,
//	    Title:      TagModify,      // Title derived from the file name
//	    Artist:     TagModify,      // Credited artist from MusicBrainz
//	    Album:      TagDoNotModify, // Keep existing album title
//	    CoverArt:   true,
//	}
type TagConfig struct {
	// ModifyTags is a master switch. If false, no text frames are modified.
	ModifyTags bool

	// Title controls the TIT2 (Title) frame.
	Title TagEditAction

	// Artist controls the TPE1 (Lead artist) frame.
	Artist TagEditAction

	// Album controls the TALB (Album title) frame.
	Album TagEditAction

	// CoverArt enables embedding the front cover (APIC frame).
	CoverArt bool
}

// DefaultTagConfig returns the default tag configuration, which modifies
// every text frame and embeds cover art.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		ModifyTags: true,
		Title:      TagModify,
		Artist:     TagModify,
		Album:      TagModify,
		CoverArt:   true,
	}
}

// Tagger writes ID3v2 frames into MP3 files in place.
//
// Every call opens, changes, saves and closes the file; a file without a
// tag gets a new one.
//
// Example:
//
//	tagger := NewTagger(DefaultTagConfig())
//	if err := tagger.WriteText(path, fields); err != nil {
//	    log.Printf("Failed to tag %s: %v", path, err)
//	}
type Tagger struct {
	config *TagConfig
}

// NewTagger returns a Tagger using config, or DefaultTagConfig when config
// is nil.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// CoverArtEnabled reports whether EmbedCover should be called at all.
func (t *Tagger) CoverArtEnabled() bool {
	return t.config.CoverArt
}

// WriteText writes the title, artist and album frames and saves the file.
//
// Returns an error if the file cannot be opened, parsed or saved.
func (t *Tagger) WriteText(path string, fields model.TagFields) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("could not load file: %w", err)
	}
	defer tag.Close()

	if t.config.ModifyTags {
		t.updateStringTags(tag, fields)
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("could not save tags: %w", err)
	}
	return nil
}

// EmbedCover replaces any attached pictures with artwork as the front cover
// and saves the file.
func (t *Tagger) EmbedCover(path string, artwork []byte) error {
	if len(artwork) == 0 {
		return fmt.Errorf("no artwork data for %s", path)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("could not load file: %w", err)
	}
	defer tag.Close()

	t.replaceFrontCover(tag, artwork)

	if err := tag.Save(); err != nil {
		return fmt.Errorf("could not save artwork: %w", err)
	}
	return nil
}

// textFrame pairs a frame setter with its action and new value.
type textFrame struct {
	set    func(string)
	action TagEditAction
	value  string
}

// updateStringTags applies the configured action to TIT2, TPE1 and TALB.
func (t *Tagger) updateStringTags(tag *id3v2.Tag, fields model.TagFields) {
	frames := []textFrame{
		{set: tag.SetTitle, action: t.config.Title, value: fields.Title},
		{set: tag.SetArtist, action: t.config.Artist, value: fields.Artist},
		{set: tag.SetAlbum, action: t.config.Album, value: fields.Album},
	}

	for _, f := range frames {
		switch f.action {
		case TagEmpty:
			f.set("")
		case TagModify:
			f.set(f.value)
		}
	}
}

// replaceFrontCover swaps the front cover for artwork. Other pictures, such
// as a back cover or an artist photo, are kept.
func (t *Tagger) replaceFrontCover(tag *id3v2.Tag, artwork []byte) {
	id := tag.CommonID("Attached picture")
	kept := make([]id3v2.PictureFrame, 0)
	for _, f := range tag.GetFrames(id) {
		pic, ok := f.(id3v2.PictureFrame)
		if !ok || pic.PictureType == id3v2.PTFrontCover || pic.Description == CoverDescription {
			continue
		}
		kept = append(kept, pic)
	}

	tag.DeleteFrames(id)
	for _, pic := range kept {
		tag.AddAttachedPicture(pic)
	}
	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    CoverMimeType,
		PictureType: id3v2.PTFrontCover,
		Description: CoverDescription,
		Picture:     artwork,
	})
}
