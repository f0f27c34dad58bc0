// Package audio provides MP3 file manipulation services: ID3 tag writing,
// tag reading and deriving track titles from file names.
//
// # ID3 Tagging
//
// Use the Tagger to write ID3 tags to MP3 files:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	err := tagger.WriteText(path, model.TagFields{Title: "Roads", Artist: "Portishead", Album: "Dummy"})
//	err = tagger.EmbedCover(path, jpegBytes)
//
// WriteText and EmbedCover each open, save and close the file, so text
// frames written by the first call survive a failing second call.
//
// # Titles
//
// CleanTitle turns "03 - Roads.mp3" into "Roads":
//
//	title := audio.CleanTitle("/music/Portishead/03 - Roads.mp3")
package audio
