package audio

import (
	"path/filepath"
	"regexp"
	"strings"
)

// trackNumberPrefix matches one leading run of digits, optionally followed
// by a "-" or "." separator, with surrounding whitespace.
var trackNumberPrefix = regexp.MustCompile(`^\d+\s*[-.]?\s*`)

// CleanTitle derives a track title from a file path.
//
// The directory and extension are dropped and a leading track number such
// as "03 - ", "7." or "12 " is stripped. Disc numbers, multi-part
// numbering and non-numeric prefixes are left alone.
//
// If nothing remains after stripping (a file named "1999.mp3"), the trimmed
// base name is returned instead.
//
// Example:
//
//	CleanTitle("03 - Song Name.mp3") // "Song Name"
//	CleanTitle("Song Name.mp3")      // "Song Name"
func CleanTitle(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	title := strings.TrimSpace(trackNumberPrefix.ReplaceAllString(name, ""))
	if title == "" {
		return strings.TrimSpace(name)
	}
	return title
}
