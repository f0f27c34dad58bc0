package ioutils

import (
	"path/filepath"
	"strings"
)

// HasExtension reports whether path ends with one of exts, ignoring case.
//
// Each entry of exts includes the leading dot, e.g. ".mp3".
//
// Example:
//
//	HasExtension("b.MP3", []string{".mp3"}) // true
//	HasExtension("c.txt", []string{".mp3"}) // false
func HasExtension(path string, exts []string) bool {
	ext := filepath.Ext(path)
	for _, want := range exts {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

// DirectoryName returns the last element of a cleaned path.
//
// Trailing separators are ignored, so "/music/Portishead/" and
// "/music/Portishead" both give "Portishead". It is the query used when
// guessing the artist from the first path argument.
func DirectoryName(path string) string {
	return filepath.Base(filepath.Clean(path))
}
