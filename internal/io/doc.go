// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Matching audio files by extension
//   - Deriving the artist guess from a directory path
//   - Cover art resizing and JPEG conversion
//
// # File Helpers
//
//	ioutils.HasExtension("/music/a.MP3", []string{".mp3"}) // true
//	ioutils.DirectoryName("/music/Portishead/")           // "Portishead"
//
// # Image Processing
//
// The ImageService prepares cover art before it is embedded:
//
//	svc := ioutils.NewImageService()
//
//	// Re-encode PNG covers as JPEG, optionally fitting them within 1000x1000
//	cover, err := svc.PrepareCover(ctx, data, ioutils.CoverOptions{ConvertToJPEG: true})
package ioutils
