// Package tagging walks the command-line paths and tags every MP3 found
// with the selected album.
//
// The Walker finds matching files on an afero filesystem; the Manager
// writes the text frames, then embeds the front cover, for each one.
// The cover is downloaded and prepared once per album.
//
//	manager := tagging.NewManager(settings, afero.NewOsFs(), tagger, fetcher, console.Report)
//	summary, err := manager.TagPaths(ctx, paths, selection)
//
// Progress is reported through report.Func like every other component.
package tagging
