package tagging

import (
	"context"
	"fmt"
	"time"

	"github.com/handiism/mp3-autotag/internal/audio"
	"github.com/handiism/mp3-autotag/internal/config"
	ioutils "github.com/handiism/mp3-autotag/internal/io"
	"github.com/handiism/mp3-autotag/internal/model"
	"github.com/handiism/mp3-autotag/internal/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// TagWriter writes tags into one file. *audio.Tagger implements it.
type TagWriter interface {
	WriteText(path string, fields model.TagFields) error
	EmbedCover(path string, artwork []byte) error
	ReadFields(path string) (model.TagFields, error)
	CoverArtEnabled() bool
}

// CoverSource returns the front cover of a release group, or nil.
// *coverart.Fetcher implements it.
type CoverSource interface {
	FrontCover(ctx context.Context, releaseGroupID string) []byte
}

var _ TagWriter = (*audio.Tagger)(nil)

// Summary counts the outcome of a run.
type Summary struct {
	// Tagged counts files whose text frames were saved (or, in a dry run,
	// would be).
	Tagged int
	// Artwork counts files that received the front cover.
	Artwork int
	// Failed counts files that could not be tagged.
	Failed int
	// Skipped counts path arguments that were not a directory or an
	// audio file.
	Skipped int
}

// Manager tags every audio file below the given paths with one album.
type Manager struct {
	walker    *Walker
	tagger    TagWriter
	covers    CoverSource
	images    *ioutils.ImageService
	coverOpts ioutils.CoverOptions
	pause     time.Duration

	// DryRun lists files with their current and new fields without writing.
	DryRun bool

	// Logger receives debug diagnostics.
	Logger *logrus.Logger

	covered    map[string][]byte
	onProgress report.Func
}

// NewManager creates a Manager from settings.
func NewManager(settings *config.Settings, fs afero.Fs, tagger TagWriter, covers CoverSource, onProgress report.Func) *Manager {
	return &Manager{
		walker: NewWalker(fs, settings.Extensions, onProgress),
		tagger: tagger,
		covers: covers,
		images: ioutils.NewImageService(),
		coverOpts: ioutils.CoverOptions{
			ConvertToJPEG: settings.ConvertCoverArtToJPG,
			Resize:        settings.CoverArtInTagsResize,
			MaxSize:       settings.CoverArtInTagsMaxSize,
		},
		pause:      settings.Pause(),
		Logger:     report.Discard(),
		covered:    make(map[string][]byte),
		onProgress: onProgress,
	}
}

// TagPaths walks each path in order and tags the files found with the
// selected album, pausing after every path. It only fails when ctx is
// cancelled; per-file problems are reported and counted.
func (m *Manager) TagPaths(ctx context.Context, paths []string, selection *model.Selection) (Summary, error) {
	var summary Summary

	for _, root := range paths {
		m.Logger.WithField("path", root).Debug("walking path")

		found, err := m.walker.Walk(root, func(path string) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m.tagFile(ctx, path, selection, &summary)
			return nil
		})
		if err != nil {
			return summary, err
		}
		if !found {
			summary.Skipped++
		}

		if err := m.wait(ctx); err != nil {
			return summary, err
		}
	}

	return summary, nil
}

func (m *Manager) tagFile(ctx context.Context, path string, selection *model.Selection, summary *Summary) {
	m.progress(report.LevelInfo, fmt.Sprintf("Processing: %s", path))

	album := selection.Album
	fields := model.TagFields{
		Title:  audio.CleanTitle(path),
		Artist: album.CreditedArtist(selection.Artist.Name),
		Album:  album.Title,
	}
	m.Logger.WithFields(logrus.Fields{
		"path":   path,
		"title":  fields.Title,
		"artist": fields.Artist,
		"album":  fields.Album,
	}).Debug("tagging file")

	if m.DryRun {
		m.preview(path, fields, summary)
		return
	}

	if err := m.tagger.WriteText(path, fields); err != nil {
		m.progress(report.LevelError, fmt.Sprintf("Error tagging file: %v", err))
		summary.Failed++
		return
	}
	summary.Tagged++
	m.progress(report.LevelSuccess, fmt.Sprintf("Tagged: %s", fields))

	if !m.tagger.CoverArtEnabled() {
		return
	}

	artwork := m.cover(ctx, album.ID)
	if artwork == nil {
		return
	}
	if err := m.tagger.EmbedCover(path, artwork); err != nil {
		m.progress(report.LevelError, fmt.Sprintf("Artwork error: %v", err))
		return
	}
	summary.Artwork++
	m.progress(report.LevelSuccess, "Artwork embedded.")
}

func (m *Manager) preview(path string, fields model.TagFields, summary *Summary) {
	current, err := m.tagger.ReadFields(path)
	if err != nil {
		m.progress(report.LevelError, fmt.Sprintf("Error tagging file: %v", err))
		summary.Failed++
		return
	}
	summary.Tagged++
	m.progress(report.LevelInfo, fmt.Sprintf("  current: %s", current))
	m.progress(report.LevelInfo, fmt.Sprintf("  new:     %s", fields))
}

// cover downloads and prepares the album's front cover on first use. A
// missing cover is remembered too.
func (m *Manager) cover(ctx context.Context, releaseGroupID string) []byte {
	if artwork, ok := m.covered[releaseGroupID]; ok {
		return artwork
	}

	artwork := m.covers.FrontCover(ctx, releaseGroupID)
	if artwork != nil {
		prepared, err := m.images.PrepareCover(ctx, artwork, m.coverOpts)
		if err != nil {
			m.progress(report.LevelWarning, fmt.Sprintf("Could not prepare cover art, embedding it as downloaded: %v", err))
		} else {
			artwork = prepared
		}
		m.progress(report.LevelVerbose, fmt.Sprintf("Cover art ready (%d bytes)", len(artwork)))
	}

	m.covered[releaseGroupID] = artwork
	return artwork
}

// wait pauses between path arguments.
func (m *Manager) wait(ctx context.Context) error {
	if m.pause <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(m.pause):
		return nil
	}
}

func (m *Manager) progress(level report.Level, message string) {
	m.onProgress.Send(level, message)
}
