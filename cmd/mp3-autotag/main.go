package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/handiism/mp3-autotag/internal/audio"
	"github.com/handiism/mp3-autotag/internal/config"
	"github.com/handiism/mp3-autotag/internal/coverart"
	"github.com/handiism/mp3-autotag/internal/http"
	ioutils "github.com/handiism/mp3-autotag/internal/io"
	"github.com/handiism/mp3-autotag/internal/musicbrainz"
	"github.com/handiism/mp3-autotag/internal/report"
	"github.com/handiism/mp3-autotag/internal/resolve"
	"github.com/handiism/mp3-autotag/internal/tagging"
	"github.com/handiism/mp3-autotag/internal/tui"
)

var (
	// Flags
	flagConfig  string
	flagVerbose bool
	flagDryRun  bool
	flagTUI     bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "mp3-autotag <path> [<path> ...]",
		Short: "Tag MP3 files with MusicBrainz metadata and cover art",
		Long: `Interactively pick an artist and album from MusicBrainz, then write title,
artist, album and the front cover from the Cover Art Archive into every MP3
file found below the given paths.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to a TOML config file")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Show verbose output and debug logs")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Show the tags that would be written without changing files")
	rootCmd.Flags().BoolVar(&flagTUI, "tui", false, "Use the interactive terminal picker for menus")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, report.Format(report.Event{Message: err.Error(), Level: report.LevelError}))
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	logLevel := settings.LogLevel
	if flagVerbose {
		logLevel = "debug"
	}
	logger := report.NewLogger(os.Stderr, logLevel, settings.LogFormat)
	console := report.NewConsole(os.Stdout, flagVerbose)

	catalog := musicbrainz.NewClient(
		http.NewClient(settings.MusicBrainzURL, settings.UserAgent, logger),
		settings.AlbumLimit,
		console.Report,
	)

	var prompter resolve.Prompter = resolve.NewConsole(os.Stdin, os.Stdout, console.Report)
	if flagTUI {
		prompter = tui.NewPrompter(os.Stdin, os.Stdout)
	}

	ctx := cmd.Context()
	resolver := resolve.NewResolver(catalog, prompter, console.Report,
		ioutils.DirectoryName(args[0]), settings.ArtistSuggestions)

	selection, err := resolver.Resolve(ctx)
	if err != nil {
		if errors.Is(err, resolve.ErrNoAlbumSelected) {
			// Already reported by the resolver.
			os.Exit(1)
		}
		return err
	}
	logger.WithField("album", selection.Album.ID).Debug("album selected")

	manager := tagging.NewManager(
		settings,
		afero.NewOsFs(),
		audio.NewTagger(settings.ToTagConfig()),
		coverart.NewFetcher(settings.CoverArtURL, settings.UserAgent, console.Report),
		console.Report,
	)
	manager.DryRun = flagDryRun
	manager.Logger = logger

	summary, err := manager.TagPaths(ctx, args, selection)
	if err != nil {
		return err
	}

	if flagDryRun {
		console.Report(report.Event{
			Message: fmt.Sprintf("Dry run: %d file(s) would be tagged, %d could not be read.", summary.Tagged, summary.Failed),
			Level:   report.LevelInfo,
		})
		return nil
	}

	console.Report(report.Event{
		Message: fmt.Sprintf("Done: %d file(s) tagged, artwork embedded in %d, %d failed, %d path(s) skipped.",
			summary.Tagged, summary.Artwork, summary.Failed, summary.Skipped),
		Level: report.LevelSuccess,
	})
	return nil
}

// loadSettings reads the optional config file, then applies .env and
// environment overrides.
func loadSettings() (*config.Settings, error) {
	settings := config.DefaultSettings()
	if flagConfig != "" {
		var err error
		settings, err = config.Load(flagConfig)
		if err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	}

	if err := settings.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("error loading environment: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return settings, nil
}
