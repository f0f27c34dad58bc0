package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/handiism/mp3-autotag/internal/audio"
	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvUserAgent      = "MP3_AUTOTAG_USER_AGENT"
	EnvMusicBrainzURL = "MP3_AUTOTAG_MUSICBRAINZ_URL"
	EnvCoverArtURL    = "MP3_AUTOTAG_COVER_ART_URL"
	EnvLogLevel       = "MP3_AUTOTAG_LOG_LEVEL"
)

// Settings holds all configuration options.
type Settings struct {
	// Remote services
	MusicBrainzURL string `toml:"musicbrainz_url"`
	CoverArtURL    string `toml:"cover_art_url"`
	UserAgent      string `toml:"user_agent"`

	// Catalog queries
	ArtistSuggestions int `toml:"artist_suggestions"`
	AlbumLimit        int `toml:"album_limit"`

	// Tagging run
	PauseBetweenPaths float64  `toml:"pause_between_paths"`
	Extensions        []string `toml:"extensions"`
	ModifyTags        bool     `toml:"modify_tags"`

	// Cover art settings
	SaveCoverArtInTags    bool `toml:"save_cover_art_in_tags"`
	ConvertCoverArtToJPG  bool `toml:"convert_cover_art_to_jpg"`
	CoverArtInTagsResize  bool `toml:"cover_art_in_tags_resize"`
	CoverArtInTagsMaxSize int  `toml:"cover_art_in_tags_max_size"`

	// Logging
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"` // text, json
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		MusicBrainzURL: "https://musicbrainz.org/ws/2/",
		CoverArtURL:    "https://coverartarchive.org",
		UserAgent:      "AutoMP3Tagger/1.0 (contact@example.com)",

		ArtistSuggestions: 5,
		AlbumLimit:        100,

		PauseBetweenPaths: 1.0,
		Extensions:        []string{".mp3"},
		ModifyTags:        true,

		SaveCoverArtInTags:    true,
		ConvertCoverArtToJPG:  true,
		CoverArtInTagsResize:  false,
		CoverArtInTagsMaxSize: 1000,

		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load reads settings from a TOML file.
//
// Values missing from the file keep their defaults. A file that does not
// exist is not an error.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, err
	}

	if _, err := toml.DecodeFile(path, settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return settings, nil
}

// Save writes settings to a TOML file.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(s); err != nil {
		return fmt.Errorf("failed to encode config to TOML: %w", err)
	}

	return nil
}

// ApplyEnv loads a .env file from the working directory if there is one and
// overrides settings from the MP3_AUTOTAG_* environment variables. A missing
// .env file is not an error; one that cannot be parsed is.
func (s *Settings) ApplyEnv() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	if v := strings.TrimSpace(os.Getenv(EnvUserAgent)); v != "" {
		s.UserAgent = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvMusicBrainzURL)); v != "" {
		s.MusicBrainzURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvCoverArtURL)); v != "" {
		s.CoverArtURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		s.LogLevel = v
	}

	return nil
}

// Validate checks if the settings are usable.
func (s *Settings) Validate() error {
	if s.MusicBrainzURL == "" {
		return errors.New("musicbrainz_url cannot be empty")
	}
	if s.CoverArtURL == "" {
		return errors.New("cover_art_url cannot be empty")
	}
	if strings.TrimSpace(s.UserAgent) == "" {
		return errors.New("user_agent cannot be empty")
	}
	if s.ArtistSuggestions < 1 {
		return errors.New("artist_suggestions must be at least 1")
	}
	if s.AlbumLimit < 1 || s.AlbumLimit > 100 {
		return fmt.Errorf("album_limit must be between 1 and 100, got %d", s.AlbumLimit)
	}
	if s.PauseBetweenPaths < 0 {
		return errors.New("pause_between_paths cannot be negative")
	}
	if len(s.Extensions) == 0 {
		return errors.New("at least one file extension must be specified")
	}
	if s.CoverArtInTagsMaxSize < 1 {
		return errors.New("cover_art_in_tags_max_size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[s.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", s.LogLevel)
	}

	validLogFormats := map[string]bool{
		"text": true, "json": true,
	}
	if !validLogFormats[s.LogFormat] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", s.LogFormat)
	}

	return nil
}

// Pause returns PauseBetweenPaths as a duration.
func (s *Settings) Pause() time.Duration {
	return time.Duration(s.PauseBetweenPaths * float64(time.Second))
}

// ToTagConfig converts settings to an audio.TagConfig.
func (s *Settings) ToTagConfig() *audio.TagConfig {
	cfg := audio.DefaultTagConfig()
	cfg.ModifyTags = s.ModifyTags
	cfg.CoverArt = s.SaveCoverArtInTags
	return cfg
}
