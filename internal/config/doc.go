// Package config provides configuration management for mp3-autotag.
//
// This package handles:
//   - Default configuration values
//   - Loading settings from an optional TOML file
//   - Overrides from a .env file or the process environment
//   - Validation and conversion to the option types of other packages
//
// # Default Settings
//
// Use DefaultSettings() to get the defaults. Running without a config
// file behaves exactly like them:
//
//	settings := config.DefaultSettings()
//	// Queries https://musicbrainz.org/ws/2/
//	// Shows 5 artist suggestions, lists up to 100 release-groups
//	// Pauses one second after each path argument
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/mp3-autotag.toml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Environment
//
// ApplyEnv loads .env when present and then reads the MP3_AUTOTAG_*
// variables, which take precedence over the file. A .env file that cannot be
// parsed makes ApplyEnv fail.
package config
