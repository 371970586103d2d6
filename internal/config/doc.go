// Package config loads and validates the aniweek configuration file.
//
// Configuration lives in a TOML document (default
// ~/.config/aniweek/config.toml). Defaults cover every field so a missing
// file is not an error; the loaded config always has expanded, absolute
// paths.
package config
