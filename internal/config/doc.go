// Package config loads podgt settings from a TOML file and the environment.
//
// Settings are layered: built-in defaults, then the file (FileName in the
// working directory unless a path is given), then PODGT_* variables.
// A missing file is not an error.
package config
