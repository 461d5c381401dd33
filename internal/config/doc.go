// Package config provides configuration loading for herald.
//
// Configuration lives in a single directory (default ~/.config/herald,
// overridable with the HERALD_CONFIG environment variable) containing
// config.yaml plus the command definitions subdirectory. Loading starts from
// the compiled-in defaults and merges config.yaml over them, so a missing or
// partial file always yields a fully populated HeraldConfig.
//
// Relative paths inside the file (the definitions directory, the shell
// history file) are resolved against the config directory, keeping a config
// tree relocatable as a whole.
package config
