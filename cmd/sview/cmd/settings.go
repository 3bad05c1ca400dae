// File: settings.go
// Title: CLI Settings
// Description: Defines the enum-keyed settings of the CLI, their defaults,
//              and loading from a TOML or YAML settings file.
// Version: v0.1.0
// Created: 2026-08-26
// Modified: 2026-08-26
//
// Change History:
// - 2026-08-26 v0.1.0: Initial implementation

package cmd

import (
	"path/filepath"
	"strings"

	sverror "github.com/mbertram/sview/core/error"
	"github.com/mbertram/sview/core/log"
	"github.com/mbertram/sview/core/params"
	"github.com/mbertram/sview/utils/filex"
)

// setting enumerates the keys of the CLI settings map.
type setting int

const (
	settingOffset setting = iota
	settingLength
)

var settingNames = map[setting]string{
	settingOffset: "offset",
	settingLength: "length",
}

func settingName(k setting) string {
	return settingNames[k]
}

func settingFor(name string) (setting, bool) {
	for k, n := range settingNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

func settingDefaults(k setting) (interface{}, bool) {
	switch k {
	case settingOffset:
		return 0, true
	case settingLength:
		// Substr truncates over-long requests, so "everything" is just a
		// large window.
		return int(^uint(0) >> 1), true
	default:
		return nil, false
	}
}

// settings holds the active settings map; defaults only until a file is
// loaded.
var settings = params.NewMap[setting]().WithDefaults(settingDefaults)

// loadSettings reads the settings file, if one was given, and installs it
// with the built-in defaults as fallback.
func loadSettings(path string) error {
	if path == "" {
		return nil
	}

	content, err := filex.Open(path).Contents()
	if err != nil {
		return sverror.Wrap(err, "loading settings file")
	}

	var loaded *params.Map[setting]
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		loaded, err = params.DecodeTOML([]byte(content), settingFor)
	case ".yaml", ".yml":
		loaded, err = params.DecodeYAML([]byte(content), settingFor)
	default:
		return sverror.NewCode(sverror.CodeInvalidInput).
			WithOperation("cmd.loadSettings").
			WithDetail("path", path).
			WithDetail("reason", "unsupported settings format")
	}
	if err != nil {
		return sverror.Wrap(err, "parsing settings file")
	}

	settings = loaded.WithDefaults(settingDefaults)
	logger.Debug("settings loaded", log.String("path", path))
	return nil
}

// intSetting reads an integer setting, accepting the integer widths the
// TOML and YAML decoders produce.
func intSetting(key setting, fallback int) int {
	value, err := settings.GetAny(key)
	if err != nil {
		return fallback
	}
	switch n := value.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return fallback
	}
}
