// Copyright (c) 2025, soup and the cuemaker contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"

	"github.com/s0up4200/cuemaker/internal/cue"
)

// DefaultPattern matches "[hh:]mm:ss title" with optional square brackets
// around the timestamp.
const DefaultPattern = `(\[)?((\d{1,2}):)?(\d{1,2}):(\d{1,2})(\])? (.*)`

type Remark struct {
	Key   string `toml:"key"`
	Value string `toml:"value"`
}

type Config struct {
	Pattern   string   `toml:"pattern"`
	Hour      int      `toml:"hour"`
	Minute    int      `toml:"minute"`
	Second    int      `toml:"second"`
	Title     int      `toml:"title"`
	Performer int      `toml:"performer"` // -1 for none
	Output    string   `toml:"output"`
	File      string   `toml:"file"` // defaults to Output
	Format    string   `toml:"format"`
	Remarks   []Remark `toml:"remark"`
}

// Default returns the settings used when nothing else is configured
func Default() *Config {
	return &Config{
		Pattern:   DefaultPattern,
		Hour:      2,
		Minute:    3,
		Second:    4,
		Title:     6,
		Performer: cue.NoSlot,
		Output:    "output",
		Format:    "cue",
	}
}

// configPaths returns a list of paths to check for config files
func configPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn().Err(err).Msg("could not get user home directory")
		home = ""
	}

	return []string{
		"cuemaker.toml",  // current directory
		".cuemaker.toml", // hidden in current directory
		filepath.Join(home, ".config/cuemaker/config.toml"), // XDG config home
		filepath.Join(home, ".cuemaker.toml"),               // hidden in home directory
	}
}

// LoadConfig loads the defaults, then a config file, then environment
// variables, each overriding the previous.
func LoadConfig(configFile string) (*Config, error) {
	config := Default()

	if configFile != "" {
		if _, err := toml.DecodeFile(configFile, config); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		for _, path := range configPaths() {
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if _, err := toml.DecodeFile(path, config); err != nil {
				log.Warn().Err(err).Str("path", path).Msg("skipping unreadable config file")
				config = Default()
				continue
			}
			log.Debug().Str("path", path).Msg("loaded config file")
			break
		}
	}

	// Environment variables override config file
	if pattern := os.Getenv("CUEMAKER_PATTERN"); pattern != "" {
		config.Pattern = pattern
	}
	if output := os.Getenv("CUEMAKER_OUTPUT"); output != "" {
		config.Output = output
	}
	if format := os.Getenv("CUEMAKER_FORMAT"); format != "" {
		config.Format = format
	}

	return config, nil
}

// FieldPattern compiles the configured pattern together with its slots
func (c *Config) FieldPattern() (cue.FieldPattern, error) {
	matcher, err := cue.NewRegexpMatcher(c.Pattern)
	if err != nil {
		return cue.FieldPattern{}, &cue.ConfigurationError{Slot: "pattern", Reason: err.Error()}
	}
	return cue.FieldPattern{
		Matcher:   matcher,
		Hour:      c.Hour,
		Minute:    c.Minute,
		Second:    c.Second,
		Title:     c.Title,
		Performer: c.Performer,
	}, nil
}

// Album builds the album header from the configured remarks
func (c *Config) Album(title, performer string) cue.Album {
	album := cue.Album{Performer: performer, Title: title}
	for _, r := range c.Remarks {
		album.Remarks = append(album.Remarks, cue.Remark{Key: r.Key, Value: r.Value})
	}
	return album
}

// Filename returns the FILE directive target
func (c *Config) Filename() string {
	if c.File != "" {
		return c.File
	}
	return c.Output
}
