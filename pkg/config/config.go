// Package config defines the specpatch configuration and its loading
// rules. Embedded defaults carry the values every command needs to run
// without any setup; a .specpatch.toml (or specpatch.toml) in the project
// root overrides them key by key.
package config

import (
	"github.com/specpatch/specpatch/pkg/errors"
)

// Config is the fully merged configuration for a run.
type Config struct {
	Files FilesConfig `koanf:"files" toml:"files"`
	Mocks MocksConfig `koanf:"mocks" toml:"mocks"`
	Reset ResetConfig `koanf:"reset" toml:"reset"`
}

// FilesConfig controls which files a command visits.
type FilesConfig struct {
	// Specs are the glob patterns for the mock-argument commands.
	Specs []string `koanf:"specs" toml:"specs"`

	// Resets are the glob patterns for the reset commands.
	Resets []string `koanf:"resets" toml:"resets"`

	// Manifest is the failing-test list read by insert-arg, relative to
	// the project root.
	Manifest string `koanf:"manifest" toml:"manifest"`
}

// MocksConfig names the mock identifiers the mock-argument commands
// rewrite. The strip target and the insert list are deliberately separate:
// strip-arg undoes an over-broad insertion on one adapter mock, so giving
// both commands one list would reintroduce the bug strip-arg exists to fix.
type MocksConfig struct {
	// Placeholder is the argument matcher inserted and stripped.
	Placeholder string `koanf:"placeholder" toml:"placeholder"`

	// StripTarget is the single mock strip-arg operates on.
	StripTarget string `koanf:"strip_target" toml:"strip_target"`

	// InsertKnown are the mocks insert-arg prepends the placeholder to.
	InsertKnown []string `koanf:"insert_known" toml:"insert_known"`
}

// ResetConfig holds the statement the reset commands toggle.
type ResetConfig struct {
	// Live is the statement as it appears in an untouched file.
	Live string `koanf:"live" toml:"live"`

	// Marker is the commented-out form that replaces it.
	Marker string `koanf:"marker" toml:"marker"`
}

// Validate reports the first missing or inconsistent value. Every key has
// an embedded default, so a failure here means a root config file
// overrode one with something unusable.
func (c *Config) Validate() error {
	switch {
	case len(c.Files.Specs) == 0:
		return errors.New(errors.ErrConfigParse, "files.specs must name at least one glob pattern")
	case len(c.Files.Resets) == 0:
		return errors.New(errors.ErrConfigParse, "files.resets must name at least one glob pattern")
	case c.Files.Manifest == "":
		return errors.New(errors.ErrConfigParse, "files.manifest must not be empty")
	case c.Mocks.Placeholder == "":
		return errors.New(errors.ErrConfigParse, "mocks.placeholder must not be empty")
	case c.Mocks.StripTarget == "":
		return errors.New(errors.ErrConfigParse, "mocks.strip_target must not be empty")
	case len(c.Mocks.InsertKnown) == 0:
		return errors.New(errors.ErrConfigParse, "mocks.insert_known must name at least one mock")
	case c.Reset.Live == "":
		return errors.New(errors.ErrConfigParse, "reset.live must not be empty")
	case c.Reset.Marker == "", c.Reset.Marker == c.Reset.Live:
		return errors.New(errors.ErrConfigParse, "reset.marker must be set and differ from reset.live")
	}
	for _, mock := range c.Mocks.InsertKnown {
		if mock == "" {
			return errors.New(errors.ErrConfigParse, "mocks.insert_known must not contain empty names")
		}
	}
	return nil
}
