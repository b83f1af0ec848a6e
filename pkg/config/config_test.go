package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specpatch/specpatch/pkg/errors"
)

func validConfig() *Config {
	return &Config{
		Files: FilesConfig{
			Specs:    []string{"tests/**/*.spec.ts"},
			Resets:   []string{"tests/**/*.spec.ts"},
			Manifest: "failed-tests.txt",
		},
		Mocks: MocksConfig{
			Placeholder: "expect.any(String)",
			StripTarget: "userMgmtAdapterMock",
			InsertKnown: []string{"policyRepositoryMock"},
		},
		Reset: ResetConfig{
			Live:   "container.reset();",
			Marker: "// container.reset(); // Removed to preserve src/container.ts registrations",
		},
	}
}

func TestValidate(t *testing.T) {
	t.Run("accepts a complete config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty specs", mutate: func(c *Config) { c.Files.Specs = nil }},
		{name: "empty resets", mutate: func(c *Config) { c.Files.Resets = nil }},
		{name: "empty manifest", mutate: func(c *Config) { c.Files.Manifest = "" }},
		{name: "empty placeholder", mutate: func(c *Config) { c.Mocks.Placeholder = "" }},
		{name: "empty strip target", mutate: func(c *Config) { c.Mocks.StripTarget = "" }},
		{name: "empty insert list", mutate: func(c *Config) { c.Mocks.InsertKnown = nil }},
		{name: "blank name in insert list", mutate: func(c *Config) { c.Mocks.InsertKnown = []string{"a", ""} }},
		{name: "empty live statement", mutate: func(c *Config) { c.Reset.Live = "" }},
		{name: "empty marker", mutate: func(c *Config) { c.Reset.Marker = "" }},
		{name: "marker equals live", mutate: func(c *Config) { c.Reset.Marker = c.Reset.Live }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
		})
	}
}
