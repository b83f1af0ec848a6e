package config

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/specpatch/specpatch/pkg/errors"
)

// GenerateTemplate returns the defaults file with every value line
// commented out. Writing it to the project root gives users a starting
// point that changes nothing until they uncomment a line.
func GenerateTemplate() string {
	return commentOutConfigValues(DefaultTOML())
}

// EffectiveTOML renders the merged configuration back to TOML, showing
// what a run would actually use after root overrides.
func EffectiveTOML(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(data), nil
}

// commentOutConfigValues takes the TOML content and comments out all
// non-comment, non-blank lines that contain configuration values
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [files], [mocks]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		// Comment out configuration value lines
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
