package config

import (
	"os"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/specpatch/specpatch/pkg/errors"
	"github.com/specpatch/specpatch/pkg/logging"
)

// RootConfigNames are tried in order inside the project root. The first
// file that exists wins; the rest are ignored.
var RootConfigNames = []string{".specpatch.toml", "specpatch.toml"}

// Load merges the embedded defaults with the root config file, if one
// exists, and returns the validated result.
func Load(root string) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	// 1. Load embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load embedded defaults")
	}

	// 2. Load root config if it exists
	for _, filename := range RootConfigNames {
		path := filepath.Join(root, filename)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
			}
			logger.Debug().Str("path", path).Msg("loaded root config")
			break
		}
	}

	// 3. Unmarshal to Config struct
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
