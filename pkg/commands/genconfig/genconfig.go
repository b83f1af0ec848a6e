// Package genconfig produces configuration files showing available options.
package genconfig

import (
	"path/filepath"

	"github.com/specpatch/specpatch/pkg/config"
	"github.com/specpatch/specpatch/pkg/errors"
	"github.com/specpatch/specpatch/pkg/filesystem"
	"github.com/specpatch/specpatch/pkg/logging"
	"github.com/specpatch/specpatch/pkg/paths"
	"github.com/specpatch/specpatch/pkg/types"
)

// GenConfigOptions contains all parameters for the GenConfig command.
type GenConfigOptions struct {
	// Root is the project root directory to operate on
	Root string

	// Write saves the generated config to the root instead of
	// returning it for display
	Write bool

	// Effective renders the merged configuration currently in force
	// rather than a commented-out template
	Effective bool

	// FileSystem allows injection of a filesystem for testing
	FileSystem types.FS
}

// GenConfig returns a starter configuration with every value commented
// out, or with Effective set, the configuration the tool would actually
// run with after merging the root config file over the defaults.
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	if opts.Write && opts.Effective {
		return nil, errors.New(errors.ErrInvalidInput, "--write cannot be combined with --effective")
	}

	var content string
	if opts.Effective {
		p, err := paths.New(opts.Root)
		if err != nil {
			return nil, err
		}
		cfg, err := config.Load(p.Root())
		if err != nil {
			return nil, err
		}
		content, err = config.EffectiveTOML(cfg)
		if err != nil {
			return nil, err
		}
	} else {
		content = config.GenerateTemplate()
	}

	result := &types.GenConfigResult{ConfigContent: content}
	if !opts.Write {
		return result, nil
	}

	p, err := paths.New(opts.Root)
	if err != nil {
		return nil, err
	}

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	target := filepath.Join(p.Root(), config.RootConfigNames[0])
	if _, err := fsys.Stat(target); err == nil {
		logger.Warn().Str("path", target).Msg("Config file already exists, skipping")
		return result, nil
	}

	if err := fsys.WriteFile(target, []byte(content), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write config file %s", target)
	}

	logger.Info().Str("path", target).Msg("Wrote config file")
	result.FilesWritten = append(result.FilesWritten, target)
	return result, nil
}
