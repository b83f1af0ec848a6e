package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/specpatch/specpatch/pkg/errors"
)

// EnvRoot is the environment variable consulted when no root is given
// explicitly. The original maintenance scripts always ran from the project
// directory; the variable keeps that workflow available from elsewhere.
const EnvRoot = "SPECPATCH_ROOT"

// Paths resolves the project root and the per-user specpatch directories.
type Paths struct {
	root string

	// xdgConfig is the XDG config directory for specpatch
	xdgConfig string

	// xdgState is the XDG state directory for specpatch
	xdgState string

	// xdgCache is the XDG cache directory for specpatch
	xdgCache string
}

// New creates a Paths instance anchored at the given project root.
// An empty root falls back to SPECPATCH_ROOT, then to the current
// working directory.
func New(root string) (*Paths, error) {
	if root == "" {
		root = os.Getenv(EnvRoot)
	}
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot determine working directory")
		}
		root = wd
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid root %q", root)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "project root %q does not exist", abs)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "project root %q is not a directory", abs)
	}

	return &Paths{
		root:      abs,
		xdgConfig: filepath.Join(xdg.ConfigHome, "specpatch"),
		xdgState:  filepath.Join(xdg.StateHome, "specpatch"),
		xdgCache:  filepath.Join(xdg.CacheHome, "specpatch"),
	}, nil
}

// Root returns the absolute project root all relative patterns and
// manifest paths resolve against.
func (p *Paths) Root() string {
	return p.root
}

// ConfigDir returns the XDG config directory for specpatch.
func (p *Paths) ConfigDir() string {
	return p.xdgConfig
}

// StateDir returns the XDG state directory for specpatch.
func (p *Paths) StateDir() string {
	return p.xdgState
}

// CacheDir returns the XDG cache directory for specpatch.
func (p *Paths) CacheDir() string {
	return p.xdgCache
}

// BackupsDir returns the directory pre-write backups are copied into.
func (p *Paths) BackupsDir() string {
	return filepath.Join(p.xdgState, "backups")
}

// Resolve turns a root-relative path into an absolute one. Forward
// slashes are accepted on every platform; absolute paths pass through.
func (p *Paths) Resolve(rel string) string {
	native := filepath.FromSlash(rel)
	if filepath.IsAbs(native) {
		return filepath.Clean(native)
	}
	return filepath.Join(p.root, native)
}
