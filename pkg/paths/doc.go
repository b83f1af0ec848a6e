// Package paths provides centralized path handling for specpatch.
//
// This package resolves the project root every command operates on and
// implements the XDG Base Directory specification for the tool's own
// files. It handles:
//
//   - Project root discovery and validation
//   - XDG directory structure (config, state, cache)
//   - Resolving root-relative file references from configs and manifests
//   - Backup file locations
//
// # Environment Variables
//
// The package respects the following environment variables:
//
//   - SPECPATCH_ROOT: Project root when no --root flag is given
//     (default: the working directory)
//   - XDG_CONFIG_HOME, XDG_STATE_HOME, XDG_CACHE_HOME: Standard XDG
//     overrides, applied through the xdg library
//
// # XDG Base Directory Structure
//
//   - Config: $XDG_CONFIG_HOME/specpatch (user configuration)
//   - State: $XDG_STATE_HOME/specpatch (log file, backups)
//   - Cache: $XDG_CACHE_HOME/specpatch (temporary files)
package paths
