// Package paths provides centralized path resolution for Snipdeck's data directories.
//
// Snipdeck supports the XDG Base Directory Specification for organizing files:
//
//   - Config (XDG_CONFIG_HOME): config.json, snippets.json — user data worth syncing
//   - Data (XDG_DATA_HOME): local application data
//   - State (XDG_STATE_HOME): logs/ — transient log files
//
// Resolution order:
//  1. If ~/.snipdeck/ exists → use legacy flat layout (all paths under ~/.snipdeck/)
//  2. If XDG env vars are set → use XDG layout with proper separation
//  3. Fresh install, no XDG vars → default to ~/.snipdeck/
package paths

import (
	"os"
	"path/filepath"
	"sync"
)

const (
	// SnippetsFileName is the current name of the snippet library file.
	SnippetsFileName = "snippets.json"

	// LegacySnippetsFileName is the original file name from when the
	// library stored prompt presets.
	LegacySnippetsFileName = "prompts.json"
)

var (
	mu       sync.Mutex
	resolved *resolvedPaths
)

type resolvedPaths struct {
	home      string
	configDir string
	dataDir   string
	stateDir  string
	legacy    bool
}

// resolve computes the path layout once and caches it.
func resolve() (*resolvedPaths, error) {
	mu.Lock()
	defer mu.Unlock()

	if resolved != nil {
		return resolved, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	legacyDir := filepath.Join(home, ".snipdeck")

	// 1. If ~/.snipdeck/ exists, use legacy layout
	if info, err := os.Stat(legacyDir); err == nil && info.IsDir() {
		resolved = &resolvedPaths{
			home:      home,
			configDir: legacyDir,
			dataDir:   legacyDir,
			stateDir:  legacyDir,
			legacy:    true,
		}
		return resolved, nil
	}

	// 2. Check XDG env vars
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	xdgData := os.Getenv("XDG_DATA_HOME")
	xdgState := os.Getenv("XDG_STATE_HOME")

	if xdgConfig != "" || xdgData != "" || xdgState != "" {
		// Use XDG layout — fill in defaults for unset vars
		if xdgConfig == "" {
			xdgConfig = filepath.Join(home, ".config")
		}
		if xdgData == "" {
			xdgData = filepath.Join(home, ".local", "share")
		}
		if xdgState == "" {
			xdgState = filepath.Join(home, ".local", "state")
		}
		resolved = &resolvedPaths{
			home:      home,
			configDir: filepath.Join(xdgConfig, "snipdeck"),
			dataDir:   filepath.Join(xdgData, "snipdeck"),
			stateDir:  filepath.Join(xdgState, "snipdeck"),
			legacy:    false,
		}
		return resolved, nil
	}

	// 3. Fresh install, no XDG — default to legacy
	resolved = &resolvedPaths{
		home:      home,
		configDir: legacyDir,
		dataDir:   legacyDir,
		stateDir:  legacyDir,
		legacy:    true,
	}
	return resolved, nil
}

// ConfigDir returns the directory for configuration files (config.json).
func ConfigDir() (string, error) {
	r, err := resolve()
	if err != nil {
		return "", err
	}
	return r.configDir, nil
}

// DataDir returns the directory for persistent data files.
func DataDir() (string, error) {
	r, err := resolve()
	if err != nil {
		return "", err
	}
	return r.dataDir, nil
}

// StateDir returns the directory for runtime state and logs.
func StateDir() (string, error) {
	r, err := resolve()
	if err != nil {
		return "", err
	}
	return r.stateDir, nil
}

// ConfigFilePath returns the full path to config.json.
func ConfigFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LogsDir returns the directory for log files.
func LogsDir() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs"), nil
}

// DefaultSnippetsPath returns the zero-config location of the snippet
// library file. New libraries are created here; the file need not exist.
func DefaultSnippetsPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SnippetsFileName), nil
}

// StartersFilePath returns the full path to the optional user-authored
// starter pack file.
func StartersFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "starters.yaml"), nil
}

// SnippetFileOptions carries the user-configured overrides that influence
// where the snippet library file lives. All fields are optional; the zero
// value resolves to DefaultSnippetsPath or an existing legacy location.
type SnippetFileOptions struct {
	// ExplicitPath is a full path to the snippet file. When set, it wins
	// over every other rule.
	ExplicitPath string

	// RequireExplicitExists makes ExplicitPath conditional: it is honored
	// only when the file already exists, otherwise resolution falls
	// through to the remaining rules. Older releases behaved this way.
	RequireExplicitExists bool

	// FolderOverride replaces the default folder while keeping the
	// default (or overridden) file name.
	FolderOverride string

	// FileNameOverride replaces the default file name while keeping the
	// default (or overridden) folder.
	FileNameOverride string
}

// ResolveSnippetsFile determines the path of the snippet library file.
//
// Resolution order:
//  1. ExplicitPath, if set (subject to RequireExplicitExists)
//  2. FolderOverride and/or FileNameOverride joined with defaults
//  3. The first existing legacy candidate location
//  4. DefaultSnippetsPath (need not exist)
func ResolveSnippetsFile(o SnippetFileOptions) (string, error) {
	if o.ExplicitPath != "" {
		if !o.RequireExplicitExists || fileExists(o.ExplicitPath) {
			return o.ExplicitPath, nil
		}
	}

	if o.FolderOverride != "" || o.FileNameOverride != "" {
		folder := o.FolderOverride
		if folder == "" {
			dir, err := ConfigDir()
			if err != nil {
				return "", err
			}
			folder = dir
		}
		name := o.FileNameOverride
		if name == "" {
			name = SnippetsFileName
		}
		return filepath.Join(folder, name), nil
	}

	candidates, err := snippetFileCandidates()
	if err != nil {
		return "", err
	}
	for _, c := range candidates {
		if fileExists(c) {
			return c, nil
		}
	}

	return DefaultSnippetsPath()
}

// snippetFileCandidates returns the ordered locations where earlier
// releases may have left a snippet file. Order matters: the config root
// is preferred over the Documents folder, which is preferred over the
// data root, and the current file name over the original one.
func snippetFileCandidates() ([]string, error) {
	r, err := resolve()
	if err != nil {
		return nil, err
	}

	dirs := []string{
		r.configDir,
		filepath.Join(r.home, "Documents", "Snipdeck"),
	}
	if r.dataDir != r.configDir {
		dirs = append(dirs, r.dataDir)
	}

	var candidates []string
	for _, dir := range dirs {
		candidates = append(candidates,
			filepath.Join(dir, SnippetsFileName),
			filepath.Join(dir, LegacySnippetsFileName),
		)
	}
	return candidates, nil
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// IsLegacyLayout returns true if using the ~/.snipdeck/ flat layout.
func IsLegacyLayout() bool {
	r, err := resolve()
	if err != nil {
		return true // assume legacy on error
	}
	return r.legacy
}

// Reset clears the cached path resolution. This is intended for testing only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	resolved = nil
}
