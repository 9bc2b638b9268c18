package adapter

import (
	"os"
	"path/filepath"

	m "github.com/mouse-blink/doxycov/internal/model"
)

// SourceFSAdapter abstracts the filesystem probes the classifier relies on
// when attributing definitions to source files. It intentionally hides
// direct `os` access so the domain logic can be tested without recreating
// a real project layout on disk.
type SourceFSAdapter interface {
	// IsFile reports whether path exists and is a regular file.
	IsFile(path m.Path) bool

	// Realpath resolves path to its canonical real path, following
	// symlinks. The real path is the grouping key, so the same physical
	// file reached through different links accumulates into one record.
	Realpath(path m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalSourceFSAdapter is the concrete implementation backed by the local
// filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready
// to be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// IsFile reports whether path exists and is a regular file.
func (a *LocalSourceFSAdapter) IsFile(path m.Path) bool {
	info, err := os.Stat(string(path))

	return err == nil && info.Mode().IsRegular()
}

// Realpath resolves path to an absolute path with all symlinks evaluated.
func (a *LocalSourceFSAdapter) Realpath(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}

	return m.Path(real), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
