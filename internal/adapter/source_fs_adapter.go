// Package adapter contains infrastructure adapters for the detest CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/detest/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain
// layer relies on when scanning user projects. It intentionally hides direct
// `os` access so the workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Discover collects candidate Rust files under root using the provided
	// search patterns. Patterns are relative to root; a pattern match that is
	// a directory is walked recursively. Matches are returned in discovery
	// order and are NOT deduplicated across patterns.
	Discover(root m.Path, globs []string) ([]m.Path, error)

	// Walk traverses root recursively.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path so the domain can check existence
	// or distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the concrete SourceFSAdapter backed by the local
// filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Discover expands each pattern under root and collects every .rs file
// reachable from the directory matches. A pattern match that is not a
// directory is ignored, so a stray file sitting directly under crates/ is
// never queued. Patterns that match nothing are silently skipped, so absent
// subtrees never fail a run; unreadable entries inside a subtree are skipped
// the same way. A file reachable through two patterns is queued twice; the
// second pass finds nothing left to strip.
func (a *LocalSourceFSAdapter) Discover(root m.Path, globs []string) ([]m.Path, error) {
	var files []m.Path

	for _, pattern := range globs {
		matches, err := filepath.Glob(filepath.Join(string(root), pattern))
		if err != nil {
			return nil, fmt.Errorf("bad search pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || !info.IsDir() {
				continue
			}

			err = a.Walk(m.Path(match), func(path string, info os.FileInfo, err error) error {
				if err != nil {
					if info != nil && info.IsDir() {
						return filepath.SkipDir
					}

					return nil
				}

				if info.IsDir() || filepath.Ext(path) != m.RustFileExt {
					return nil
				}

				files = append(files, m.Path(path))

				return nil
			})
			if err != nil {
				return nil, err
			}
		}
	}

	return files, nil
}

// Walk iterates over all files under root, descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		return fn(path, info, err)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}
