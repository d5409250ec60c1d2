// Package adapter contains filesystem, CI and remote-API adapters for the connlint CLI.
package adapter

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	m "connlint.dev/pkg/connlint/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the workflow needs to
// resolve the file set. Paths it returns are slash-separated and relative to
// the root they were resolved against.
type SourceFSAdapter interface {
	// Glob resolves a doublestar pattern (`**` crosses directories) under root.
	// Only regular files are returned, sorted.
	Glob(ctx context.Context, root m.Path, pattern string) ([]m.Path, error)

	// ReadFile loads a file relative to root.
	ReadFile(ctx context.Context, root m.Path, path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Glob implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) Glob(ctx context.Context, root m.Path, pattern string) ([]m.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pattern = path.Clean(filepath.ToSlash(pattern))
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(string(root)), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q in %s: %w", pattern, root, err)
	}

	sort.Strings(matches)

	paths := make([]m.Path, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, m.Path(match))
	}

	return paths, nil
}

// ReadFile implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, root m.Path, p m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path comes from Glob under the configured root
	return os.ReadFile(filepath.Join(string(root), filepath.FromSlash(string(p))))
}

// FileInfo implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, p m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(p))
}
