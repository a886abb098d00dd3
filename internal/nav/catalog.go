package nav

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ListFiles enumerates files under root, skipping excluded directories and
// ignore-glob matches, optionally filtered to a single extension
// (case-insensitive, with or without the leading dot). Enumeration stops as
// soon as limit entries are collected; limit is clamped into
// [MinListLimit, MaxListLimit]. Ordering follows the underlying directory
// walk, which is not guaranteed stable across platforms.
func (e *Engine) ListFiles(root, extFilter string, limit int) ([]string, error) {
	limit = ClampListLimit(limit)
	files := make([]string, 0, limit)
	err := e.walk(root, extFilter, func(path string) error {
		files = append(files, path)
		if len(files) >= limit {
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// walk drives a filtered recursive walk of root, invoking visit for each
// file that survives the exclusion, ignore, and extension filters. visit may
// return fs.SkipAll to short-circuit. Unreadable subentries are skipped
// silently; only a missing or non-directory root is an error.
func (e *Engine) walk(root, extFilter string, visit func(path string) error) error {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("directory %s: %w", root, ErrNotFound)
		}
		return fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("directory %s: %w", root, ErrNotFound)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Robustness over completeness: an unreadable entry drops out
			// of the results instead of failing the walk.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && e.excludeDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}

		if !matchesExtension(path, extFilter) {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		if e.ignored(filepath.ToSlash(rel)) {
			return nil
		}

		return visit(path)
	})
}

func (e *Engine) ignored(relPath string) bool {
	for _, p := range e.ignore {
		if p.glob.Match(relPath) {
			return true
		}
	}
	return false
}

func matchesExtension(path, filter string) bool {
	if strings.TrimSpace(filter) == "" {
		return true
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return strings.EqualFold(ext, strings.TrimPrefix(filter, "."))
}
