package nav

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// scanner buffer sizing: start small, allow pathological single-line files.
const (
	scanBufInitial = 64 * 1024
	scanBufMax     = 1024 * 1024
)

// FindInFile scans path line by line for a case-insensitive substring match
// against query and returns up to maxMatches SearchMatch records. Scanning
// stops the instant the cap is reached. maxMatches is clamped into
// [MinMatches, MaxMatches] and snippetChars into
// [MinSnippetChars, MaxSnippetChars]. A file with no matching lines yields
// an empty slice, not an error.
func (e *Engine) FindInFile(path, query string, maxMatches, snippetChars int) ([]SearchMatch, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query is blank: %w", ErrInvalidArgument)
	}
	maxMatches = ClampMatches(maxMatches)
	snippetChars = ClampSnippetChars(snippetChars)

	matches := make([]SearchMatch, 0, maxMatches)
	err := scanFile(path, query, snippetChars, func(m SearchMatch) bool {
		matches = append(matches, m)
		return len(matches) < maxMatches
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// ProjectSearch composes the catalog walk with per-line matching: it scans
// every file under root that passes the extension and exclusion filters,
// collecting up to limit matches across the whole tree. Per-file read
// failures are swallowed and the file skipped; the call fails only when root
// itself is missing or the query is blank. Each match carries the file path.
// A short result list means the cap may have bound mid-tree, not that no
// further matches exist.
func (e *Engine) ProjectSearch(root, query string, limit int, extFilter string, snippetChars int) ([]SearchMatch, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query is blank: %w", ErrInvalidArgument)
	}
	limit = ClampMatches(limit)
	snippetChars = ClampSnippetChars(snippetChars)

	matches := make([]SearchMatch, 0, limit)
	err := e.walk(root, extFilter, func(path string) error {
		full := false
		scanErr := scanFile(path, query, snippetChars, func(m SearchMatch) bool {
			m.File = path
			matches = append(matches, m)
			full = len(matches) >= limit
			return !full
		})
		if scanErr != nil {
			// Unreadable file: skip it, keep walking.
			return nil
		}
		if full {
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// scanFile streams path line by line, invoking emit for each matching line.
// emit returns false to stop early. Line numbers are 1-indexed and count
// every line, blanks included.
func scanFile(path string, query string, snippetChars int, emit func(SearchMatch) bool) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file %s: %w", path, ErrNotFound)
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	needle := strings.ToLower(query)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, scanBufInitial), scanBufMax)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if !strings.Contains(strings.ToLower(line), needle) {
			continue
		}
		match := SearchMatch{
			Line:    lineNum,
			Snippet: makeSnippet(line, snippetChars),
		}
		if !emit(match) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// makeSnippet trims the line and hard-cuts it at limit runes, appending the
// ellipsis marker iff a cut happened. The cut is a plain character count,
// not word-boundary aware.
func makeSnippet(line string, limit int) string {
	trimmed := strings.TrimSpace(line)
	runes := []rune(trimmed)
	if len(runes) <= limit {
		return trimmed
	}
	return string(runes[:limit]) + Ellipsis
}
