package nav

import (
	"bufio"
	"fmt"
	"os"
)

// ReadLines returns the lines of path between start and end, 1-indexed and
// inclusive, clamped to the file's bounds. start <= 0 means "from the first
// line"; end <= 0 means "through the last line". A range entirely outside
// the file yields an empty slice, not an error.
func (e *Engine) ReadLines(path string, start, end int) ([]string, error) {
	lines, err := readAllLines(path)
	if err != nil {
		return nil, err
	}

	if start < 1 {
		start = 1
	}
	if end < 1 || end > len(lines) {
		end = len(lines)
	}
	if start > end || start > len(lines) {
		return []string{}, nil
	}
	return lines[start-1 : end], nil
}

// readAllLines slurps path into a line slice. Line content excludes the
// terminator; a trailing newline does not produce a phantom empty line.
func readAllLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, scanBufInitial), scanBufMax)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}
