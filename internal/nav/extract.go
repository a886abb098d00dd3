package nav

import (
	"fmt"
	"strings"
)

// ExtractMember locates the declaration of name in path and extracts its
// enclosing block by delimiter-balance matching, subject to a line budget.
// maxLines is clamped into [MinBlockLines, MaxBlockLines].
//
// The returned block always spans the declaration line through the
// determined end line inclusive. Truncated is set when the budget (or the
// end of the file) was hit before the delimiter depth returned to zero.
//
// The depth counter has no awareness of string literals or comments; a
// delimiter character inside either will corrupt the count. That is an
// accepted limitation of the design, not a bug to be patched silently.
func (e *Engine) ExtractMember(path, name string, maxLines int) (*ExtractedBlock, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is blank: %w", ErrInvalidArgument)
	}
	maxLines = ClampBlockLines(maxLines)

	lines, err := readAllLines(path)
	if err != nil {
		return nil, err
	}

	block, err := e.extractBlock(lines, name, maxLines)
	if err != nil {
		return nil, fmt.Errorf("%s in %s: %w", name, path, err)
	}
	block.Path = path
	block.Name = name
	return block, nil
}

// extractBlock runs the declaration search, opening-delimiter search, and
// depth-balance walk over in-memory lines. It honors whatever line budget it
// is given; public callers clamp first.
func (e *Engine) extractBlock(lines []string, name string, maxLines int) (*ExtractedBlock, error) {
	declIdx := -1
	for i, line := range lines {
		if e.matchesDeclaration(line, name) {
			declIdx = i
			break
		}
	}
	if declIdx < 0 {
		return nil, ErrNotFoundInFile
	}

	openIdx := -1
	windowEnd := declIdx + e.delimWindow
	if windowEnd > len(lines) {
		windowEnd = len(lines)
	}
	for i := declIdx; i < windowEnd; i++ {
		if strings.ContainsRune(lines[i], e.open) {
			openIdx = i
			break
		}
	}
	if openIdx < 0 {
		return nil, ErrBodyNotFound
	}

	endIdx, truncated := e.balanceWalk(lines, declIdx, openIdx, maxLines)

	return &ExtractedBlock{
		StartLine: declIdx + 1,
		EndLine:   endIdx + 1,
		Truncated: truncated,
		Code:      strings.Join(lines[declIdx:endIdx+1], "\n"),
	}, nil
}

// matchesDeclaration reports whether line textually declares name: either a
// direct call-like occurrence ("name(") or name preceded by a construct
// keyword ("class name"). Shapes are checked in that fixed order; the test
// is a raw substring containment, so a longer identifier sharing the prefix
// ("AddRange(" for name "Add") also matches - preserved historical behavior.
func (e *Engine) matchesDeclaration(line, name string) bool {
	if strings.Contains(line, name+"(") {
		return true
	}
	for _, kw := range e.keywords {
		if strings.Contains(line, kw+" "+name) {
			return true
		}
	}
	return false
}

// balanceWalk scans characters left-to-right and lines top-to-bottom from
// openIdx, tracking nested delimiter depth. The block ends at the first line
// where depth returns to zero after having gone positive. The line budget is
// counted from declIdx; hitting it first ends the walk truncated, as does
// running off the end of the file.
func (e *Engine) balanceWalk(lines []string, declIdx, openIdx, maxLines int) (endIdx int, truncated bool) {
	// The budget covers the declaration-to-delimiter gap too. When the
	// opening delimiter sits past the budget line the block cannot close
	// within it; stop at the budget line so the truncated span equals
	// maxLines exactly. A delimiter exactly on the budget line still gets
	// scanned: the block may complete there.
	if openIdx-declIdx+1 > maxLines {
		return declIdx + maxLines - 1, true
	}

	depth := 0
	opened := false
	for i := openIdx; i < len(lines); i++ {
		for _, ch := range lines[i] {
			switch ch {
			case e.open:
				depth++
				opened = true
			case e.close:
				depth--
			}
		}
		if opened && depth <= 0 {
			return i, false
		}
		if i-declIdx+1 >= maxLines {
			return i, true
		}
	}
	return len(lines) - 1, true
}
