package nav

// Bounded ranges for caller-supplied limits. Values outside a range are
// silently clamped to the nearest bound rather than rejected - a deliberate
// leniency policy favoring caller convenience over strictness.
const (
	MinListLimit = 1
	MaxListLimit = 1000

	MinMatches = 1
	MaxMatches = 50

	MinSnippetChars = 40
	MaxSnippetChars = 400

	MinBlockLines = 20
	MaxBlockLines = 2000
)

// Defaults used by the CLI and MCP layers when an argument is omitted.
const (
	DefaultListLimit    = 200
	DefaultMatches      = 20
	DefaultSnippetChars = 160
	DefaultBlockLines   = 400
)

// Ellipsis is appended to a snippet that was cut at the length cap.
const Ellipsis = "..."

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampListLimit clamps a directory-listing limit into [MinListLimit, MaxListLimit].
func ClampListLimit(v int) int { return clamp(v, MinListLimit, MaxListLimit) }

// ClampMatches clamps a search match cap into [MinMatches, MaxMatches].
func ClampMatches(v int) int { return clamp(v, MinMatches, MaxMatches) }

// ClampSnippetChars clamps a snippet length into [MinSnippetChars, MaxSnippetChars].
func ClampSnippetChars(v int) int { return clamp(v, MinSnippetChars, MaxSnippetChars) }

// ClampBlockLines clamps an extraction line budget into [MinBlockLines, MaxBlockLines].
func ClampBlockLines(v int) int { return clamp(v, MinBlockLines, MaxBlockLines) }
