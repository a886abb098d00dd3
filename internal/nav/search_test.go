package nav

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindInFile_CaseInsensitive(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"a.txt": "foo\nbar baz\nFOO again\n",
	})
	e := defaultEngine(t)

	matches, err := e.FindInFile(filepath.Join(root, "a.txt"), "foo", 10, 80)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, 1, matches[0].Line)
	assert.Equal(t, "foo", matches[0].Snippet)
	assert.Equal(t, 3, matches[1].Line)
	assert.Equal(t, "FOO again", matches[1].Snippet)
	// Single-file matches carry no file path.
	assert.Empty(t, matches[0].File)
}

func TestFindInFile_NoMatchesIsEmptyNotError(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{"a.txt": "nothing here\n"})
	e := defaultEngine(t)

	matches, err := e.FindInFile(filepath.Join(root, "a.txt"), "zzz", 10, 80)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindInFile_BlankQuery(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{"a.txt": "x\n"})
	e := defaultEngine(t)

	_, err := e.FindInFile(filepath.Join(root, "a.txt"), "   ", 10, 80)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFindInFile_MissingFile(t *testing.T) {
	t.Parallel()

	e := defaultEngine(t)
	_, err := e.FindInFile(filepath.Join(t.TempDir(), "nope.txt"), "x", 10, 80)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindInFile_CapStopsEarly(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	for i := 0; i < 100; i++ {
		sb.WriteString("needle line\n")
	}
	root := writeTree(t, map[string]string{"big.txt": sb.String()})
	e := defaultEngine(t)

	matches, err := e.FindInFile(filepath.Join(root, "big.txt"), "needle", 3, 80)
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{matches[0].Line, matches[1].Line, matches[2].Line})

	// Cap above the bound clamps to MaxMatches.
	matches, err = e.FindInFile(filepath.Join(root, "big.txt"), "needle", 500, 80)
	require.NoError(t, err)
	assert.Len(t, matches, MaxMatches)
}

func TestFindInFile_BlankLinesCounted(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{"a.txt": "\n\ntarget\n"})
	e := defaultEngine(t)

	matches, err := e.FindInFile(filepath.Join(root, "a.txt"), "target", 10, 80)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 3, matches[0].Line)
}

func TestSnippetTruncation(t *testing.T) {
	t.Parallel()

	long := "  " + strings.Repeat("abcde ", 40) + "needle" // well past any cap
	root := writeTree(t, map[string]string{"a.txt": long + "\n"})
	e := defaultEngine(t)

	matches, err := e.FindInFile(filepath.Join(root, "a.txt"), "needle", 10, 40)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	snippet := matches[0].Snippet
	assert.True(t, strings.HasSuffix(snippet, Ellipsis))
	assert.LessOrEqual(t, len([]rune(snippet)), MinSnippetChars+len(Ellipsis))
	// Leading whitespace trimmed before the cut.
	assert.True(t, strings.HasPrefix(snippet, "abcde"))
}

func TestSnippetAtExactLimitHasNoEllipsis(t *testing.T) {
	t.Parallel()

	line := strings.Repeat("x", MinSnippetChars)
	root := writeTree(t, map[string]string{"a.txt": line + "\n"})
	e := defaultEngine(t)

	matches, err := e.FindInFile(filepath.Join(root, "a.txt"), "x", 10, MinSnippetChars)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, line, matches[0].Snippet)
}

func TestProjectSearch_AcrossFiles(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"a/one.cs":    "class One { }\n// needle here\n",
		"b/two.cs":    "needle again\n",
		"b/three.go":  "needle in go\n",
		".git/HEAD":   "needle in git\n",
		"bin/out.txt": "needle in bin\n",
	})
	e := defaultEngine(t)

	matches, err := e.ProjectSearch(root, "needle", 50, "cs", 80)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.NotEmpty(t, m.File)
		assert.NotContains(t, m.File, ".git")
		assert.NotContains(t, m.File, string(filepath.Separator)+"bin"+string(filepath.Separator))
		assert.True(t, strings.HasSuffix(m.File, ".cs"))
	}
}

func TestProjectSearch_CapStopsMidTree(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"a.txt": strings.Repeat("needle\n", 10),
		"b.txt": strings.Repeat("needle\n", 10),
	})
	e := defaultEngine(t)

	matches, err := e.ProjectSearch(root, "needle", 5, "", 80)
	require.NoError(t, err)
	assert.Len(t, matches, 5)
}

func TestProjectSearch_SkipsUnreadableFile(t *testing.T) {
	t.Parallel()

	// A single line past the scanner's buffer cap fails that file's scan
	// with bufio.ErrTooLong; the walk keeps going and other files' matches
	// still come back.
	root := writeTree(t, map[string]string{
		"bad.txt":  strings.Repeat("a", scanBufMax+1),
		"good.txt": "needle\n",
	})
	e := defaultEngine(t)

	matches, err := e.ProjectSearch(root, "needle", 10, "", 80)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Contains(t, matches[0].File, "good.txt")

	// Single-file search on the same file surfaces the error instead.
	_, err = e.FindInFile(filepath.Join(root, "bad.txt"), "needle", 10, 80)
	assert.Error(t, err)
}

func TestProjectSearch_MissingRoot(t *testing.T) {
	t.Parallel()

	e := defaultEngine(t)
	_, err := e.ProjectSearch(filepath.Join(t.TempDir(), "nope"), "x", 10, "", 80)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectSearch_BlankQuery(t *testing.T) {
	t.Parallel()

	e := defaultEngine(t)
	_, err := e.ProjectSearch(t.TempDir(), "", 10, "", 80)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
