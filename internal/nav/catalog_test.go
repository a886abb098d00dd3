package nav

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files (keyed by slash-relative path) under a temp root.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func defaultEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(Options{})
	require.NoError(t, err)
	return e
}

func TestListFiles_MissingRoot(t *testing.T) {
	t.Parallel()

	e := defaultEngine(t)
	_, err := e.ListFiles(filepath.Join(t.TempDir(), "nope"), "", 100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFiles_RootIsFile(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{"a.txt": "hi"})
	e := defaultEngine(t)
	_, err := e.ListFiles(filepath.Join(root, "a.txt"), "", 100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFiles_StatErrorIsNotNotFound(t *testing.T) {
	t.Parallel()

	// A path routed through a regular file fails stat with ENOTDIR, which
	// is an I/O failure, not an absent root: it surfaces as-is.
	root := writeTree(t, map[string]string{"a.txt": "x"})
	e := defaultEngine(t)

	_, err := e.ListFiles(filepath.Join(root, "a.txt", "sub"), "", 100)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestListFiles_ExcludesArtifactDirs(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"src/main.cs":         "class Program {}",
		"src/util.cs":         "class Util {}",
		".git/config":         "[core]",
		"bin/Debug/app.dll":   "binary",
		"obj/Debug/app.pdb":   "binary",
		"node_modules/x/i.js": "x",
	})

	e := defaultEngine(t)
	files, err := e.ListFiles(root, "", 100)
	require.NoError(t, err)
	require.Len(t, files, 2)
	for _, f := range files {
		assert.NotContains(t, f, ".git")
		assert.NotContains(t, f, "bin")
		assert.NotContains(t, f, "obj")
		assert.NotContains(t, f, "node_modules")
	}
}

func TestListFiles_ExtensionFilterCaseInsensitive(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"a.cs":  "x",
		"b.CS":  "x",
		"c.go":  "x",
		"d.txt": "x",
	})

	e := defaultEngine(t)

	tests := []struct {
		filter string
		want   int
	}{
		{"cs", 2},
		{".cs", 2},
		{"CS", 2},
		{"go", 1},
		{"", 4},
		{"  ", 4},
	}
	for _, tt := range tests {
		files, err := e.ListFiles(root, tt.filter, 100)
		require.NoError(t, err)
		assert.Len(t, files, tt.want, "filter %q", tt.filter)
	}
}

func TestListFiles_LimitShortCircuits(t *testing.T) {
	t.Parallel()

	files := make(map[string]string)
	for i := 0; i < 30; i++ {
		files[filepath.Join("pkg", string(rune('a'+i%26))+strings.Repeat("x", i)+".go")] = "x"
	}
	root := writeTree(t, files)

	e := defaultEngine(t)
	got, err := e.ListFiles(root, "", 5)
	require.NoError(t, err)
	assert.Len(t, got, 5)

	// Out-of-range limits clamp instead of failing.
	got, err = e.ListFiles(root, "", 0)
	require.NoError(t, err)
	assert.Len(t, got, MinListLimit)
}

func TestListFiles_IgnoreGlobs(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"src/a.go":          "x",
		"src/a_test.go":     "x",
		"vendor/dep/b.go":   "x",
	})

	e, err := New(Options{IgnorePatterns: []string{"**_test.go", "vendor/**"}})
	require.NoError(t, err)

	files, err := e.ListFiles(root, "", 100)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.True(t, strings.HasSuffix(files[0], "a.go"))
}

func TestNew_BadIgnorePattern(t *testing.T) {
	t.Parallel()

	_, err := New(Options{IgnorePatterns: []string{"[unclosed"}})
	assert.Error(t, err)
}
