package nav

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Options configures an Engine. Zero-value fields fall back to the defaults
// below, so Engine{} and New(Options{}) both behave sensibly.
type Options struct {
	// ExcludeDirs are directory names skipped entirely during tree walks
	// (build output, VCS metadata). Matched against the path segment, not
	// the full path.
	ExcludeDirs []string

	// IgnorePatterns are glob patterns matched against the root-relative
	// slash path of each candidate file.
	IgnorePatterns []string

	// DeclKeywords is the construct-keyword vocabulary for declaration
	// matching: a line declares `name` when it contains "<keyword> <name>"
	// for any keyword here, or "<name>(" directly.
	DeclKeywords []string

	// OpenDelim and CloseDelim are the block delimiter pair tracked by the
	// depth-balance walk.
	OpenDelim  rune
	CloseDelim rune

	// DelimWindow is how many lines past the declaration to scan for the
	// opening delimiter before declaring the body not found.
	DelimWindow int
}

// DefaultExcludeDirs is the standard denylist of build and VCS artifact
// directories.
var DefaultExcludeDirs = []string{".git", ".svn", ".hg", "bin", "obj", "node_modules"}

// DefaultDeclKeywords covers the common `keyword name { ... }` declaration
// shapes across curly-brace languages.
var DefaultDeclKeywords = []string{"class", "struct", "interface", "record", "enum", "trait", "type"}

// DefaultDelimWindow is the opening-delimiter scan window in lines.
const DefaultDelimWindow = 50

type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Engine is the stateless navigation engine. It holds only configuration;
// every call re-reads the file system, so a single Engine may be shared
// across goroutines.
type Engine struct {
	excludeDirs map[string]bool
	ignore      []compiledPattern
	keywords    []string
	open        rune
	close       rune
	delimWindow int
}

// New builds an Engine from opts, compiling ignore globs up front.
// Returns an error if any ignore pattern fails to compile.
func New(opts Options) (*Engine, error) {
	dirs := opts.ExcludeDirs
	if dirs == nil {
		dirs = DefaultExcludeDirs
	}
	excluded := make(map[string]bool, len(dirs))
	for _, d := range dirs {
		excluded[d] = true
	}

	var ignore []compiledPattern
	for _, pattern := range opts.IgnorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("ignore pattern %q: %w", pattern, err)
		}
		ignore = append(ignore, compiledPattern{pattern: pattern, glob: g})
	}

	keywords := opts.DeclKeywords
	if keywords == nil {
		keywords = DefaultDeclKeywords
	}

	open, close := opts.OpenDelim, opts.CloseDelim
	if open == 0 {
		open = '{'
	}
	if close == 0 {
		close = '}'
	}

	window := opts.DelimWindow
	if window <= 0 {
		window = DefaultDelimWindow
	}

	return &Engine{
		excludeDirs: excluded,
		ignore:      ignore,
		keywords:    keywords,
		open:        open,
		close:       close,
		delimWindow: window,
	}, nil
}
