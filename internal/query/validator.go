// Package query is the read-only data-query collaborator: it validates a
// caller-supplied SQL string against a read-only policy and executes it over
// a SQLite database, returning rows as ordered column/value pairs.
package query

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRejectedQuery indicates a query that failed read-only validation:
// blank, not a SELECT/WITH statement, multiple statements, or containing a
// mutating keyword.
var ErrRejectedQuery = errors.New("rejected query")

// mutation keywords rejected anywhere in the statement, matched as whole
// words case-insensitively.
var forbiddenKeywords = []string{
	"INSERT", "UPDATE", "DELETE", "DROP", "ALTER", "CREATE",
	"REPLACE", "ATTACH", "DETACH", "PRAGMA", "VACUUM", "REINDEX",
}

// Validate checks that q is a single read-only SELECT (or WITH) statement.
// It is a textual policy gate, not a SQL parser: keywords inside string
// literals are rejected too, erring on the side of refusal.
func Validate(q string) error {
	trimmed := strings.TrimSpace(q)
	if trimmed == "" {
		return fmt.Errorf("%w: query is blank", ErrRejectedQuery)
	}

	upper := strings.ToUpper(trimmed)
	if !strings.HasPrefix(upper, "SELECT") && !strings.HasPrefix(upper, "WITH") {
		return fmt.Errorf("%w: only SELECT statements are allowed", ErrRejectedQuery)
	}

	// A single trailing semicolon is tolerated; anything after one is a
	// second statement.
	if i := strings.Index(trimmed, ";"); i >= 0 && strings.TrimSpace(trimmed[i+1:]) != "" {
		return fmt.Errorf("%w: multiple statements are not allowed", ErrRejectedQuery)
	}

	for _, word := range strings.FieldsFunc(upper, isNotWordChar) {
		for _, kw := range forbiddenKeywords {
			if word == kw {
				return fmt.Errorf("%w: keyword %s is not allowed", ErrRejectedQuery, kw)
			}
		}
	}
	return nil
}

func isNotWordChar(r rune) bool {
	return !(r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_')
}
