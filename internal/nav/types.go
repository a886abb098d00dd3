// Package nav implements the source-navigation engine: directory cataloging,
// line-oriented snippet search, bounded line reads, and delimiter-balance
// block extraction. Every operation re-scans the file system on each call;
// nothing is cached or shared between invocations, so an Engine is safe for
// concurrent use.
package nav

// SearchMatch is a single matching line produced by FindInFile or
// ProjectSearch. File is empty for single-file searches. Line is 1-indexed.
type SearchMatch struct {
	File    string `json:"file,omitempty"`
	Line    int    `json:"line"`
	Snippet string `json:"snippet"`
}

// ExtractedBlock is the result of ExtractMember. StartLine and EndLine are
// 1-indexed and inclusive. When Truncated is true the extraction stopped at
// the line budget (or end of file) before the delimiter depth returned to
// zero, and Code is a prefix of the construct rather than the whole thing.
type ExtractedBlock struct {
	Path      string `json:"path"`
	Name      string `json:"name"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
	Truncated bool   `json:"truncated"`
	Code      string `json:"code"`
}
