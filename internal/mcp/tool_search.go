package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mvp-joe/spelunk/internal/nav"
)

// searchResponse is the wire shape of spelunk_find_in_file and
// spelunk_search results.
type searchResponse struct {
	Matches []nav.SearchMatch `json:"matches"`
	Total   int               `json:"total"`
}

// AddFindInFileTool registers the spelunk_find_in_file tool with an MCP
// server.
func AddFindInFileTool(s *server.MCPServer, engine *nav.Engine) {
	tool := mcp.NewTool(
		"spelunk_find_in_file",
		mcp.WithDescription(`Search a single file for a case-insensitive substring. Returns 1-indexed line numbers with trimmed, length-capped snippets.

Scanning stops as soon as max_matches is reached, so a full result list does not prove there are no further matches.`),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("File to search")),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Substring to search for (case-insensitive)")),
		mcp.WithNumber("max_matches",
			mcp.Description(fmt.Sprintf("Maximum matches to return (%d-%d, default: %d)", nav.MinMatches, nav.MaxMatches, nav.DefaultMatches))),
		mcp.WithNumber("snippet_chars",
			mcp.Description(fmt.Sprintf("Snippet length cap in characters (%d-%d, default: %d)", nav.MinSnippetChars, nav.MaxSnippetChars, nav.DefaultSnippetChars))),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createFindInFileHandler(engine))
}

func createFindInFileHandler(engine *nav.Engine) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}

		path, err := parseStringArg(argsMap, "path", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		q, err := parseStringArg(argsMap, "query", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		maxMatches := parseClampedInt(argsMap, "max_matches", nav.DefaultMatches, nav.MinMatches, nav.MaxMatches)
		snippetChars := parseClampedInt(argsMap, "snippet_chars", nav.DefaultSnippetChars, nav.MinSnippetChars, nav.MaxSnippetChars)

		matches, err := engine.FindInFile(path, q, maxMatches, snippetChars)
		if err != nil {
			return toolError(err)
		}

		return marshalToolResponse(&searchResponse{Matches: matches, Total: len(matches)})
	}
}

// AddProjectSearchTool registers the spelunk_search tool with an MCP server.
func AddProjectSearchTool(s *server.MCPServer, engine *nav.Engine) {
	tool := mcp.NewTool(
		"spelunk_search",
		mcp.WithDescription(`Search every file under a directory tree for a case-insensitive substring. Returns file paths, 1-indexed line numbers, and trimmed snippets.

Excluded directories are never searched. Unreadable files are skipped silently. Scanning stops mid-tree the instant the limit is reached.`),
		mcp.WithString("root",
			mcp.Required(),
			mcp.Description("Directory tree to search")),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Substring to search for (case-insensitive)")),
		mcp.WithNumber("limit",
			mcp.Description(fmt.Sprintf("Maximum matches across the whole tree (%d-%d, default: %d)", nav.MinMatches, nav.MaxMatches, nav.DefaultMatches))),
		mcp.WithString("extension",
			mcp.Description("Only search files with this extension, case-insensitive. Empty searches all files.")),
		mcp.WithNumber("snippet_chars",
			mcp.Description(fmt.Sprintf("Snippet length cap in characters (%d-%d, default: %d)", nav.MinSnippetChars, nav.MaxSnippetChars, nav.DefaultSnippetChars))),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createProjectSearchHandler(engine))
}

func createProjectSearchHandler(engine *nav.Engine) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}

		root, err := parseStringArg(argsMap, "root", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		q, err := parseStringArg(argsMap, "query", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		limit := parseClampedInt(argsMap, "limit", nav.DefaultMatches, nav.MinMatches, nav.MaxMatches)
		extension, _ := parseStringArg(argsMap, "extension", false)
		snippetChars := parseClampedInt(argsMap, "snippet_chars", nav.DefaultSnippetChars, nav.MinSnippetChars, nav.MaxSnippetChars)

		matches, err := engine.ProjectSearch(root, q, limit, extension, snippetChars)
		if err != nil {
			return toolError(err)
		}

		return marshalToolResponse(&searchResponse{Matches: matches, Total: len(matches)})
	}
}
