package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mvp-joe/spelunk/internal/nav"
)

// readResponse is the wire shape of a spelunk_read_lines result.
type readResponse struct {
	Path      string   `json:"path"`
	StartLine int      `json:"start_line"`
	EndLine   int      `json:"end_line"`
	Lines     []string `json:"lines"`
}

// AddReadLinesTool registers the spelunk_read_lines tool with an MCP server.
func AddReadLinesTool(s *server.MCPServer, engine *nav.Engine) {
	tool := mcp.NewTool(
		"spelunk_read_lines",
		mcp.WithDescription(`Read a bounded range of lines from a file. Bounds are 1-indexed, inclusive, and clamped to the file; a range entirely outside the file returns no lines rather than an error. Omit start_line/end_line to read from the beginning/to the end.`),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("File to read")),
		mcp.WithNumber("start_line",
			mcp.Description("First line to return, 1-indexed (default: 1)")),
		mcp.WithNumber("end_line",
			mcp.Description("Last line to return, inclusive (default: end of file)")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createReadLinesHandler(engine))
}

func createReadLinesHandler(engine *nav.Engine) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}

		path, err := parseStringArg(argsMap, "path", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		start := parseIntArg(argsMap, "start_line", 0)
		end := parseIntArg(argsMap, "end_line", 0)

		lines, err := engine.ReadLines(path, start, end)
		if err != nil {
			return toolError(err)
		}

		resp := &readResponse{Path: path, Lines: lines}
		if len(lines) > 0 {
			if start < 1 {
				start = 1
			}
			resp.StartLine = start
			resp.EndLine = start + len(lines) - 1
		}
		return marshalToolResponse(resp)
	}
}
