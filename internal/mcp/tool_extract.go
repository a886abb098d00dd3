package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mvp-joe/spelunk/internal/nav"
)

// AddExtractTool registers the spelunk_extract tool with an MCP server.
func AddExtractTool(s *server.MCPServer, engine *nav.Engine) {
	tool := mcp.NewTool(
		"spelunk_extract",
		mcp.WithDescription(`Extract a named construct (function, class, type) from a source file by delimiter-balance matching.

Finds the first line declaring the name ("name(" or "keyword name" shapes), then tracks nested {} depth to the matching close. No string/comment awareness: delimiters inside literals corrupt the count. When truncated is true the code is a prefix of the construct, cut at the max_lines budget.`),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Source file to extract from")),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the construct to extract")),
		mcp.WithNumber("max_lines",
			mcp.Description(fmt.Sprintf("Line budget counted from the declaration line (%d-%d, default: %d)", nav.MinBlockLines, nav.MaxBlockLines, nav.DefaultBlockLines))),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createExtractHandler(engine))
}

func createExtractHandler(engine *nav.Engine) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}

		path, err := parseStringArg(argsMap, "path", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		name, err := parseStringArg(argsMap, "name", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		maxLines := parseClampedInt(argsMap, "max_lines", nav.DefaultBlockLines, nav.MinBlockLines, nav.MaxBlockLines)

		block, err := engine.ExtractMember(path, name, maxLines)
		if err != nil {
			return toolError(err)
		}

		return marshalToolResponse(block)
	}
}
