package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mvp-joe/spelunk/internal/nav"
)

// listResponse is the wire shape of a spelunk_list_files result.
type listResponse struct {
	Files []string `json:"files"`
	Total int      `json:"total"`
}

// AddListFilesTool registers the spelunk_list_files tool with an MCP server.
// This function is composable - it can be combined with other tool
// registrations.
func AddListFilesTool(s *server.MCPServer, engine *nav.Engine) {
	tool := mcp.NewTool(
		"spelunk_list_files",
		mcp.WithDescription(`List files under a directory tree, recursively.

Build and VCS artifact directories (.git, bin, obj, node_modules, ...) are always excluded. Enumeration stops at the limit, so a full result list may mean more files exist. Walk ordering is platform-dependent.`),
		mcp.WithString("root",
			mcp.Required(),
			mcp.Description("Directory to enumerate")),
		mcp.WithString("extension",
			mcp.Description("Only include files with this extension, case-insensitive (e.g. 'cs' or '.cs'). Empty includes all files.")),
		mcp.WithNumber("limit",
			mcp.Description(fmt.Sprintf("Maximum number of files to return (%d-%d, default: %d)", nav.MinListLimit, nav.MaxListLimit, nav.DefaultListLimit))),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createListFilesHandler(engine))
}

func createListFilesHandler(engine *nav.Engine) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}

		root, err := parseStringArg(argsMap, "root", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		extension, _ := parseStringArg(argsMap, "extension", false)
		limit := parseClampedInt(argsMap, "limit", nav.DefaultListLimit, nav.MinListLimit, nav.MaxListLimit)

		files, err := engine.ListFiles(root, extension, limit)
		if err != nil {
			return toolError(err)
		}

		return marshalToolResponse(&listResponse{Files: files, Total: len(files)})
	}
}
