package mcp

import (
	"context"
	"database/sql"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mvp-joe/spelunk/internal/query"
)

// AddQueryTool registers the spelunk_query tool with an MCP server. The tool
// runs read-only SQL against the configured statistics database and returns
// rows as column/value pairs in SELECT order. Registered only when a
// database is configured.
func AddQueryTool(s *server.MCPServer, db *sql.DB) {
	tool := mcp.NewTool(
		"spelunk_query",
		mcp.WithDescription(`Run a read-only SQL query against the code statistics database. Only single SELECT (or WITH) statements are accepted; anything mutating is rejected.

Example queries:
- SELECT file_path, line_count FROM files WHERE language = 'Go' ORDER BY line_count DESC
- SELECT language, COUNT(*) AS n FROM files GROUP BY language`),
		mcp.WithString("sql",
			mcp.Required(),
			mcp.Description("The SELECT statement to execute")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createQueryHandler(db))
}

func createQueryHandler(db *sql.DB) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}

		q, err := parseStringArg(argsMap, "sql", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		result, err := query.NewExecutor(db).Query(q)
		if err != nil {
			return toolError(err)
		}

		return marshalToolResponse(result)
	}
}
