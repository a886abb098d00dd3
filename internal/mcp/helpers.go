// Package mcp exposes the navigation engine and the query collaborator as
// Model Context Protocol tools over stdio.
package mcp

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mvp-joe/spelunk/internal/nav"
	"github.com/mvp-joe/spelunk/internal/query"
)

// parseToolArguments validates and extracts the arguments map from an MCP
// tool request. Returns the arguments map or an error result if validation
// fails.
func parseToolArguments(request mcp.CallToolRequest) (map[string]interface{}, *mcp.CallToolResult) {
	argsMap, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, mcp.NewToolResultError("invalid arguments format")
	}
	return argsMap, nil
}

// marshalToolResponse marshals a response object to JSON and returns it as
// an MCP tool result.
func marshalToolResponse(response interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.Marshal(response)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// toolError maps declared engine failures to tool error results and
// everything else to JSON-RPC errors. Declared failures are expected
// outcomes the calling agent should see as text, not protocol errors.
func toolError(err error) (*mcp.CallToolResult, error) {
	switch {
	case errors.Is(err, nav.ErrNotFound),
		errors.Is(err, nav.ErrInvalidArgument),
		errors.Is(err, nav.ErrNotFoundInFile),
		errors.Is(err, nav.ErrBodyNotFound),
		errors.Is(err, query.ErrRejectedQuery):
		return mcp.NewToolResultError(err.Error()), nil
	default:
		return nil, err
	}
}
