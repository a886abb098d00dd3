package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/spelunk/internal/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for source navigation",
	Long: `Start the Model Context Protocol (MCP) server that exposes the navigation
tools to LLM-powered coding assistants.

The MCP server:
- Lists, searches, reads, and extracts from source files on demand
- Re-scans the file system on every call (no index, no cache)
- Communicates via stdio (standard MCP transport)

Example:
  spelunk mcp`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Spelunk MCP Server\n")
	if verbose {
		fmt.Fprintf(os.Stderr, "Excluded directories: %v\n", cfg.Nav.Exclude)
		if cfg.Query.Database != "" {
			fmt.Fprintf(os.Stderr, "Query database: %s\n", cfg.Query.Database)
		}
	}

	server, err := mcp.NewServer(cfg)
	if err != nil {
		return err
	}
	defer server.Close()

	return server.Serve(context.Background())
}
