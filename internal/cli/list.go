package cli

import (
	"github.com/spf13/cobra"

	"github.com/mvp-joe/spelunk/internal/nav"
)

var (
	listExtension string
	listLimit     int
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list <root>",
	Short: "List files under a directory tree",
	Long: `Recursively list files under a directory, skipping build and VCS artifact
directories. Out-of-range limits are clamped, not rejected.

Example:
  spelunk list ./src --ext cs --limit 100`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listExtension, "ext", "", "only include files with this extension (case-insensitive)")
	listCmd.Flags().IntVar(&listLimit, "limit", nav.DefaultListLimit, "maximum number of files to return")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	files, err := engine.ListFiles(args[0], listExtension, listLimit)
	if err != nil {
		return err
	}

	return printJSON(map[string]interface{}{
		"files": files,
		"total": len(files),
	})
}
