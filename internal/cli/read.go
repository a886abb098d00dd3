package cli

import (
	"github.com/spf13/cobra"
)

var (
	readStart int
	readEnd   int
)

// readCmd represents the read command
var readCmd = &cobra.Command{
	Use:   "read <path>",
	Short: "Read a bounded range of lines from a file",
	Long: `Read lines start through end (1-indexed, inclusive), clamped to the file's
bounds. A range entirely outside the file yields no lines, not an error.

Example:
  spelunk read internal/nav/search.go --start 40 --end 80`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func init() {
	readCmd.Flags().IntVar(&readStart, "start", 0, "first line to read (default: 1)")
	readCmd.Flags().IntVar(&readEnd, "end", 0, "last line to read (default: end of file)")
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	lines, err := engine.ReadLines(args[0], readStart, readEnd)
	if err != nil {
		return err
	}

	return printJSON(map[string]interface{}{
		"path":  args[0],
		"lines": lines,
		"total": len(lines),
	})
}
