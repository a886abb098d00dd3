package cli

import (
	"github.com/spf13/cobra"

	"github.com/mvp-joe/spelunk/internal/nav"
)

var extractMaxLines int

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <path> <name>",
	Short: "Extract a named construct from a source file",
	Long: `Extract a function, class, or type definition by name. The declaration is
found textually ("name(" or "keyword name" shapes) and the block end by
tracking nested delimiter depth - no parser, no string/comment awareness.

A truncated result means the line budget (or end of file) was hit before the
block closed; the returned code is then a prefix of the construct.

Example:
  spelunk extract src/widget.cs Widget --max-lines 300`,
	Args: cobra.ExactArgs(2),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVar(&extractMaxLines, "max-lines", nav.DefaultBlockLines, "line budget counted from the declaration line")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	block, err := engine.ExtractMember(args[0], args[1], extractMaxLines)
	if err != nil {
		return err
	}
	return printJSON(block)
}
