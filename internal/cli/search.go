package cli

import (
	"github.com/spf13/cobra"

	"github.com/mvp-joe/spelunk/internal/nav"
)

var (
	searchRoot         string
	searchFile         string
	searchLimit        int
	searchExtension    string
	searchSnippetChars int
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search files for a case-insensitive substring",
	Long: `Search a single file (--file) or a whole directory tree (--root) for a
case-insensitive substring. Matches carry 1-indexed line numbers and trimmed,
length-capped snippets. Scanning stops the instant the match cap is reached,
so a full result list does not prove there are no further matches.

Examples:
  spelunk search "TODO" --root ./src --ext go
  spelunk search "connect" --file internal/db/pool.go`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchRoot, "root", ".", "directory tree to search")
	searchCmd.Flags().StringVar(&searchFile, "file", "", "search a single file instead of a tree")
	searchCmd.Flags().IntVar(&searchLimit, "limit", nav.DefaultMatches, "maximum number of matches")
	searchCmd.Flags().StringVar(&searchExtension, "ext", "", "only search files with this extension (tree mode)")
	searchCmd.Flags().IntVar(&searchSnippetChars, "snippet-chars", nav.DefaultSnippetChars, "snippet length cap in characters")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	var matches []nav.SearchMatch
	if searchFile != "" {
		matches, err = engine.FindInFile(searchFile, args[0], searchLimit, searchSnippetChars)
	} else {
		matches, err = engine.ProjectSearch(searchRoot, args[0], searchLimit, searchExtension, searchSnippetChars)
	}
	if err != nil {
		return err
	}

	return printJSON(map[string]interface{}{
		"matches": matches,
		"total":   len(matches),
	})
}
