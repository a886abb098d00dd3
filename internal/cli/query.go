package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/spelunk/internal/query"
)

var queryDatabase string

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query <sql>",
	Short: "Run a read-only SQL query against the statistics database",
	Long: `Execute a single SELECT (or WITH) statement against the configured SQLite
database. Mutating statements are rejected. The database path comes from
query.database in .spelunk/config.yml or the --db flag.

Example:
  spelunk query "SELECT file_path, line_count FROM files ORDER BY line_count DESC" --db stats.db`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryDatabase, "db", "", "path to the SQLite database (overrides config)")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	dbPath := queryDatabase
	if dbPath == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dbPath = cfg.Query.Database
	}
	if dbPath == "" {
		return fmt.Errorf("no database configured: set query.database or pass --db")
	}

	db, err := query.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	result, err := query.NewExecutor(db).Query(args[0])
	if err != nil {
		return err
	}
	return printJSON(result)
}
