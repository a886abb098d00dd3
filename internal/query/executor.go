package query

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Executor runs validated read-only queries against a SQLite database.
type Executor struct {
	db *sql.DB
}

// NewExecutor creates an Executor over the provided database connection.
// The connection is not owned by the executor and will not be closed.
func NewExecutor(db *sql.DB) *Executor {
	return &Executor{db: db}
}

// Open opens the SQLite database at path read-only.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	return db, nil
}

// Result is the structured outcome of a query: column names in SELECT order
// and rows as value slices aligned with Columns, preserving the field
// ordering of the statement.
type Result struct {
	Columns  []string        `json:"columns"`
	Rows     [][]interface{} `json:"rows"`
	RowCount int             `json:"row_count"`
	Metadata Metadata        `json:"metadata"`
}

// Metadata contains execution metadata for a query result.
type Metadata struct {
	TookMs int64  `json:"took_ms"`
	Query  string `json:"query"`
}

// Query validates q against the read-only policy and executes it, returning
// all rows. Validation failures come back wrapping ErrRejectedQuery.
func (e *Executor) Query(q string) (*Result, error) {
	if err := Validate(q); err != nil {
		return nil, err
	}

	start := time.Now()

	rows, err := e.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("query execution failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get column names: %w", err)
	}

	rowData := make([][]interface{}, 0)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		// SQLite TEXT columns scan as []byte; convert for JSON.
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		rowData = append(rowData, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return &Result{
		Columns:  columns,
		Rows:     rowData,
		RowCount: len(rowData),
		Metadata: Metadata{
			TookMs: time.Since(start).Milliseconds(),
			Query:  q,
		},
	}, nil
}
