// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2" // registers the "duckdb" database/sql driver

	"github.com/tomtom215/steamlens/internal/logging"
)

// DuckDBOptions tunes the in-memory DuckDB instance used for reading.
type DuckDBOptions struct {
	// MaxMemory caps DuckDB memory, e.g. "1GB". Empty leaves DuckDB's default.
	MaxMemory string

	// Threads is the DuckDB worker count. 0 uses runtime.NumCPU().
	Threads int
}

// DuckDBLoader scans the CSV file with DuckDB's read_csv table function.
// Every column is read as VARCHAR so that parsing rules match CSVLoader exactly.
type DuckDBLoader struct {
	opts DuckDBOptions
}

// NewDuckDBLoader creates a DuckDB-backed loader.
func NewDuckDBLoader(opts DuckDBOptions) *DuckDBLoader {
	return &DuckDBLoader{opts: opts}
}

// dsn builds the connection string for a transient in-memory database.
func (l *DuckDBLoader) dsn() string {
	threads := l.opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	params := []string{
		"access_mode=read_write",
		fmt.Sprintf("threads=%d", threads),
	}
	if l.opts.MaxMemory != "" {
		params = append(params, "max_memory="+l.opts.MaxMemory)
	}
	return "?" + strings.Join(params, "&")
}

// Load implements Loader.
func (l *DuckDBLoader) Load(ctx context.Context, path string) ([]Record, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat dataset %s: %w", path, err)
	}

	conn, err := sql.Open("duckdb", l.dsn())
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("Failed to close duckdb connection")
		}
	}()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("failed to ping duckdb: %w", err)
	}

	source := readCSVExpr(path)
	idx, err := describeColumns(ctx, conn, source)
	if err != nil {
		return nil, err
	}
	if missing := missingColumns(idx); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	return queryRecords(ctx, conn, source)
}

// readCSVExpr returns the read_csv call for path. Table functions do not take
// bind parameters for the file name, so the path is quoted as a SQL literal.
func readCSVExpr(path string) string {
	quoted := "'" + strings.ReplaceAll(path, "'", "''") + "'"
	return fmt.Sprintf("read_csv(%s, header = true, all_varchar = true)", quoted)
}

// describeColumns returns the lowercased column names exposed by source.
func describeColumns(ctx context.Context, conn *sql.DB, source string) (map[string]int, error) {
	rows, err := conn.QueryContext(ctx, "DESCRIBE SELECT * FROM "+source)
	if err != nil {
		return nil, fmt.Errorf("failed to describe dataset: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read describe columns: %w", err)
	}

	var header []string
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		dest := make([]interface{}, len(cols))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan describe row: %w", err)
		}
		// column_name is the first DESCRIBE column
		header = append(header, values[0].String)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate describe rows: %w", err)
	}
	return buildColumnIndex(header), nil
}

// quoteIdent quotes a column identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func queryRecords(ctx context.Context, conn *sql.DB, source string) ([]Record, error) {
	// DuckDB resolves identifiers case-insensitively, so mixed-case headers still match.
	selects := make([]string, len(RequiredColumns))
	for i, col := range RequiredColumns {
		selects[i] = quoteIdent(col)
	}

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(selects, ", "), source)
	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset: %w", err)
	}
	defer rows.Close()

	position := make(map[string]int, len(RequiredColumns))
	for i, col := range RequiredColumns {
		position[col] = i
	}

	var records []Record
	values := make([]sql.NullString, len(RequiredColumns))
	dest := make([]interface{}, len(RequiredColumns))
	for i := range values {
		dest[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan dataset row: %w", err)
		}
		records = append(records, parseRecord(func(col string) string {
			v := values[position[col]]
			if !v.Valid {
				return ""
			}
			return v.String
		}))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dataset rows: %w", err)
	}
	return records, nil
}
