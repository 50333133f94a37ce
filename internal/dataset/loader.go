// Steamlens - Storefront Listing Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/tomtom215/steamlens/internal/logging"
	"github.com/tomtom215/steamlens/internal/metrics"
)

// Reader kinds accepted by NewLoader.
const (
	ReaderCSV    = "csv"
	ReaderDuckDB = "duckdb"
)

// Loader reads the full listing table from a file.
type Loader interface {
	Load(ctx context.Context, path string) ([]Record, error)
}

// NewLoader returns the loader for the given reader kind.
func NewLoader(kind string, opts DuckDBOptions) (Loader, error) {
	switch strings.ToLower(kind) {
	case ReaderCSV, "":
		return &CSVLoader{}, nil
	case ReaderDuckDB:
		return NewDuckDBLoader(opts), nil
	default:
		return nil, fmt.Errorf("unknown dataset reader %q (expected %s or %s)", kind, ReaderCSV, ReaderDuckDB)
	}
}

// LoadFile loads path with loader and records load metrics.
func LoadFile(ctx context.Context, loader Loader, path string) ([]Record, error) {
	start := time.Now()
	records, err := loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	metrics.RecordDatasetLoad(len(records), time.Since(start))
	log := logging.WithComponent("dataset")
	log.Info().
		Str("path", path).
		Int("rows", len(records)).
		Dur("duration", time.Since(start)).
		Msg("Dataset loaded")
	return records, nil
}

// CSVLoader streams the source file with encoding/csv.
type CSVLoader struct{}

// Load implements Loader.
func (l *CSVLoader) Load(ctx context.Context, path string) ([]Record, error) {
	f, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logging.Warn().Err(cerr).Str("path", path).Msg("Failed to close dataset file")
		}
	}()
	return readCSV(ctx, f)
}

// openSource opens path, mapping a missing file to ErrSourceNotFound.
func openSource(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	return f, nil
}

func readCSV(ctx context.Context, r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
		}
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}
	idx := buildColumnIndex(header)
	if missing := missingColumns(idx); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	var records []Record
	for line := 2; ; line++ {
		if line%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset line %d: %w", line, err)
		}
		records = append(records, parseRecord(func(col string) string {
			i := idx[col]
			if i >= len(row) {
				return ""
			}
			return row[i]
		}))
	}
	return records, nil
}
