/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package table

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var (
	// ErrMissingColumn is returned by Require when the header lacks a column.
	ErrMissingColumn = errors.New("missing required column")

	// ErrMalformed is returned for input that is not a well-formed table.
	ErrMalformed = errors.New("malformed table")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// naMarkers are the cell values read as missing, matching the default NA
// markers of common dataframe readers.
var naMarkers = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {},
	"N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {},
	"nan": {}, "null": {},
}

// IsMissing reports whether a present cell value counts as missing.
func IsMissing(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return true
	}
	_, ok := naMarkers[value]
	return ok
}

// Table is a header plus rows of string cells. Rows may be shorter than the
// header; absent trailing cells are missing.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadFile reads a CSV table from path. A nonexistent path yields an error
// satisfying errors.Is(err, fs.ErrNotExist).
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return t, nil
}

// Read parses a CSV table whose first record is the header.
func Read(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return nil, err
		}
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	// Stray quotes in unquoted cells are kept literally.
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no header row", ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	t := &Table{Header: header}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		if len(record) > len(header) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has %d fields, header has %d",
				ErrMalformed, line, len(record), len(header))
		}
		t.Rows = append(t.Rows, record)
	}
	return t, nil
}

// Column returns the index of the first column called name.
func (t *Table) Column(name string) (int, bool) {
	i := slices.Index(t.Header, name)
	return i, i >= 0
}

// Require checks that every named column is in the header.
func (t *Table) Require(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, ok := t.Column(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}

// Cell returns the value at row, col and whether it is present (not missing).
func (t *Table) Cell(row, col int) (string, bool) {
	r := t.Rows[row]
	if col >= len(r) {
		return "", false
	}
	return r[col], !IsMissing(r[col])
}

// Row returns a copy of row i padded to the header width.
func (t *Table) Row(i int) []string {
	out := make([]string, len(t.Header))
	copy(out, t.Rows[i])
	return out
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Write encodes the table as CSV with a header row.
func (t *Table) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	for i := range t.Rows {
		if err := cw.Write(t.Row(i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the table to a temp file beside path and renames it into
// place, so readers never observe a partial file.
func (t *Table) WriteFile(path string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := t.Write(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
