/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package table_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chainguard.dev/ticketeval/tickets/table"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *table.Table
	}{{
		name:  "simple",
		input: "ticket,reply\nhello,hi\n",
		want: &table.Table{
			Header: []string{"ticket", "reply"},
			Rows:   [][]string{{"hello", "hi"}},
		},
	}, {
		name:  "byte order mark",
		input: "\xEF\xBB\xBFticket,reply\na,b\n",
		want: &table.Table{
			Header: []string{"ticket", "reply"},
			Rows:   [][]string{{"a", "b"}},
		},
	}, {
		name:  "quoted multiline",
		input: "id,ticket,reply\n1,\"line one\nline two\",\"says \"\"hi\"\"\"\n",
		want: &table.Table{
			Header: []string{"id", "ticket", "reply"},
			Rows:   [][]string{{"1", "line one\nline two", `says "hi"`}},
		},
	}, {
		name:  "stray quotes in unquoted cells",
		input: "ticket,reply\nMy \"order\" is late,Sorry\nWhere is it?,It's 5\" wide\n",
		want: &table.Table{
			Header: []string{"ticket", "reply"},
			Rows: [][]string{
				{`My "order" is late`, "Sorry"},
				{"Where is it?", `It's 5" wide`},
			},
		},
	}, {
		name:  "short row",
		input: "ticket,reply\nonly ticket\n",
		want: &table.Table{
			Header: []string{"ticket", "reply"},
			Rows:   [][]string{{"only ticket"}},
		},
	}, {
		name:  "header only",
		input: "ticket,reply\n",
		want: &table.Table{
			Header: []string{"ticket", "reply"},
		},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Read(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Read() = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Read() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadMalformed(t *testing.T) {
	for name, input := range map[string]string{
		"empty":    "",
		"long row": "ticket,reply\na,b,c\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := table.Read(strings.NewReader(input))
			if !errors.Is(err, table.ErrMalformed) {
				t.Errorf("Read() = %v, wanted %v", err, table.ErrMalformed)
			}
		})
	}
}

func TestReadFileNotExist(t *testing.T) {
	_, err := table.ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile() = %v, wanted %v", err, fs.ErrNotExist)
	}
}

func TestRequire(t *testing.T) {
	tbl := &table.Table{Header: []string{"ticket", "notes"}}

	if err := tbl.Require("ticket"); err != nil {
		t.Errorf("Require(ticket) = %v", err)
	}
	err := tbl.Require("ticket", "reply")
	if !errors.Is(err, table.ErrMissingColumn) {
		t.Fatalf("Require(ticket, reply) = %v, wanted %v", err, table.ErrMissingColumn)
	}
	if !strings.Contains(err.Error(), "reply") {
		t.Errorf("error: got = %q, wanted it to name reply", err)
	}
}

func TestIsMissing(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"NA", true},
		{"NaN", true},
		{"nan", true},
		{"null", true},
		{"NULL", true},
		{"None", true},
		{"#N/A", true},
		{"<NA>", true},
		{"n/a", true},
		{"My order is late", false},
		{"0", false},
		{"none", false},
		{" NA ", false},
		{"Na", false},
	}
	for _, tt := range tests {
		if got := table.IsMissing(tt.value); got != tt.want {
			t.Errorf("IsMissing(%q): got = %v, wanted = %v", tt.value, got, tt.want)
		}
	}
}

func TestCell(t *testing.T) {
	tbl := &table.Table{
		Header: []string{"ticket", "reply"},
		Rows:   [][]string{{"hello", "NaN"}, {"short"}},
	}

	tests := []struct {
		row, col  int
		wantValue string
		wantOK    bool
	}{
		{0, 0, "hello", true},
		{0, 1, "NaN", false},
		{1, 0, "short", true},
		{1, 1, "", false},
	}
	for _, tt := range tests {
		got, ok := tbl.Cell(tt.row, tt.col)
		if got != tt.wantValue || ok != tt.wantOK {
			t.Errorf("Cell(%d, %d): got = (%q, %v), wanted = (%q, %v)",
				tt.row, tt.col, got, ok, tt.wantValue, tt.wantOK)
		}
	}

	if diff := cmp.Diff([]string{"short", ""}, tbl.Row(1)); diff != "" {
		t.Errorf("Row(1) mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	tbl := &table.Table{
		Header: []string{"ticket", "reply", "content_score"},
		Rows: [][]string{
			{"a, with comma", "line\nbreak", "5"},
			{"short"},
		},
	}
	require.NoError(t, tbl.WriteFile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "ticket,reply,content_score\n\"a, with comma\",\"line\nbreak\",5\nshort,,\n"
	if got := string(raw); got != want {
		t.Errorf("file: got = %q, wanted = %q", got, want)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	if len(entries) != 1 {
		t.Errorf("dir entries: got = %d, wanted = 1 (temp file left behind?)", len(entries))
	}

	back, err := table.ReadFile(path)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"short", "", ""}, back.Rows[1]); diff != "" {
		t.Errorf("re-read row mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteFileMissingDir(t *testing.T) {
	tbl := &table.Table{Header: []string{"a"}}
	if err := tbl.WriteFile(filepath.Join(t.TempDir(), "missing", "out.csv")); err == nil {
		t.Error("WriteFile() = nil, wanted error")
	}
}
