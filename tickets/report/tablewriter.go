/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// summaryWidth keeps summaries readable in an 80 column terminal.
const summaryWidth = 80

// summaryTable returns a markdown table for the run summary: a left-aligned
// label column followed by right-aligned count and score columns. Headers are
// printed as given and cells never wrap, so the output pastes cleanly into an
// issue or chat.
func summaryTable(w io.Writer, label string, values ...string) *tablewriter.Table {
	align := tw.CellAlignment{
		Global:    tw.AlignRight,
		PerColumn: make([]tw.Align, 1+len(values)),
	}
	align.PerColumn[0] = tw.AlignLeft
	for i := range values {
		align.PerColumn[i+1] = tw.AlignRight
	}

	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Alignment:  align,
				Formatting: tw.CellFormatting{AutoFormat: tw.Off},
			},
			Row:      tw.CellConfig{Alignment: align},
			MaxWidth: summaryWidth,
		}),
		tablewriter.WithHeader(append([]string{label}, values...)),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{Left: tw.On, Right: tw.On, Top: tw.Off, Bottom: tw.Off},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}
