/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"fmt"
	"io"
	"strconv"

	"chainguard.dev/ticketeval/tickets/evaluator"
)

// Score bounds the judge is asked to use.
const (
	MinScore = 1
	MaxScore = 5
)

// Summary aggregates the evaluations of one batch run.
type Summary struct {
	Rows      int
	Evaluated int
	Missing   int
	Errors    int

	Content Distribution
	Format  Distribution
}

// Distribution tallies one score dimension.
type Distribution struct {
	// Counts[i] is the number of rows scored i+MinScore.
	Counts [MaxScore - MinScore + 1]int
	// OutOfRange counts scores outside MinScore..MaxScore.
	OutOfRange int

	sum int
	n   int
}

func (d *Distribution) add(score *int) {
	if score == nil {
		return
	}
	d.sum += *score
	d.n++
	if *score < MinScore || *score > MaxScore {
		d.OutOfRange++
		return
	}
	d.Counts[*score-MinScore]++
}

// Average returns the mean of all recorded scores, and false when none were.
func (d Distribution) Average() (float64, bool) {
	if d.n == 0 {
		return 0, false
	}
	return float64(d.sum) / float64(d.n), true
}

// Summarize tallies evaluations by outcome and score.
func Summarize(evals []evaluator.Evaluation) *Summary {
	s := &Summary{Rows: len(evals)}
	for _, e := range evals {
		switch {
		case e.IsMissingData():
			s.Missing++
		case e.IsError():
			s.Errors++
		default:
			s.Evaluated++
			s.Content.add(e.ContentScore)
			s.Format.add(e.FormatScore)
		}
	}
	return s
}

// Render writes the overview and score histogram tables to w.
func (s *Summary) Render(w io.Writer) error {
	overview := summaryTable(w, "Metric", "Value")
	for _, row := range [][]string{
		{"Rows", strconv.Itoa(s.Rows)},
		{"Evaluated", strconv.Itoa(s.Evaluated)},
		{"Missing data", strconv.Itoa(s.Missing)},
		{"Errors", strconv.Itoa(s.Errors)},
		{"Average content score", formatAverage(s.Content)},
		{"Average format score", formatAverage(s.Format)},
	} {
		if err := overview.Append(row); err != nil {
			return err
		}
	}
	if err := overview.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	histogram := summaryTable(w, "Score", "Content", "Format")
	for i := range s.Content.Counts {
		row := []string{
			strconv.Itoa(i + MinScore),
			strconv.Itoa(s.Content.Counts[i]),
			strconv.Itoa(s.Format.Counts[i]),
		}
		if err := histogram.Append(row); err != nil {
			return err
		}
	}
	if s.Content.OutOfRange > 0 || s.Format.OutOfRange > 0 {
		row := []string{"other", strconv.Itoa(s.Content.OutOfRange), strconv.Itoa(s.Format.OutOfRange)}
		if err := histogram.Append(row); err != nil {
			return err
		}
	}
	return histogram.Render()
}

func formatAverage(d Distribution) string {
	avg, ok := d.Average()
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", avg)
}
