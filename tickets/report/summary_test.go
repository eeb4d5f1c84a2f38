/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"bytes"
	"regexp"
	"testing"

	"chainguard.dev/ticketeval/tickets/evaluator"
	"github.com/google/go-cmp/cmp"
)

func scored(content, format int) evaluator.Evaluation {
	return evaluator.Evaluation{
		ContentScore:       &content,
		ContentExplanation: "c",
		FormatScore:        &format,
		FormatExplanation:  "f",
	}
}

func TestSummarize(t *testing.T) {
	evals := []evaluator.Evaluation{
		scored(5, 4),
		scored(4, 4),
		evaluator.MissingDataEvaluation(),
		evaluator.ErrorEvaluation(),
		scored(7, 3),
		{ContentExplanation: "no score given", FormatExplanation: "none"},
	}

	got := Summarize(evals)
	if got.Rows != 6 || got.Evaluated != 4 || got.Missing != 1 || got.Errors != 1 {
		t.Errorf("counts: got = rows %d evaluated %d missing %d errors %d, wanted = 6 4 1 1",
			got.Rows, got.Evaluated, got.Missing, got.Errors)
	}
	if diff := cmp.Diff([5]int{0, 0, 0, 1, 1}, got.Content.Counts); diff != "" {
		t.Errorf("content counts mismatch (-want +got):\n%s", diff)
	}
	if got.Content.OutOfRange != 1 {
		t.Errorf("content out of range: got = %d, wanted = 1", got.Content.OutOfRange)
	}
	if diff := cmp.Diff([5]int{0, 0, 1, 2, 0}, got.Format.Counts); diff != "" {
		t.Errorf("format counts mismatch (-want +got):\n%s", diff)
	}

	if avg, ok := got.Content.Average(); !ok || avg != 16.0/3 {
		t.Errorf("content average: got = %v (%v), wanted = %v", avg, ok, 16.0/3)
	}
	if avg, ok := got.Format.Average(); !ok || avg != 11.0/3 {
		t.Errorf("format average: got = %v (%v), wanted = %v", avg, ok, 11.0/3)
	}
}

func TestRender(t *testing.T) {
	s := Summarize([]evaluator.Evaluation{scored(5, 4), scored(4, 4), evaluator.ErrorEvaluation()})

	var buf bytes.Buffer
	if err := s.Render(&buf); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	out := buf.String()

	for _, pattern := range []string{
		`\|\s*Metric\s*\|\s*Value\s*\|`,
		`\|\s*Rows\s*\|\s*3\s*\|`,
		`\|\s*Evaluated\s*\|\s*2\s*\|`,
		`\|\s*Errors\s*\|\s*1\s*\|`,
		`\|\s*Average content score\s*\|\s*4\.50\s*\|`,
		`\|\s*Average format score\s*\|\s*4\.00\s*\|`,
		`\|\s*4\s*\|\s*1\s*\|\s*2\s*\|`,
		`\|\s*5\s*\|\s*1\s*\|\s*0\s*\|`,
	} {
		if !regexp.MustCompile(pattern).MatchString(out) {
			t.Errorf("Render(): wanted match for %s, got:\n%s", pattern, out)
		}
	}
	if regexp.MustCompile(`other`).MatchString(out) {
		t.Errorf("Render(): unexpected out-of-range row, got:\n%s", out)
	}
}

func TestRenderNoScores(t *testing.T) {
	s := Summarize([]evaluator.Evaluation{evaluator.MissingDataEvaluation()})

	var buf bytes.Buffer
	if err := s.Render(&buf); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if !regexp.MustCompile(`\|\s*Average content score\s*\|\s*n/a\s*\|`).MatchString(buf.String()) {
		t.Errorf("Render(): wanted n/a average, got:\n%s", buf.String())
	}
}
