/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evaluator

import "strconv"

const (
	// ErrorExplanation fills both explanations when an evaluation fails.
	ErrorExplanation = "Error"

	// MissingDataExplanation fills both explanations for rows lacking a
	// ticket or reply.
	MissingDataExplanation = "Missing data"
)

// Columns are the output columns appended to every ticket row, in order.
var Columns = []string{"content_score", "content_explanation", "format_score", "format_explanation"}

// Evaluation is the judge's verdict on one ticket/reply pair.
// Scores are nil when absent; present scores are passed through unchecked.
type Evaluation struct {
	ContentScore       *int   `json:"content_score"`
	ContentExplanation string `json:"content_explanation"`
	FormatScore        *int   `json:"format_score"`
	FormatExplanation  string `json:"format_explanation"`
}

// ErrorEvaluation is the record produced for a failed evaluation.
func ErrorEvaluation() Evaluation {
	return Evaluation{ContentExplanation: ErrorExplanation, FormatExplanation: ErrorExplanation}
}

// MissingDataEvaluation is the record produced for a row lacking input.
func MissingDataEvaluation() Evaluation {
	return Evaluation{ContentExplanation: MissingDataExplanation, FormatExplanation: MissingDataExplanation}
}

// IsError reports whether e is the failure sentinel.
func (e Evaluation) IsError() bool {
	return e.ContentScore == nil && e.FormatScore == nil &&
		e.ContentExplanation == ErrorExplanation && e.FormatExplanation == ErrorExplanation
}

// IsMissingData reports whether e is the missing-data sentinel.
func (e Evaluation) IsMissingData() bool {
	return e.ContentScore == nil && e.FormatScore == nil &&
		e.ContentExplanation == MissingDataExplanation && e.FormatExplanation == MissingDataExplanation
}

// Cells renders e as output cells in Columns order. Null scores are empty.
func (e Evaluation) Cells() []string {
	return []string{formatScore(e.ContentScore), e.ContentExplanation, formatScore(e.FormatScore), e.FormatExplanation}
}

func formatScore(score *int) string {
	if score == nil {
		return ""
	}
	return strconv.Itoa(*score)
}
