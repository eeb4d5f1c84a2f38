/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package batch runs the evaluator over a CSV of support tickets.
//
// Rows missing a ticket or reply get the missing-data record without a model
// call. Every other row is trimmed and evaluated, up to the configured
// concurrency at a time. The output keeps the input columns and row order
// and appends content_score, content_explanation, format_score and
// format_explanation.
package batch
