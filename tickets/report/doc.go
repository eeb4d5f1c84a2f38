/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package report summarizes a batch of evaluations as markdown tables:
// outcome counts, average scores and a per-score histogram.
package report
