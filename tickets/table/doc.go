/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package table reads and writes the delimited ticket tables.
//
// Cells are kept as the original text. Whether a cell counts as missing is
// decided by IsMissing: empty or whitespace-only text and the usual NA
// markers ("NA", "NaN", "null", "#N/A", ...) are missing, as is any cell
// absent from a short row.
package table
