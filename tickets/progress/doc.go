/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package progress renders a terminal progress bar for batch runs.
//
// The bar lives on a Line. Other output written through the same Line, such
// as console log records, clears the bar first and is followed by a redraw.
package progress
