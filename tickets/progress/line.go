/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package progress

import (
	"io"
	"sync"
)

// clearLine returns the cursor to column 0 and erases the line.
const clearLine = "\r\x1b[2K"

// Line shares one terminal stream between a status line redrawn in place and
// ordinary output such as log records. Writes made while a status is shown
// land on a cleared line and the status is redrawn beneath them.
type Line struct {
	mu     sync.Mutex
	w      io.Writer
	status string
}

var _ io.Writer = (*Line)(nil)

// NewLine wraps w. A Line passed to New is used as is.
func NewLine(w io.Writer) *Line {
	if l, ok := w.(*Line); ok {
		return l
	}
	return &Line{w: w}
}

// Write implements io.Writer. p should end with a newline.
func (l *Line) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.status == "" {
		return l.w.Write(p)
	}
	if _, err := io.WriteString(l.w, clearLine); err != nil {
		return 0, err
	}
	n, err := l.w.Write(p)
	if err != nil {
		return n, err
	}
	_, err = io.WriteString(l.w, l.status)
	return n, err
}

// show replaces the status line with status.
func (l *Line) show(status string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.status = status
	_, _ = io.WriteString(l.w, clearLine+status)
}

// release ends the status line and returns the stream to plain writes.
func (l *Line) release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.status = ""
	_, _ = io.WriteString(l.w, "\n")
}
