/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package progress

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
)

const barWidth = 40

// Reporter draws a processed/total bar, redrawn in place on each update.
// A nil *Reporter is valid and draws nothing.
type Reporter struct {
	mu    sync.Mutex
	line  *Line
	bar   progress.Model
	total int
	done  int
}

// New returns a Reporter for total items writing to w and draws the empty bar.
// Pass the Line other output goes through to keep that output off the bar.
func New(w io.Writer, total int) *Reporter {
	r := &Reporter{
		line:  NewLine(w),
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth)),
		total: total,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.draw()
	return r
}

// Increment records one processed item.
func (r *Reporter) Increment() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done < r.total {
		r.done++
	}
	r.draw()
}

// Finish ends the bar's line.
func (r *Reporter) Finish() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.line.release()
}

// Done returns the number of processed items.
func (r *Reporter) Done() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}

func (r *Reporter) draw() {
	pct := 1.0
	if r.total > 0 {
		pct = float64(r.done) / float64(r.total)
	}
	r.line.show(fmt.Sprintf("%s %d/%d", r.bar.ViewAs(pct), r.done, r.total))
}
