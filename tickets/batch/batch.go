/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"slices"
	"strings"

	"chainguard.dev/ticketeval/agents/agenttrace"
	"chainguard.dev/ticketeval/tickets/evaluator"
	"chainguard.dev/ticketeval/tickets/progress"
	"chainguard.dev/ticketeval/tickets/table"
	"github.com/chainguard-dev/clog"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultInput is read when no input path is given.
	DefaultInput = "tickets.csv"
	// DefaultOutput is written when no output path is given.
	DefaultOutput = "tickets_evaluated.csv"

	TicketColumn = "ticket"
	ReplyColumn  = "reply"
)

// ErrInputNotFound is returned by Run when the input file does not exist.
var ErrInputNotFound = errors.New("input file not found")

// Runner evaluates every row of a ticket table.
type Runner struct {
	evaluator   evaluator.Interface
	concurrency int
	progress    io.Writer
	metrics     *Metrics
}

// Option configures a Runner.
type Option func(*Runner) error

// WithConcurrency bounds how many rows are evaluated at once. 1 is sequential.
func WithConcurrency(n int) Option {
	return func(r *Runner) error {
		if n < 1 {
			return fmt.Errorf("concurrency must be at least 1, got %d", n)
		}
		r.concurrency = n
		return nil
	}
}

// WithProgress draws a progress bar on w while rows are evaluated. When logs
// share the terminal, pass the same *progress.Line to both.
func WithProgress(w io.Writer) Option {
	return func(r *Runner) error {
		r.progress = w
		return nil
	}
}

// WithMetrics records row outcomes and scores on m.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) error {
		r.metrics = m
		return nil
	}
}

// New creates a Runner around ev.
func New(ev evaluator.Interface, opts ...Option) (*Runner, error) {
	if ev == nil {
		return nil, errors.New("evaluator cannot be nil")
	}
	r := &Runner{
		evaluator:   ev,
		concurrency: 1,
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return r, nil
}

// Result describes a completed run.
type Result struct {
	// Path is the output file that was written.
	Path string
	// Evaluations holds one record per input row, in input order.
	Evaluations []evaluator.Evaluation
}

// Run evaluates every row of the CSV at input and writes the input columns
// plus the evaluation columns to output. Empty paths select the defaults.
//
// A missing input file or required column fails before any row is
// evaluated. Row failures never fail the run. If ctx is cancelled nothing
// is written.
func (r *Runner) Run(ctx context.Context, input, output string) (*Result, error) {
	if input == "" {
		input = DefaultInput
	}
	if output == "" {
		output = DefaultOutput
	}
	log := clog.FromContext(ctx).With("input", input)

	tbl, err := table.ReadFile(input)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: the CSV file '%s' does not exist", ErrInputNotFound, input)
	}
	if err != nil {
		return nil, err
	}
	if err := tbl.Require(TicketColumn, ReplyColumn); err != nil {
		return nil, fmt.Errorf("the CSV file must contain the columns '%s' and '%s': %w", TicketColumn, ReplyColumn, err)
	}

	log.With("rows", tbl.Len()).
		With("concurrency", r.concurrency).
		Info("Evaluating tickets")

	evals, err := r.Evaluate(ctx, input, tbl)
	if err != nil {
		return nil, err
	}

	if err := Merge(tbl, evals).WriteFile(output); err != nil {
		return nil, fmt.Errorf("writing results: %w", err)
	}
	log.With("output", output).Debug("Wrote evaluations")

	return &Result{Path: output, Evaluations: evals}, nil
}

// Evaluate scores every row of tbl, which must have the ticket and reply
// columns. source names tbl in traces and logs. The returned slice is
// aligned with tbl.Rows.
func (r *Runner) Evaluate(ctx context.Context, source string, tbl *table.Table) ([]evaluator.Evaluation, error) {
	ticketCol, ok := tbl.Column(TicketColumn)
	if !ok {
		return nil, fmt.Errorf("%w: %s", table.ErrMissingColumn, TicketColumn)
	}
	replyCol, ok := tbl.Column(ReplyColumn)
	if !ok {
		return nil, fmt.Errorf("%w: %s", table.ErrMissingColumn, ReplyColumn)
	}

	var bar *progress.Reporter
	if r.progress != nil {
		bar = progress.New(r.progress, tbl.Len())
		defer bar.Finish()
	}

	evals := make([]evaluator.Evaluation, tbl.Len())
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.concurrency)
	for i := range tbl.Len() {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			evals[i] = r.evaluateRow(egCtx, source, tbl, i, ticketCol, replyCol)
			r.metrics.Observe(evals[i])
			bar.Increment()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	// Rows that raced a cancellation come back as errors; discard the run.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return evals, nil
}

func (r *Runner) evaluateRow(ctx context.Context, source string, tbl *table.Table, i, ticketCol, replyCol int) evaluator.Evaluation {
	ticket, hasTicket := tbl.Cell(i, ticketCol)
	reply, hasReply := tbl.Cell(i, replyCol)
	if !hasTicket || !hasReply {
		return evaluator.MissingDataEvaluation()
	}

	ctx = agenttrace.WithExecutionContext(ctx, agenttrace.ExecutionContext{Source: source, Row: i + 1})
	return r.evaluator.Evaluate(ctx, strings.TrimSpace(ticket), strings.TrimSpace(reply))
}

// Merge appends the evaluation columns to tbl. evals must be aligned with
// tbl.Rows.
func Merge(tbl *table.Table, evals []evaluator.Evaluation) *table.Table {
	out := &table.Table{
		Header: slices.Concat(tbl.Header, evaluator.Columns),
		Rows:   make([][]string, tbl.Len()),
	}
	for i := range tbl.Len() {
		out.Rows[i] = slices.Concat(tbl.Row(i), evals[i].Cells())
	}
	return out
}
