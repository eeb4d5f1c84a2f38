/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evaluator

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/ticketeval/agents/agenttrace"
	"chainguard.dev/ticketeval/agents/executor/openaiexecutor"
	"github.com/chainguard-dev/clog"
	"github.com/openai/openai-go"
)

const (
	// DefaultModel is the judge model used unless overridden.
	DefaultModel = openaiexecutor.DefaultModel

	// DefaultTemperature is the judge's sampling temperature.
	DefaultTemperature = 0.3
)

// Interface scores a single ticket/reply pair.
type Interface interface {
	// Evaluate never fails: on any error it returns ErrorEvaluation and
	// logs the cause.
	Evaluate(ctx context.Context, ticket, reply string) Evaluation
}

// Evaluator judges replies through a JSON-returning executor.
type Evaluator struct {
	exec openaiexecutor.Interface[*Request, *Evaluation]
}

var _ Interface = (*Evaluator)(nil)

// New wraps an existing executor. Tests use it to substitute the model.
func New(exec openaiexecutor.Interface[*Request, *Evaluation]) *Evaluator {
	return &Evaluator{exec: exec}
}

// NewOpenAI builds an Evaluator on client using the judge prompts.
func NewOpenAI(client openai.Client, model string, temperature float64) (*Evaluator, error) {
	if model == "" {
		model = DefaultModel
	}
	exec, err := openaiexecutor.New[*Request, *Evaluation](
		client,
		userPrompt,
		openaiexecutor.WithModel[*Request, *Evaluation](model),
		openaiexecutor.WithTemperature[*Request, *Evaluation](temperature),
		openaiexecutor.WithSystemInstructions[*Request, *Evaluation](systemInstructions),
	)
	if err != nil {
		return nil, fmt.Errorf("creating executor: %w", err)
	}
	return New(exec), nil
}

// Evaluate implements Interface.
func (e *Evaluator) Evaluate(ctx context.Context, ticket, reply string) Evaluation {
	resp, err := e.exec.Execute(ctx, &Request{Ticket: ticket, Reply: reply})
	if err == nil && resp == nil {
		err = errors.New("empty evaluation")
	}
	if err != nil {
		// A cancelled run is abandoned as a whole; it is not a ticket failure.
		if ctx.Err() == nil {
			log := clog.FromContext(ctx)
			if ec := agenttrace.GetExecutionContext(ctx); ec.Row > 0 {
				log = log.With("row", ec.Row)
			}
			log.Errorf("Error processing ticket: %v", describe(err))
		}
		return ErrorEvaluation()
	}
	return *resp
}

// describe surfaces the HTTP status of API failures.
func describe(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("status %d: %w", apiErr.StatusCode, err)
	}
	return err
}
