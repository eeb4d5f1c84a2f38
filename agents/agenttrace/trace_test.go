/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package agenttrace

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestByCode(t *testing.T) {
	ctx := WithExecutionContext(context.Background(), ExecutionContext{Source: "tickets.csv", Row: 3})

	var (
		mu       sync.Mutex
		captured []*Trace[string]
	)
	record := func(tr *Trace[string]) {
		mu.Lock()
		defer mu.Unlock()
		captured = append(captured, tr)
	}
	ctx = WithTracer[string](ctx, ByCode[string](record, nil, record))

	trace := StartTrace[string](ctx, "evaluate this")
	trace.RecordTokenUsage("gpt-4o-mini", 12, 34)
	trace.Complete("done", nil)

	if len(captured) != 2 {
		t.Fatalf("recorded traces: got = %d, wanted = 2", len(captured))
	}
	got := captured[0]
	if got.InputPrompt != "evaluate this" {
		t.Errorf("prompt: got = %q, wanted = %q", got.InputPrompt, "evaluate this")
	}
	if got.Result != "done" {
		t.Errorf("result: got = %q, wanted = %q", got.Result, "done")
	}
	if got.ExecContext.Row != 3 || got.ExecContext.Source != "tickets.csv" {
		t.Errorf("exec context: got = %+v, wanted = tickets.csv row 3", got.ExecContext)
	}
	if got.InputTokens != 12 || got.OutputTokens != 34 || got.Model != "gpt-4o-mini" {
		t.Errorf("token usage: got = %s %d/%d, wanted = gpt-4o-mini 12/34", got.Model, got.InputTokens, got.OutputTokens)
	}
	if got.EndTime.IsZero() {
		t.Error("end time: got = zero, wanted = set")
	}
}

func TestTraceError(t *testing.T) {
	var captured *Trace[int]
	ctx := WithTracer[int](context.Background(), ByCode[int](func(tr *Trace[int]) { captured = tr }))

	wantErr := errors.New("boom")
	StartTrace[int](ctx, "p").Complete(0, wantErr)

	if captured == nil {
		t.Fatal("trace: got = nil, wanted = recorded")
	}
	if !errors.Is(captured.Error, wantErr) {
		t.Errorf("error: got = %v, wanted = %v", captured.Error, wantErr)
	}
	if s := captured.String(); !strings.Contains(s, "Error: boom") {
		t.Errorf("String(): got = %q, wanted to contain %q", s, "Error: boom")
	}
}

func TestTracerFromContextDefault(t *testing.T) {
	if TracerFromContext[string](context.Background()) == nil {
		t.Fatal("default tracer: got = nil, wanted = non-nil")
	}
	// The default tracer logs and must not panic on completion.
	StartTrace[string](context.Background(), "p").Complete("r", nil)
}

func TestExecutionContext(t *testing.T) {
	if got := GetExecutionContext(context.Background()); got != (ExecutionContext{}) {
		t.Errorf("empty context: got = %+v, wanted = zero", got)
	}
	if attrs := (ExecutionContext{}).SpanAttributes(); len(attrs) != 0 {
		t.Errorf("zero attributes: got = %d, wanted = 0", len(attrs))
	}
	if attrs := (ExecutionContext{Source: "a.csv", Row: 1}).SpanAttributes(); len(attrs) != 2 {
		t.Errorf("attributes: got = %d, wanted = 2", len(attrs))
	}
}

func TestTraceStringTruncates(t *testing.T) {
	tr := ByCode[string]().NewTrace(context.Background(), strings.Repeat("x", 1000))
	tr.Complete(strings.Repeat("y", 1000), nil)
	s := tr.String()
	if strings.Contains(s, strings.Repeat("x", 300)) {
		t.Error("String(): prompt was not truncated")
	}
	if !strings.Contains(s, "...") {
		t.Error("String(): got = no ellipsis, wanted = truncated output")
	}
}
