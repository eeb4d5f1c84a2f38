/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package agenttrace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// ExecutionContext identifies the unit of work an agent execution belongs to.
type ExecutionContext struct {
	Source string `json:"source,omitempty"` // Input being processed, e.g. "tickets.csv"
	Row    int    `json:"row,omitempty"`    // 1-based data row within Source
}

// SpanAttributes returns the execution context as span attributes.
// Row is unbounded, so these belong on traces and never on metrics.
func (e ExecutionContext) SpanAttributes() []attribute.KeyValue {
	var attrs []attribute.KeyValue
	if e.Source != "" {
		attrs = append(attrs, attribute.String("source", e.Source))
	}
	if e.Row > 0 {
		attrs = append(attrs, attribute.Int("row", e.Row))
	}
	return attrs
}

type contextKey string

const executionContextKey contextKey = "execution_context"

// WithExecutionContext adds execution context to the Go context
func WithExecutionContext(ctx context.Context, execCtx ExecutionContext) context.Context {
	return context.WithValue(ctx, executionContextKey, execCtx)
}

// GetExecutionContext retrieves execution context from the Go context
func GetExecutionContext(ctx context.Context) ExecutionContext {
	if execCtx, ok := ctx.Value(executionContextKey).(ExecutionContext); ok {
		return execCtx
	}
	return ExecutionContext{}
}
