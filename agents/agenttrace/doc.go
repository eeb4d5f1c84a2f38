/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package agenttrace provides tracing infrastructure for AI agent executions.

  - ExecutionContext: which input and row an execution belongs to
  - Trace[T]: a single execution from prompt to result, backed by an OpenTelemetry span
  - Tracer[T]: creates and records traces; ByCode wires plain callbacks

Executors call StartTrace with the rendered prompt and Complete the trace with
their result. Tests install a ByCode tracer to observe every prompt:

	var prompts []string
	ctx = agenttrace.WithTracer[*Response](ctx, agenttrace.ByCode(func(tr *agenttrace.Trace[*Response]) {
		prompts = append(prompts, tr.InputPrompt)
	}))

Without an explicit tracer, traces are logged through clog at debug level.
*/
package agenttrace
