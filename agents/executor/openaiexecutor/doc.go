/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package openaiexecutor provides a generic single-turn executor for agents
// backed by the OpenAI chat completions API.
//
// The executor handles:
//   - Prompt rendering from promptbuilder templates
//   - An optional system message
//   - Exactly one chat completion request (no retries, no streaming)
//   - Strict JSON decoding of the reply via the result package
//   - Trace and token metrics recording
//
// # Basic Usage
//
//	client := openai.NewClient(
//	    option.WithAPIKey(apiKey),
//	    option.WithMaxRetries(0),
//	)
//
//	exec, err := openaiexecutor.New[*Request, *Response](
//	    client,
//	    prompt,
//	    openaiexecutor.WithModel[*Request, *Response]("gpt-4o-mini"),
//	    openaiexecutor.WithTemperature[*Request, *Response](0.3),
//	    openaiexecutor.WithSystemInstructions[*Request, *Response](system),
//	)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := exec.Execute(ctx, &Request{...})
//
// Request types implement promptbuilder.Bindable to bind their fields into
// the prompt. Response is decoded with result.Decode, so every non-omitempty
// JSON field must be present in the model's answer.
//
// Request failures and undecodable replies are returned as errors and logged
// at debug level; callers decide how to report them.
package openaiexecutor
