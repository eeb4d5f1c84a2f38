/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package openaiexecutor

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/ticketeval/agents/agenttrace"
	"chainguard.dev/ticketeval/agents/metrics"
	"chainguard.dev/ticketeval/agents/promptbuilder"
	"chainguard.dev/ticketeval/agents/result"
	"github.com/chainguard-dev/clog"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"
)

// DefaultModel is used when WithModel is not supplied.
const DefaultModel = "gpt-4o-mini"

// Interface is the public interface for OpenAI single-turn execution
type Interface[Request promptbuilder.Bindable, Response any] interface {
	// Execute renders the prompt for request, issues one chat completion and
	// decodes the reply into Response.
	Execute(ctx context.Context, request Request) (Response, error)
}

// executor provides the private implementation
type executor[Request promptbuilder.Bindable, Response any] struct {
	client             openai.Client
	modelName          string
	systemInstructions *promptbuilder.Prompt
	prompt             *promptbuilder.Prompt
	maxTokens          int64 // 0 = provider default
	temperature        float64
	genaiMetrics       *metrics.GenAI
}

// New creates a new Executor with minimal required configuration
func New[Request promptbuilder.Bindable, Response any](
	client openai.Client,
	prompt *promptbuilder.Prompt,
	opts ...Option[Request, Response],
) (Interface[Request, Response], error) {
	if prompt == nil {
		return nil, errors.New("prompt cannot be nil")
	}

	e := &executor[Request, Response]{
		client:       client,
		modelName:    DefaultModel,
		prompt:       prompt,
		temperature:  0.1,
		genaiMetrics: metrics.NewGenAI("chainguard.ai.agents"),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return e, nil
}

// Execute implements Interface
func (e *executor[Request, Response]) Execute(ctx context.Context, request Request) (response Response, err error) {
	log := clog.FromContext(ctx)

	boundPrompt, err := request.Bind(e.prompt)
	if err != nil {
		return response, fmt.Errorf("failed to bind request to prompt: %w", err)
	}
	prompt, err := boundPrompt.Build()
	if err != nil {
		return response, fmt.Errorf("failed to build prompt: %w", err)
	}

	trace := agenttrace.StartTrace[Response](ctx, prompt)
	defer func() {
		trace.Complete(response, err)
	}()

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if e.systemInstructions != nil {
		systemPrompt, err := e.systemInstructions.Build()
		if err != nil {
			return response, fmt.Errorf("building system prompt: %w", err)
		}
		messages = append(messages, openai.ChatCompletionMessageParamUnion{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: openai.String(systemPrompt),
				},
			},
		})
	}
	messages = append(messages, openai.ChatCompletionMessageParamUnion{
		OfUser: &openai.ChatCompletionUserMessageParam{
			Content: openai.ChatCompletionUserMessageParamContentUnion{
				OfString: openai.String(prompt),
			},
		},
	})

	params := openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(e.modelName),
		Messages:    messages,
		Temperature: openai.Float(e.temperature),
	}
	if e.maxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(e.maxTokens)
	}

	log.With("model", e.modelName).
		With("prompt_length", len(prompt)).
		Debug("Sending chat completion request")

	completion, err := e.client.Chat.Completions.New(ctx, params)
	if err != nil {
		e.genaiMetrics.RecordRequest(ctx, e.modelName, metrics.OutcomeRequestError)
		return response, fmt.Errorf("chat completion request failed: %w", err)
	}

	if completion.Usage.PromptTokens > 0 || completion.Usage.CompletionTokens > 0 {
		e.genaiMetrics.RecordTokens(ctx, e.modelName, completion.Usage.PromptTokens, completion.Usage.CompletionTokens)
		trace.RecordTokenUsage(e.modelName, completion.Usage.PromptTokens, completion.Usage.CompletionTokens)
	}

	if len(completion.Choices) == 0 {
		e.genaiMetrics.RecordRequest(ctx, e.modelName, metrics.OutcomeParseError)
		return response, errors.New("no choices in OpenAI response")
	}
	text := completion.Choices[0].Message.Content

	resp, err := result.Decode[Response](text)
	if err != nil {
		e.genaiMetrics.RecordRequest(ctx, e.modelName, metrics.OutcomeParseError)
		log.With("response", text).
			With("error", err).
			Debug("Failed to parse OpenAI response")
		return response, fmt.Errorf("the response is not a valid JSON: %w", err)
	}

	e.genaiMetrics.RecordRequest(ctx, e.modelName, metrics.OutcomeSuccess)
	return resp, nil
}
