/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package evaluator

import "chainguard.dev/ticketeval/agents/promptbuilder"

var systemInstructions = promptbuilder.MustNewPrompt(`You are an AI trained to evaluate customer service replies.`)

var userPrompt = promptbuilder.MustNewPrompt(`Given the following customer support ticket and reply, evaluate the quality of the response based on content and format.

Ticket: "{{ticket}}"

Reply: "{{reply}}"

Provide two scores:
- Content Score (1-5): How well does the reply address the customer's concern? Consider relevance, correctness and completeness.
- Format Score (1-5): How clear, professional and well-structured is the reply? Consider clarity, structure, grammar and spelling.

Additionally, provide short textual explanations for both scores.

Output format (JSON):
{
    "content_score": <integer>,
    "content_explanation": "<string>",
    "format_score": <integer>,
    "format_explanation": "<string>"
}

Respond with only the JSON object, no additional text.`)

// Request is the executor request for one ticket/reply pair.
type Request struct {
	Ticket string
	Reply  string
}

// Bind implements promptbuilder.Bindable. Values are embedded verbatim.
func (r *Request) Bind(prompt *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	p, err := prompt.BindText("ticket", r.Ticket)
	if err != nil {
		return nil, err
	}
	return p.BindText("reply", r.Reply)
}
