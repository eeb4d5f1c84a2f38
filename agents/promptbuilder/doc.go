/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package promptbuilder builds LLM prompts from developer-authored templates.

Templates are literal strings containing {{name}} placeholders. Only untyped
string constants satisfy NewPrompt's parameter type, so the template text is
always under the developer's control, while request data is substituted
through BindText.

	var greeting = promptbuilder.MustNewPrompt(`Ticket: "{{ticket}}"`)

	p, err := greeting.BindText("ticket", userText)
	if err != nil {
		return err
	}
	text, err := p.Build()

Binding returns a new Prompt and never mutates the receiver, so a package-level
template can be shared across goroutines. Substitution is single-pass: a value
that itself contains "{{ticket}}" is emitted as-is.
*/
package promptbuilder
