/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

// Bindable is implemented by executor request types so each request can
// fill the executor's prompt template with its own data.
type Bindable interface {
	// Bind returns a copy of prompt with the receiver's values bound.
	Bind(prompt *Prompt) (*Prompt, error)
}
