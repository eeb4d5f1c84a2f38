/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"fmt"
	"maps"
	"slices"
)

// stringLiteral only accepts untyped string constants, so templates always come from the developer.
type stringLiteral string

// Prompt is an immutable template with named {{placeholders}}.
type Prompt struct {
	template string
	values   map[string]*string // nil value means the placeholder is unbound
}

// NewPrompt parses the template and records every placeholder it contains.
func NewPrompt(template stringLiteral) (*Prompt, error) {
	values := make(map[string]*string)
	_, err := walkTemplate(string(template), func(name string) (string, error) {
		values[name] = nil
		return "", nil
	})
	if err != nil {
		return nil, err
	}
	return &Prompt{
		template: string(template),
		values:   values,
	}, nil
}

// Placeholders returns the sorted names of the template's placeholders.
func (p *Prompt) Placeholders() []string {
	return slices.Sorted(maps.Keys(p.values))
}

// BindText substitutes value verbatim for the named placeholder.
// Substitution happens in a single pass, so braces inside value are never
// treated as placeholders.
// Returns a new Prompt; the receiver is unchanged.
func (p *Prompt) BindText(name, value string) (*Prompt, error) {
	current, ok := p.values[name]
	if !ok {
		return nil, fmt.Errorf("binding %q not found in template", name)
	}
	if current != nil {
		return nil, fmt.Errorf("binding %q already bound", name)
	}
	values := maps.Clone(p.values)
	values[name] = &value
	return &Prompt{template: p.template, values: values}, nil
}

// Build renders the prompt. Every placeholder must be bound.
func (p *Prompt) Build() (string, error) {
	var unbound []string
	for _, name := range p.Placeholders() {
		if p.values[name] == nil {
			unbound = append(unbound, name)
		}
	}
	if len(unbound) > 0 {
		return "", fmt.Errorf("unbound placeholders: %v", unbound)
	}
	return walkTemplate(p.template, func(name string) (string, error) {
		return *p.values[name], nil
	})
}
