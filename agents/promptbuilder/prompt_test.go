/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder_test

import (
	"strings"
	"testing"

	"chainguard.dev/ticketeval/agents/promptbuilder"
	"github.com/google/go-cmp/cmp"
)

func TestNewPrompt(t *testing.T) {
	tests := []struct {
		name   string
		prompt *promptbuilder.Prompt
		want   []string
	}{{
		name:   "no bindings",
		prompt: promptbuilder.MustNewPrompt("This is a simple prompt with no bindings"),
		want:   nil,
	}, {
		name:   "single binding",
		prompt: promptbuilder.MustNewPrompt("Analyze this: {{data}}"),
		want:   []string{"data"},
	}, {
		name:   "repeated binding",
		prompt: promptbuilder.MustNewPrompt("First {{data}}, then {{ data }} again"),
		want:   []string{"data"},
	}, {
		name:   "multiple bindings",
		prompt: promptbuilder.MustNewPrompt("Ticket: {{ticket}}\nReply: {{reply}}"),
		want:   []string{"reply", "ticket"},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.prompt.Placeholders()); diff != "" {
				t.Errorf("Placeholders() (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewPromptErrors(t *testing.T) {
	if _, err := promptbuilder.NewPrompt("Broken {{ticket"); err == nil {
		t.Error("unclosed binding: got = nil, wanted = error")
	}
	if _, err := promptbuilder.NewPrompt("Bad {{1ticket}}"); err == nil {
		t.Error("invalid identifier: got = nil, wanted = error")
	}
	if _, err := promptbuilder.NewPrompt("Empty {{}}"); err == nil {
		t.Error("empty identifier: got = nil, wanted = error")
	}
}

func TestBindText(t *testing.T) {
	base := promptbuilder.MustNewPrompt(`Ticket: "{{ticket}}" Reply: "{{reply}}"`)

	p, err := base.BindText("ticket", "My order {{reply}} never arrived")
	if err != nil {
		t.Fatalf("BindText(ticket) error = %v", err)
	}
	p, err = p.BindText("reply", "Sorry & <thanks>")
	if err != nil {
		t.Fatalf("BindText(reply) error = %v", err)
	}

	got, err := p.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := `Ticket: "My order {{reply}} never arrived" Reply: "Sorry & <thanks>"`
	if got != want {
		t.Errorf("Build(): got = %q, wanted = %q", got, want)
	}

	// The base template is untouched by binding.
	if _, err := base.Build(); err == nil {
		t.Error("base.Build(): got = nil, wanted = unbound error")
	}
}

func TestBindTextErrors(t *testing.T) {
	p := promptbuilder.MustNewPrompt("Hello {{name}}")

	if _, err := p.BindText("missing", "x"); err == nil {
		t.Error("unknown binding: got = nil, wanted = error")
	}

	bound, err := p.BindText("name", "world")
	if err != nil {
		t.Fatalf("BindText() error = %v", err)
	}
	if _, err := bound.BindText("name", "again"); err == nil {
		t.Error("double binding: got = nil, wanted = error")
	}
}

func TestBuildUnbound(t *testing.T) {
	p := promptbuilder.MustNewPrompt("{{a}} and {{b}}")
	p, err := p.BindText("a", "x")
	if err != nil {
		t.Fatalf("BindText() error = %v", err)
	}
	_, err = p.Build()
	if err == nil {
		t.Fatal("Build(): got = nil, wanted = error")
	}
	if !strings.Contains(err.Error(), "b") {
		t.Errorf("Build() error: got = %v, wanted mention of %q", err, "b")
	}
}

func TestMustNewPromptPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNewPrompt(): got = no panic, wanted = panic")
		}
	}()
	promptbuilder.MustNewPrompt("{{unclosed")
}
