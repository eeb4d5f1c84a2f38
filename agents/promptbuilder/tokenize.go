/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// resolveFunc returns the replacement text for a placeholder name.
type resolveFunc func(name string) (string, error)

// walkTemplate scans template once, replacing each {{name}} with resolve(name).
// Text produced by resolve is never rescanned.
func walkTemplate(template string, resolve resolveFunc) (string, error) {
	var sb strings.Builder
	rest := template
	for {
		before, after, found := strings.Cut(rest, "{{")
		sb.WriteString(before)
		if !found {
			return sb.String(), nil
		}

		inner, tail, closed := strings.Cut(after, "}}")
		if !closed {
			return "", errors.New("unclosed binding: missing '}}'")
		}

		name := strings.TrimSpace(inner)
		if !isValidIdentifier(name) {
			return "", fmt.Errorf("invalid binding identifier %q", name)
		}
		replacement, err := resolve(name)
		if err != nil {
			return "", err
		}
		sb.WriteString(replacement)
		rest = tail
	}
}

// isValidIdentifier reports whether s is a letter followed by letters, digits or underscores.
func isValidIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case unicode.IsLetter(r):
		case i > 0 && (unicode.IsDigit(r) || r == '_'):
		default:
			return false
		}
	}
	return s != ""
}
