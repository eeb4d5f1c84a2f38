/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package result

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrNotObject is returned when the response is not a single JSON object.
	ErrNotObject = errors.New("response is not a JSON object")

	// ErrMissingField is returned when a required key is absent from the response.
	ErrMissingField = errors.New("response is missing a required field")

	// ErrUnknownField is returned when a key does not exactly match a field
	// name of the target type.
	ErrUnknownField = errors.New("response has an unknown field")
)

// Decode parses responseText as exactly one JSON object of shape T.
//
// Every json-tagged field of T without omitempty/omitzero must be present.
// Keys must match field names exactly: encoding/json would otherwise fold
// "SCORE" onto "score" and let a later duplicate win. Trailing content is an
// error. Nothing is stripped or repaired: markdown fences or prose around the
// object fail.
func Decode[T any](responseText string) (T, error) {
	var result T

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(responseText), &fields); err != nil {
		return result, fmt.Errorf("%w: %w", ErrNotObject, err)
	}
	if fields == nil {
		return result, ErrNotObject
	}

	declared := jsonFields(reflect.TypeFor[T]())
	known := make(map[string]struct{}, len(declared))
	for _, f := range declared {
		known[f.name] = struct{}{}
		if _, ok := fields[f.name]; !ok && !f.optional {
			return result, fmt.Errorf("%w: %q", ErrMissingField, f.name)
		}
	}
	if len(known) > 0 && !embedsStruct(reflect.TypeFor[T]()) {
		for key := range fields {
			if _, ok := known[key]; !ok {
				return result, fmt.Errorf("%w: %q", ErrUnknownField, key)
			}
		}
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(responseText)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("decoding response: %w", err)
	}
	return result, nil
}

// RequiredFields lists the JSON keys of struct type t (or pointer to struct)
// that are not marked omitempty or omitzero, in declaration order.
func RequiredFields(t reflect.Type) []string {
	var names []string
	for _, f := range jsonFields(t) {
		if !f.optional {
			names = append(names, f.name)
		}
	}
	return names
}

type jsonField struct {
	name     string
	optional bool
}

// jsonFields lists every JSON key of struct type t (or pointer to struct).
func jsonFields(t reflect.Type) []jsonField {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var fields []jsonField
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		jf := jsonField{name: name}
		for opt := range strings.SplitSeq(opts, ",") {
			if opt == "omitempty" || opt == "omitzero" {
				jf.optional = true
			}
		}
		fields = append(fields, jf)
	}
	return fields
}

// embedsStruct reports whether t has anonymous fields whose keys encoding/json
// promotes. Those keys are left to the decoder.
func embedsStruct(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	for i := range t.NumField() {
		if t.Field(i).Anonymous {
			return true
		}
	}
	return false
}
