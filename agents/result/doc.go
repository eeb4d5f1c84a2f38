/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package result decodes structured answers from AI model responses.

Models are instructed to answer with a single JSON object. Decode holds them
to that instruction: the response must be exactly one JSON object whose keys
match the target struct.

	type Verdict struct {
		Score  *int   `json:"score"`
		Reason string `json:"reason"`
		Note   string `json:"note,omitempty"`
	}

	v, err := result.Decode[*Verdict](responseText)
	if err != nil {
		// errors.Is(err, result.ErrNotObject), result.ErrMissingField or
		// result.ErrUnknownField, or a decoding error for mistyped values.
	}

Keys are matched case-sensitively, so "SCORE" is an unknown key rather than a
second "score". Fields without omitempty are required. A required field may still be JSON
null when its Go type accepts null (pointers, slices, maps).

# Thread Safety

All functions are stateless and safe for concurrent use.
*/
package result
