/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package evaluator asks an LLM judge to score a customer-support reply.
//
// Each call sends a fixed system persona and a prompt embedding the ticket
// and reply, then decodes the answer strictly into an Evaluation. Request
// errors and malformed answers collapse into ErrorEvaluation; the cause is
// logged at ERROR on the context's clog logger, so the caller decides where
// error lines go.
package evaluator
