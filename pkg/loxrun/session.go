// Copyright 2020 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package loxrun wires the scanner, parser, and evaluator of pkg/lox
// together into the single pipeline a driver actually wants to call: scan,
// parse, and (if it makes sense to) evaluate one chunk of source text,
// with every stage's diagnostics collected into one Result.
//
// It collapses what used to be three near-identical generations of a
// "run everything and gather the errors" wrapper into one entry point, the
// way a long-lived CLI tool accretes a single blessed helper once the same
// three steps have been hand-copied often enough.
package loxrun

import (
	"github.com/google/uuid"

	"github.com/craftinglox/golox/pkg/lox"
)

// Option configures a Session.
type Option func(*Session)

// WithTrace routes every stage's debug tracing through fn, prefixed with
// the session's correlation ID.
func WithTrace(fn func(format string, args ...interface{})) Option {
	return func(s *Session) { s.trace = fn }
}

// WithSink overrides where `print` statements write their output. The
// default is to collect them into Result.Output.
func WithSink(fn func(line string)) Option {
	return func(s *Session) { s.sink = fn }
}

// Session runs the scan/parse/evaluate pipeline over successive chunks of
// source text, tagging every run with a correlation ID so a host
// multiplexing many sessions (a REPL, a batch of files) can tell their
// trace output apart.
type Session struct {
	id    string
	trace func(format string, args ...interface{})
	sink  func(line string)
}

// NewSession returns a Session ready to Run source text.
func NewSession(opts ...Option) *Session {
	s := &Session{id: uuid.New().String()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session's correlation ID.
func (s *Session) ID() string { return s.id }

// Result is the outcome of one Session.Run: the full token stream, every
// diagnostic the scanner and parser produced, and either the evaluator's
// output or the RuntimeError that stopped it.
type Result struct {
	Tokens        []lox.Token
	ScannerErrors []*lox.ScannerError
	Statements    []lox.StatementResult

	// Output holds one entry per executed `print` statement, in order,
	// when the session was not configured with WithSink.
	Output []string

	// RuntimeError is the first error the evaluator hit, or nil. It is
	// nil (not evaluated) whenever the scanner reported any error:
	// running an evaluator over a token stream the scanner could not
	// fully make sense of would just manufacture confusing secondary
	// failures out of missing tokens.
	RuntimeError error

	// Evaluated reports whether the evaluator ran at all. It is false
	// whenever ScannerErrors is non-empty.
	Evaluated bool
}

// HasErrors reports whether any stage of r produced a diagnostic.
func (r Result) HasErrors() bool {
	if len(r.ScannerErrors) > 0 || r.RuntimeError != nil {
		return true
	}
	for _, sr := range r.Statements {
		if sr.Err != nil {
			return true
		}
	}
	return false
}

// Run scans, parses, and (when it makes sense to) evaluates source,
// returning a Result describing every stage that ran.
//
// Evaluation proceeds over whichever statements the parser did manage to
// produce even when some other statement in the same source failed to
// parse: a syntax error later in a file is no reason to refuse to run the
// statements that came before it. A scanner error is treated differently,
// since it can leave the parser working from a token stream with pieces
// silently missing, which makes any evaluation result unreliable rather
// than merely incomplete.
func (s *Session) Run(source string) Result {
	s.tracef("session %s: run, %d bytes", s.id, len(source))

	stageTrace := s.trace
	if s.trace != nil {
		stageTrace = func(format string, args ...interface{}) {
			s.trace("session "+s.id+": "+format, args...)
		}
	}

	scanner := lox.NewScanner(source)
	scanner.Trace = stageTrace
	tokens, scanErrs := scanner.ScanAll()

	parser := lox.NewParser(tokens)
	parser.Trace = stageTrace
	statements := parser.Parse()

	result := Result{
		Tokens:        tokens,
		ScannerErrors: scanErrs,
		Statements:    statements,
	}

	if len(scanErrs) > 0 {
		s.tracef("session %s: skipping evaluation, %d scanner error(s)", s.id, len(scanErrs))
		return result
	}

	var ok []lox.Statement
	for _, sr := range statements {
		if sr.Err == nil {
			ok = append(ok, sr.Stmt)
		}
	}

	var output []string
	sink := s.sink
	if sink == nil {
		sink = func(line string) { output = append(output, line) }
	}

	eval := &lox.Evaluator{Sink: sink, Trace: stageTrace}
	result.Evaluated = true
	result.RuntimeError = eval.Run(ok)
	if s.sink == nil {
		result.Output = output
	}
	return result
}

func (s *Session) tracef(format string, args ...interface{}) {
	if s.trace != nil {
		s.trace(format, args...)
	}
}
