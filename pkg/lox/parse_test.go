// Copyright 2015 Google Inc.
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

package lox

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/openconfig/gnmi/errdiff"
)

// scanTokens is a small test helper: scan must never itself error for
// these fixtures, since parser tests want to isolate parser behavior.
func scanTokens(t *testing.T, src string) []Token {
	t.Helper()
	tokens, diags := Scan(src)
	if len(diags) != 0 {
		t.Fatalf("Scan(%q): unexpected diagnostics: %v", src, diags)
	}
	return tokens
}

func TestParseExpressionPrinted(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   string
		want string
	}{
		{"literal number", "1", "1"},
		{"addition", "1 + 2", "(+ 1 2)"},
		{"left associative subtraction", "1 - 2 - 3", "(- (- 1 2) 3)"},
		{"precedence", "1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"grouping", "(1 + 2) * 3", "(* (group (+ 1 2)) 3)"},
		{"unary minus", "-1", "(- 1)"},
		{"unary bang", "!true", "(! true)"},
		{"comparison chain", "1 < 2 == true", "(== (< 1 2) true)"},
		{"string literal", `"hi"`, "hi"},
		{"nil literal", "nil", "nil"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			tokens := scanTokens(t, tt.in)
			expr, err := ParseExpression(tokens)
			if err != nil {
				t.Fatalf("ParseExpression(%q): unexpected error: %v", tt.in, err)
			}
			if diff := pretty.Compare(ExpressionToString(expr), tt.want); diff != "" {
				t.Errorf("ExpressionToString(%q) diff (-got +want):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseStatements(t *testing.T) {
	tokens := scanTokens(t, `print 1 + 2; "a string";`)
	results := Parse(tokens)
	if len(results) != 2 {
		t.Fatalf("got %d statements, want 2", len(results))
	}
	if results[0].Err != nil {
		t.Fatalf("statement 0: unexpected error: %v", results[0].Err)
	}
	if _, ok := results[0].Stmt.(*PrintStmt); !ok {
		t.Errorf("statement 0 = %T, want *PrintStmt", results[0].Stmt)
	}
	if results[1].Err != nil {
		t.Fatalf("statement 1: unexpected error: %v", results[1].Err)
	}
	if _, ok := results[1].Stmt.(*ExpressionStmt); !ok {
		t.Errorf("statement 1 = %T, want *ExpressionStmt", results[1].Stmt)
	}
}

func TestParseMissingSemicolon(t *testing.T) {
	tokens := scanTokens(t, "1 + 2")
	results := Parse(tokens)
	if len(results) != 1 {
		t.Fatalf("got %d statements, want 1", len(results))
	}
	if diff := errdiff.Substring(results[0].Err, "missing ';'"); diff != "" {
		t.Error(diff)
	}
}

func TestParseUnclosedGroup(t *testing.T) {
	tokens := scanTokens(t, "(1 + 2;")
	_, err := ParseExpression(tokens)
	if diff := errdiff.Substring(err, "unexpected token"); diff != "" {
		t.Fatal(diff)
	}
	if err.Context != ParsingGroup {
		t.Errorf("error context = %v, want ParsingGroup", err.Context)
	}
}

func TestParseUnexpectedEOF(t *testing.T) {
	tokens := scanTokens(t, "1 +")
	_, err := ParseExpression(tokens)
	if diff := errdiff.Substring(err, "unexpected end of input"); diff != "" {
		t.Error(diff)
	}
}

// TestSynchronizeRecoversAtNextStatement checks that a parse error on one
// statement doesn't stop the parser from recovering and parsing the rest
// of the program.
func TestSynchronizeRecoversAtNextStatement(t *testing.T) {
	tokens := scanTokens(t, "1 + ; print 2;")
	results := Parse(tokens)
	if len(results) != 2 {
		t.Fatalf("got %d statements, want 2", len(results))
	}
	if results[0].Err == nil {
		t.Error("statement 0: expected an error, got none")
	}
	if results[1].Err != nil {
		t.Errorf("statement 1: unexpected error: %v", results[1].Err)
	}
	if p, ok := results[1].Stmt.(*PrintStmt); !ok {
		t.Errorf("statement 1 = %T, want *PrintStmt", results[1].Stmt)
	} else if got := ExpressionToString(p.Expr); got != "2" {
		t.Errorf("statement 1 expr = %q, want %q", got, "2")
	}
}
