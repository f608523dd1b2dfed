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

import "testing"

// TestExpressionToStringClassicExample reproduces the book's canonical
// AstPrinter example: -123 * (45.67).
func TestExpressionToStringClassicExample(t *testing.T) {
	expr := &Binary{
		Left: &Unary{
			Operator: Token{Kind: Minus},
			Inner:    &LiteralNumber{Value: 123},
		},
		Operator: Token{Kind: Star},
		Right: &Grouping{
			Inner: &LiteralNumber{Value: 45.67},
		},
	}
	want := "(* (- 123) (group 45.67))"
	if got := ExpressionToString(expr); got != want {
		t.Errorf("ExpressionToString = %q, want %q", got, want)
	}
}

func TestStatementListing(t *testing.T) {
	stmts := []Statement{
		&PrintStmt{Expr: &LiteralNumber{Value: 1}},
		&ExpressionStmt{Expr: &LiteralBool{Value: true}},
	}
	want := "  1\n  true\n"
	if got := StatementListing(stmts); got != want {
		t.Errorf("StatementListing = %q, want %q", got, want)
	}
}

func TestStatementListingEmpty(t *testing.T) {
	if got := StatementListing(nil); got != "" {
		t.Errorf("StatementListing(nil) = %q, want empty", got)
	}
}
