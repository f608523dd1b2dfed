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
	"strconv"
	"strings"

	"github.com/craftinglox/golox/pkg/indent"
)

// ExpressionToString renders expr as a fully-parenthesized S-expression,
// the book's classic AstPrinter: `(+ 1 2)`, `(group (- 3))`, etc. It is
// the verification tool spec.md §8's round-trip property is stated
// against.
func ExpressionToString(expr Expression) string {
	var b strings.Builder
	writeExpression(&b, expr)
	return b.String()
}

func writeExpression(b *strings.Builder, expr Expression) {
	switch expr := expr.(type) {
	case *Binary:
		parenthesize(b, expr.Operator.Lexeme(), expr.Left, expr.Right)
	case *Grouping:
		parenthesize(b, "group", expr.Inner)
	case *Unary:
		parenthesize(b, expr.Operator.Lexeme(), expr.Inner)
	case *LiteralBool:
		if expr.Value {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case *LiteralNil:
		b.WriteString("nil")
	case *LiteralNumber:
		b.WriteString(strconv.FormatFloat(expr.Value, 'f', -1, 64))
	case *LiteralString:
		b.WriteString(expr.Value)
	default:
		panic("lox: unhandled expression type")
	}
}

// StatementListing renders one ExpressionToString line per ExpressionStmt
// or PrintStmt in statements, indented two spaces, for a driver that wants
// to show a whole parsed chunk as a single grouped block rather than one
// line at a time.
func StatementListing(statements []Statement) string {
	var b strings.Builder
	for _, stmt := range statements {
		var expr Expression
		switch stmt := stmt.(type) {
		case *ExpressionStmt:
			expr = stmt.Expr
		case *PrintStmt:
			expr = stmt.Expr
		default:
			continue
		}
		b.WriteString(ExpressionToString(expr))
		b.WriteByte('\n')
	}
	return indent.String("  ", b.String())
}

func parenthesize(b *strings.Builder, name string, exprs ...Expression) {
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		writeExpression(b, e)
	}
	b.WriteByte(')')
}
