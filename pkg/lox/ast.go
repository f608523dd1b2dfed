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

// Expression is implemented by every node of the expression grammar. The
// unexported marker keeps the sum type closed: only this package can add
// variants, so evaluator and printer type switches stay exhaustive.
type Expression interface {
	expressionNode()
	Span() Span
}

// Binary is `left operator right`.
type Binary struct {
	Left     Expression
	Operator Token
	Right    Expression
}

// Grouping is a parenthesized expression.
type Grouping struct {
	Inner     Expression
	span      Span
}

// Unary is `operator operand`.
type Unary struct {
	Operator Token
	Inner    Expression
}

// LiteralBool is `true` or `false`.
type LiteralBool struct {
	Value bool
	span  Span
}

// LiteralNil is `nil`.
type LiteralNil struct {
	span Span
}

// LiteralNumber is a parsed numeric literal.
type LiteralNumber struct {
	Value float64
	span  Span
}

// LiteralString is a parsed string literal (the payload, without quotes).
type LiteralString struct {
	Value string
	span  Span
}

func (*Binary) expressionNode()        {}
func (*Grouping) expressionNode()      {}
func (*Unary) expressionNode()         {}
func (*LiteralBool) expressionNode()   {}
func (*LiteralNil) expressionNode()    {}
func (*LiteralNumber) expressionNode() {}
func (*LiteralString) expressionNode() {}

func (e *Binary) Span() Span        { return Merge(e.Left.Span(), e.Right.Span()) }
func (e *Grouping) Span() Span      { return e.span }
func (e *Unary) Span() Span         { return Merge(e.Operator.Span, e.Inner.Span()) }
func (e *LiteralBool) Span() Span   { return e.span }
func (e *LiteralNil) Span() Span    { return e.span }
func (e *LiteralNumber) Span() Span { return e.span }
func (e *LiteralString) Span() Span { return e.span }

// Statement is implemented by every node of the statement grammar.
type Statement interface {
	statementNode()
	Span() Span
}

// ExpressionStmt evaluates an expression and discards the value.
type ExpressionStmt struct {
	Expr Expression
}

// PrintStmt evaluates an expression and writes its display form to the
// output sink.
type PrintStmt struct {
	Expr Expression
}

func (*ExpressionStmt) statementNode() {}
func (*PrintStmt) statementNode()      {}

func (s *ExpressionStmt) Span() Span { return s.Expr.Span() }
func (s *PrintStmt) Span() Span      { return s.Expr.Span() }
