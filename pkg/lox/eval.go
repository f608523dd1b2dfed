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

// This file implements the tree-walking evaluator from spec.md §4.F.
// Statements run in order; the evaluator stops and returns the first
// RuntimeError it hits, leaving any remaining statements unexecuted.

// Evaluator walks a Statement list, writing `print` output to Sink.
type Evaluator struct {
	// Sink receives one line per executed PrintStmt. It must be set
	// before calling Evaluate; a nil Sink panics on the first print,
	// same as dereferencing any other required collaborator.
	Sink func(line string)

	// Trace, if set, receives a line of debug output for every
	// statement executed.
	Trace func(format string, args ...interface{})
}

// Evaluate runs statements in order against a fresh Evaluator backed by
// sink, returning the first RuntimeError encountered, or nil.
func Evaluate(statements []Statement, sink func(line string)) error {
	e := &Evaluator{Sink: sink}
	return e.Run(statements)
}

// Run executes statements in order, stopping at the first RuntimeError.
func (e *Evaluator) Run(statements []Statement) error {
	for _, stmt := range statements {
		if err := e.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) trace(format string, args ...interface{}) {
	if e.Trace != nil {
		e.Trace(format, args...)
	}
}

func (e *Evaluator) execute(stmt Statement) *RuntimeError {
	e.trace("execute: statement at %s", stmt.Span().Location())
	switch stmt := stmt.(type) {
	case *ExpressionStmt:
		_, err := e.eval(stmt.Expr)
		return err
	case *PrintStmt:
		v, err := e.eval(stmt.Expr)
		if err != nil {
			return err
		}
		line := Display(v)
		e.trace("print: %s", line)
		e.Sink(line)
		return nil
	default:
		panic("lox: unhandled statement type")
	}
}

// eval evaluates a single expression to a Value, per spec.md §4.F's rules.
func (e *Evaluator) eval(expr Expression) (Value, *RuntimeError) {
	switch expr := expr.(type) {
	case *LiteralBool:
		return VBool(expr.Value), nil
	case *LiteralNumber:
		return VNumber(expr.Value), nil
	case *LiteralString:
		return VString(expr.Value), nil
	case *LiteralNil:
		return VNil{}, nil
	case *Grouping:
		return e.eval(expr.Inner)
	case *Unary:
		return e.evalUnary(expr)
	case *Binary:
		return e.evalBinary(expr)
	default:
		panic("lox: unhandled expression type")
	}
}

func (e *Evaluator) evalUnary(expr *Unary) (Value, *RuntimeError) {
	v, err := e.eval(expr.Inner)
	if err != nil {
		return nil, err
	}
	switch expr.Operator.Kind {
	case Bang:
		return VBool(!Truthy(v)), nil
	case Minus:
		n, ok := v.(VNumber)
		if !ok {
			return nil, wrongType(expr.Span(), "number", v)
		}
		return VNumber(-n), nil
	default:
		panic("lox: unary operator must be ! or -")
	}
}

func (e *Evaluator) evalBinary(expr *Binary) (Value, *RuntimeError) {
	left, err := e.eval(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.eval(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Kind {
	case EqualEqual:
		return VBool(Equal(left, right)), nil
	case BangEqual:
		return VBool(!Equal(left, right)), nil
	case Plus:
		return evalPlus(expr.Span(), left, right)
	case Minus:
		l, r, err := numberOperands(expr.Span(), left, right)
		if err != nil {
			return nil, err
		}
		return VNumber(l - r), nil
	case Star:
		l, r, err := numberOperands(expr.Span(), left, right)
		if err != nil {
			return nil, err
		}
		return VNumber(l * r), nil
	case Slash:
		l, r, err := numberOperands(expr.Span(), left, right)
		if err != nil {
			return nil, err
		}
		if r == 0.0 {
			return nil, divisionByZero(expr.Span())
		}
		return VNumber(l / r), nil
	case Less:
		l, r, err := numberOperands(expr.Span(), left, right)
		if err != nil {
			return nil, err
		}
		return VBool(l < r), nil
	case LessEqual:
		l, r, err := numberOperands(expr.Span(), left, right)
		if err != nil {
			return nil, err
		}
		return VBool(l <= r), nil
	case Greater:
		l, r, err := numberOperands(expr.Span(), left, right)
		if err != nil {
			return nil, err
		}
		return VBool(l > r), nil
	case GreaterEqual:
		l, r, err := numberOperands(expr.Span(), left, right)
		if err != nil {
			return nil, err
		}
		return VBool(l >= r), nil
	default:
		panic("lox: unhandled binary operator")
	}
}

// numberOperands requires both l and r to be VNumber, reporting whichever
// operand is the offending one first, left to right.
func numberOperands(span Span, l, r Value) (float64, float64, *RuntimeError) {
	ln, ok := l.(VNumber)
	if !ok {
		return 0, 0, wrongType(span, "number", l)
	}
	rn, ok := r.(VNumber)
	if !ok {
		return 0, 0, wrongType(span, "number", r)
	}
	return float64(ln), float64(rn), nil
}

// evalPlus implements the five-way typing rule spec.md §4.F lays out for
// the `+` operator.
func evalPlus(span Span, l, r Value) (Value, *RuntimeError) {
	ln, lIsNum := l.(VNumber)
	rn, rIsNum := r.(VNumber)
	if lIsNum && rIsNum {
		return VNumber(ln + rn), nil
	}

	ls, lIsStr := l.(VString)
	rs, rIsStr := r.(VString)
	if lIsStr && rIsStr {
		return VString(string(ls) + string(rs)), nil
	}

	switch {
	case lIsNum && !rIsNum:
		return nil, wrongType(span, "number", r)
	case rIsNum && !lIsNum:
		return nil, wrongType(span, "number", l)
	case lIsStr && !rIsStr:
		return nil, wrongType(span, "string", r)
	case rIsStr && !lIsStr:
		return nil, wrongType(span, "string", l)
	default:
		return nil, wrongType(span, "number or string", l)
	}
}
