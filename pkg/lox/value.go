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

import "strconv"

// Value is the runtime value domain: every expression evaluates to exactly
// one of these four variants.
type Value interface {
	valueNode()
	typeName() string
}

// VBool is a Lox boolean.
type VBool bool

// VNumber is a Lox number (IEEE-754 double).
type VNumber float64

// VNil is the single Lox nil value.
type VNil struct{}

// VString is a Lox string.
type VString string

func (VBool) valueNode()   {}
func (VNumber) valueNode() {}
func (VNil) valueNode()    {}
func (VString) valueNode() {}

func (VBool) typeName() string   { return "boolean" }
func (VNumber) typeName() string { return "number" }
func (VNil) typeName() string    { return "nil" }
func (VString) typeName() string { return "string" }

// Truthy implements Lox's truthiness convention: only false and nil are
// falsy, everything else (including 0 and "") is truthy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case VBool:
		return bool(v)
	case VNil:
		return false
	default:
		return true
	}
}

// Equal implements Lox's structural equality: different variants are never
// equal, and VNumber comparison follows IEEE-754 (so NaN != NaN).
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case VBool:
		b, ok := b.(VBool)
		return ok && a == b
	case VNumber:
		b, ok := b.(VNumber)
		return ok && float64(a) == float64(b)
	case VNil:
		_, ok := b.(VNil)
		return ok
	case VString:
		b, ok := b.(VString)
		return ok && a == b
	default:
		return false
	}
}

// Display renders v the way a `print` statement writes it to the output
// sink.
func Display(v Value) string {
	switch v := v.(type) {
	case VBool:
		if v {
			return "true"
		}
		return "false"
	case VNumber:
		return formatNumber(float64(v))
	case VNil:
		return "nil"
	case VString:
		return string(v)
	default:
		return ""
	}
}

// formatNumber renders a float64 using fixed decimal notation with the
// minimal number of digits that round-trips, so an integral value like
// 4.0 prints as "4" rather than "4.0".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
