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

import "fmt"

// Kind is a token's tag. Single-character punctuation and fixed operators
// carry no payload; Identifier/String/Number carry their raw lexeme as the
// Token's Text field.
type Kind int

const (
	// Punctuation and operators.
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literals.
	Identifier
	String
	Number

	// Keywords.
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	// Eof is always the final token of any scan.
	Eof
)

// fixedLexeme is the canonical surface text for every Kind whose lexeme is
// not a literal payload.
var fixedLexeme = map[Kind]string{
	LeftParen:    "(",
	RightParen:   ")",
	LeftBrace:    "{",
	RightBrace:   "}",
	Comma:        ",",
	Dot:          ".",
	Minus:        "-",
	Plus:         "+",
	Semicolon:    ";",
	Slash:        "/",
	Star:         "*",
	Bang:         "!",
	BangEqual:    "!=",
	Equal:        "=",
	EqualEqual:   "==",
	Greater:      ">",
	GreaterEqual: ">=",
	Less:         "<",
	LessEqual:    "<=",
	And:          "and",
	Class:        "class",
	Else:         "else",
	False:        "false",
	Fun:          "fun",
	For:          "for",
	If:           "if",
	Nil:          "nil",
	Or:           "or",
	Print:        "print",
	Return:       "return",
	Super:        "super",
	This:         "this",
	True:         "true",
	Var:          "var",
	While:        "while",
	Eof:          "",
}

// keywords maps identifier text to its keyword Kind.
var keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"fun":    Fun,
	"for":    For,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// String renders k the way a diagnostic message names a token kind.
func (k Kind) String() string {
	switch k {
	case Identifier:
		return "Identifier"
	case String:
		return "String"
	case Number:
		return "Number"
	case Eof:
		return "Eof"
	}
	if s, ok := fixedLexeme[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is a single lexical unit: its kind, literal payload (if any), and
// source span.
type Token struct {
	Kind Kind
	Text string // payload for Identifier/String/Number; "" otherwise
	Span Span
}

// Lexeme returns the canonical surface text of t: the fixed operator or
// keyword text, the literal payload, or "" for Eof.
func (t Token) Lexeme() string {
	switch t.Kind {
	case Identifier, String, Number:
		return t.Text
	default:
		return fixedLexeme[t.Kind]
	}
}

// String renders t for debug tracing: "line:col: Kind text".
func (t Token) String() string {
	if t.Text == "" {
		return fmt.Sprintf("%s: %v", t.Span.Location(), t.Kind)
	}
	return fmt.Sprintf("%s: %v %q", t.Span.Location(), t.Kind, t.Text)
}
