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

// Span identifies an inclusive rectangle of source text: every field is
// 1-based, column 1 is the first grapheme of a line.
type Span struct {
	LineStart, LineEnd     int
	ColumnStart, ColumnEnd int
}

// singleLine builds a Span that starts and ends on the same line.
func singleLine(line, colStart, colEnd int) Span {
	return Span{LineStart: line, LineEnd: line, ColumnStart: colStart, ColumnEnd: colEnd}
}

// SingleLine returns true if s starts and ends on the same line.
func (s Span) SingleLine() bool {
	return s.LineStart == s.LineEnd
}

// Merge returns the smallest span covering both a and b. The start
// column is taken from whichever span starts on the earlier line (a
// column number from the other line would be meaningless), and likewise
// the end column from whichever span ends on the later line.
func Merge(a, b Span) Span {
	m := Span{
		LineStart:   a.LineStart,
		ColumnStart: a.ColumnStart,
		LineEnd:     a.LineEnd,
		ColumnEnd:   a.ColumnEnd,
	}
	if b.LineStart < m.LineStart {
		m.LineStart = b.LineStart
		m.ColumnStart = b.ColumnStart
	} else if b.LineStart == m.LineStart && b.ColumnStart < m.ColumnStart {
		m.ColumnStart = b.ColumnStart
	}
	if b.LineEnd > m.LineEnd {
		m.LineEnd = b.LineEnd
		m.ColumnEnd = b.ColumnEnd
	} else if b.LineEnd == m.LineEnd && b.ColumnEnd > m.ColumnEnd {
		m.ColumnEnd = b.ColumnEnd
	}
	return m
}

// Location renders s the way the driver prefixes a diagnostic.
func (s Span) Location() string {
	if s.SingleLine() {
		return fmt.Sprintf("%d:%d", s.LineStart, s.ColumnStart)
	}
	return fmt.Sprintf("%d:%d-%d:%d", s.LineStart, s.ColumnStart, s.LineEnd, s.ColumnEnd)
}
