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

// Package indent inserts a fixed prefix at the start of every line of some
// text, streaming or all at once.
package indent

import (
	"bytes"
	"io"
)

// String returns in with prefix inserted at the start of every line.
// The empty string is returned unchanged regardless of prefix.
func String(prefix, in string) string {
	return string(Bytes([]byte(prefix), []byte(in)))
}

// Bytes is the []byte equivalent of String.
func Bytes(prefix, in []byte) []byte {
	if len(in) == 0 {
		return nil
	}
	var buf bytes.Buffer
	w := NewWriter(&buf, string(prefix))
	w.Write(in)
	return buf.Bytes()
}

// writer wraps an io.Writer, inserting prefix before the first byte of
// every line written to it (including a line consisting only of the
// terminating newline). State carries across Write calls, so prefix is
// applied correctly no matter how the caller chunks its writes.
type writer struct {
	w           io.Writer
	prefix      []byte
	atLineStart bool
}

// NewWriter returns an io.Writer which inserts prefix before the first
// byte of every line written to it, and otherwise passes bytes through to
// w unchanged.
func NewWriter(w io.Writer, prefix string) io.Writer {
	return &writer{w: w, prefix: []byte(prefix), atLineStart: true}
}

// Write implements io.Writer. Its returned byte count always refers to
// bytes of data (not the prefix bytes inserted alongside them), mapped
// back from however many bytes of the combined, prefixed buffer the
// underlying writer actually accepted.
func (w *writer) Write(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}

	out := make([]byte, 0, len(data)+len(w.prefix))
	// origCount[i] is how many bytes of data are in out[:i+1] — i.e.
	// how many bytes of data have been fully written once out[:i+1] is
	// flushed.
	origCount := make([]int, 0, cap(out))

	atStart := w.atLineStart
	consumed := 0
	for _, b := range data {
		if atStart {
			for range w.prefix {
				origCount = append(origCount, consumed)
			}
			out = append(out, w.prefix...)
			atStart = false
		}
		out = append(out, b)
		consumed++
		origCount = append(origCount, consumed)
		if b == '\n' {
			atStart = true
		}
	}

	n, err := w.w.Write(out)
	if err == nil {
		w.atLineStart = atStart
		return len(data), nil
	}
	if n <= 0 {
		return 0, err
	}
	if n > len(out) {
		n = len(out)
	}
	return origCount[n-1], err
}
