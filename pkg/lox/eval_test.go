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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/openconfig/gnmi/errdiff"
)

// run scans, parses, and evaluates src, failing the test if scanning or
// parsing produced any diagnostic.
func run(t *testing.T, src string) ([]string, error) {
	t.Helper()
	tokens, diags := Scan(src)
	if len(diags) != 0 {
		t.Fatalf("Scan(%q): unexpected diagnostics: %v", src, diags)
	}
	results := Parse(tokens)
	var statements []Statement
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", src, r.Err)
		}
		statements = append(statements, r.Stmt)
	}
	var output []string
	err := Evaluate(statements, func(line string) { output = append(output, line) })
	return output, err
}

func TestEvalPrint(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   string
		want []string
	}{
		{"arithmetic", "print 1 + 2 * 3;", []string{"7"}},
		{"string concat", `print "a" + "b";`, []string{"ab"}},
		{"integral number renders without decimal", "print 4.0;", []string{"4"}},
		{"comparison", "print 1 < 2;", []string{"true"}},
		{"equality across types", `print 1 == "1";`, []string{"false"}},
		{"not", "print !false;", []string{"true"}},
		{"truthy zero", "print !0;", []string{"false"}},
		{"truthy empty string", `print !"";`, []string{"false"}},
		{"grouping", "print (1 + 2) * 3;", []string{"9"}},
		{"two statements", "print 1; print 2;", []string{"1", "2"}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvalRuntimeErrors(t *testing.T) {
	for _, tt := range []struct {
		name          string
		in            string
		wantErrSubstr string
	}{
		{"add number and bool", "1 + true;", "expected number"},
		{"subtract strings", `"a" - "b";`, "expected number"},
		{"negate a string", `-"a";`, "expected number"},
		{"divide by zero", "1 / 0;", "division by zero"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.in)
			if diff := errdiff.Substring(err, tt.wantErrSubstr); diff != "" {
				t.Error(diff)
			}
		})
	}
}

// TestEvalFailsFast checks that a RuntimeError on one statement stops the
// statements after it from running, leaving earlier side effects intact.
func TestEvalFailsFast(t *testing.T) {
	got, err := run(t, `print 1; 1 + true; print 2;`)
	if err == nil {
		t.Fatal("expected a runtime error, got none")
	}
	if diff := cmp.Diff([]string{"1"}, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestEqual(t *testing.T) {
	for _, tt := range []struct {
		name string
		a, b Value
		want bool
	}{
		{"equal numbers", VNumber(1), VNumber(1), true},
		{"different numbers", VNumber(1), VNumber(2), false},
		{"different types never equal", VNumber(1), VString("1"), false},
		{"equal strings", VString("a"), VString("a"), true},
		{"nil equals nil", VNil{}, VNil{}, true},
		{"bools", VBool(true), VBool(true), true},
		{"NaN never equals itself", VNumber(math.NaN()), VNumber(math.NaN()), false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestTruthy(t *testing.T) {
	for _, tt := range []struct {
		name string
		v    Value
		want bool
	}{
		{"false is falsy", VBool(false), false},
		{"true is truthy", VBool(true), true},
		{"nil is falsy", VNil{}, false},
		{"zero is truthy", VNumber(0), true},
		{"empty string is truthy", VString(""), true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truthy(tt.v); got != tt.want {
				t.Errorf("Truthy(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}
