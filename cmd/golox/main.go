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

// Program golox scans, parses, and evaluates Lox source.
//
// Usage: golox [--trace] [--print-ast] [FILE ...]
//
// With no FILE arguments, golox reads statements from standard input one
// line at a time, running each line as its own session and printing
// whatever diagnostics or `print` output it produced before reading the
// next line. With one or more FILE arguments, each file is read in full
// and run as a single session; golox exits 1 if any file produced a
// scanner, parser, or runtime diagnostic.
package main

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pborman/getopt"

	"github.com/craftinglox/golox/pkg/indent"
	"github.com/craftinglox/golox/pkg/lox"
	"github.com/craftinglox/golox/pkg/loxrun"
)

var stop = os.Exit

func main() {
	var trace bool
	var printAST bool
	var help bool
	getopt.BoolVarLong(&trace, "trace", 0, "write a debug trace of scanning, parsing, and evaluation to stderr")
	getopt.BoolVarLong(&printAST, "print-ast", 0, "print each statement's expression as a parenthesized S-expression ahead of the run's output")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("[FILE ...]")

	if err := getopt.Getopt(nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		stop(1)
	}

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		stop(0)
	}

	opts := []loxrun.Option{}
	if trace {
		opts = append(opts, loxrun.WithTrace(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	}

	files := getopt.Args()
	if len(files) == 0 {
		runREPL(opts, printAST)
		return
	}

	hadError := false
	for _, name := range files {
		if !runFile(name, opts, printAST) {
			hadError = true
		}
	}
	if hadError {
		stop(1)
	}
}

// runFile reads name in full and runs it as a single session, reporting
// every diagnostic to stderr and every `print` line to stdout. It reports
// whether the run was clean.
func runFile(name string, opts []loxrun.Option, printAST bool) bool {
	data, err := ioutil.ReadFile(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return false
	}
	session := loxrun.NewSession(opts...)
	result := session.Run(string(data))
	report(name, result, printAST)
	return !result.HasErrors()
}

// runREPL reads standard input one line at a time, running each line as
// its own session until EOF. A REPL never exits non-zero; diagnostics on
// one line just get reported before the prompt moves on.
func runREPL(opts []loxrun.Option, printAST bool) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		session := loxrun.NewSession(opts...)
		result := session.Run(scanner.Text())
		report("<stdin>", result, printAST)
	}
}

// report prints result's `print` output to stdout, and, if any stage
// produced a diagnostic, a label line followed by every diagnostic
// indented under it to stderr.
func report(label string, result loxrun.Result, printAST bool) {
	if printAST {
		var stmts []lox.Statement
		for _, sr := range result.Statements {
			if sr.Stmt != nil {
				stmts = append(stmts, sr.Stmt)
			}
		}
		if listing := lox.StatementListing(stmts); listing != "" {
			fmt.Print(listing)
		}
	}

	for _, line := range result.Output {
		fmt.Println(line)
	}

	if !result.HasErrors() {
		return
	}

	fmt.Fprintf(os.Stderr, "%s:\n", label)
	w := indent.NewWriter(os.Stderr, "    ")
	for _, e := range result.ScannerErrors {
		fmt.Fprintln(w, e)
	}
	for _, sr := range result.Statements {
		if sr.Err != nil {
			fmt.Fprintln(w, sr.Err)
		}
	}
	if result.RuntimeError != nil {
		fmt.Fprintln(w, result.RuntimeError)
	}
}
