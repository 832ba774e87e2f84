// Multichecker performs static analysis with standard analyzers plus the
// project checks osexit and bigexp.
// To execute against root project directory for all packages:
// ./staticlint ./...
// To get help ./staticlint --help .
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/defers"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/ifaceassert"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/sigchanyzer"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/stringintconv"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
)

func main() {
	multichecker.Main(
		OsExitAnalyzer,         // checks to ensure os.Exit not used in main package
		BigExpAnalyzer,         // checks that exponentiation is always reduced by a modulus
		assign.Analyzer,        // detects useless assignments.
		atomic.Analyzer,        // checks for common mistakes using the sync/atomic package.
		bools.Analyzer,         // detects common mistakes involving boolean operators.
		composite.Analyzer,     // checks for unkeyed composite literals.
		copylock.Analyzer,      // checks for locks erroneously passed by value.
		defers.Analyzer,        // checks for common mistakes in defer statements.
		errorsas.Analyzer,      // checks that the second argument to errors.As points to error type.
		ifaceassert.Analyzer,   // flags impossible interface-interface type assertions.
		loopclosure.Analyzer,   // checks for references to enclosing loop variables from within nested functions.
		lostcancel.Analyzer,    // checks for failure to call a context cancellation function.
		nilfunc.Analyzer,       // checks for useless comparisons against nil.
		nilness.Analyzer,       // reports nil pointer dereferences and degenerate nil pointer comparisons.
		printf.Analyzer,        // checks consistency of Printf format strings and arguments.
		shadow.Analyzer,        // checks for shadowed variables.
		shift.Analyzer,         // checks for shifts that exceed the width of an integer.
		sigchanyzer.Analyzer,   // detects misuse of unbuffered signal as argument to signal.Notify.
		stdmethods.Analyzer,    // checks for misspellings in the signatures of methods similar to well-known interfaces.
		stringintconv.Analyzer, // flags type conversions from integers to strings.
		structtag.Analyzer,     // checks struct field tags are well formed.
		tests.Analyzer,         // checks for common mistaken usages of tests and examples.
		unmarshal.Analyzer,     // checks for passing non-pointer or non-interface types to unmarshal and decode functions.
		unreachable.Analyzer,   // checks for unreachable code.
		unusedresult.Analyzer,  // checks for unused results of calls to certain pure functions.
	)
}
