// SPDX-License-Identifier: MIT
// Package verify: diagnostic record and report types.
package verify

import (
	"fmt"
	"strings"
)

// Violation is one observed tolerance breach: which check, at which
// indices/parameters, what was observed and what was expected. Delta is the
// absolute deviation compared against epsilon.
type Violation struct {
	Check  string
	Detail string
	Got    float64
	Want   float64
	Delta  float64
}

// String renders a single diagnostic line.
func (v Violation) String() string {
	return fmt.Sprintf("%s: %s: got %.12g, want %.12g (|Δ| = %.3g)",
		v.Check, v.Detail, v.Got, v.Want, v.Delta)
}

// Report aggregates a full suite run. Checks counts the executed check
// invocations; Violations holds every breach in execution order.
type Report struct {
	Checks     int
	Violations []Violation
}

// OK reports whether the suite passed, i.e. zero violations across every
// check.
func (r Report) OK() bool { return len(r.Violations) == 0 }

// String renders the transient diagnostic text for the presentation layer.
func (r Report) String() string {
	var b strings.Builder
	if r.OK() {
		fmt.Fprintf(&b, "verify: all %d checks passed\n", r.Checks)

		return b.String()
	}

	fmt.Fprintf(&b, "verify: %d of %d checks reported violations:\n",
		r.failedChecks(), r.Checks)
	for _, v := range r.Violations {
		fmt.Fprintf(&b, "  FAIL %s\n", v)
	}

	return b.String()
}

// failedChecks counts distinct check names among the violations.
func (r Report) failedChecks() int {
	seen := make(map[string]struct{}, len(r.Violations))
	for _, v := range r.Violations {
		seen[v.Check] = struct{}{}
	}

	return len(seen)
}

// violation builds a Violation with the delta precomputed.
func violation(check string, got, want float64, format string, args ...any) Violation {
	d := got - want
	if d < 0 {
		d = -d
	}

	return Violation{
		Check:  check,
		Detail: fmt.Sprintf(format, args...),
		Got:    got,
		Want:   want,
		Delta:  d,
	}
}
