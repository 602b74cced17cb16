// SPDX-License-Identifier: MIT
// Package verify: suite facade.
//
// Purpose:
//   - Compose every property check at every configured rotation angle into
//     one best-effort Report.
//   - Never abort: a failing check contributes violations and the run
//     continues through the remaining checks.
package verify

import (
	"fmt"

	"github.com/pclintontarestad/qutrit/su3"
)

// Run executes the full verification suite under opts and returns the
// aggregated report. The suite result is passing only if zero tolerance
// violations occurred across every check (Report.OK).
//
// Execution order is fixed: standard-basis algebra, then per-δ rotated
// bases (algebra, constants invariance, detectability), then the
// phase-space battery (Weyl relations, displacements, phase points), then
// per-δ phase-point rotation behavior. Deterministic for a given opts.
func Run(opts Options) Report {
	var r Report
	eps := opts.Epsilon

	record := func(vs []Violation) {
		r.Checks++
		r.Violations = append(r.Violations, vs...)
	}

	std := su3.StandardBasis()
	record(CheckBasisAlgebra("standard", std, eps))

	stdSC, err := su3.Constants(std)
	if err != nil {
		// Unreachable for the in-package constructor; surfaced rather
		// than swallowed.
		r.Checks++
		r.Violations = append(r.Violations, violation(checkConstantsInvariant,
			0, 0, "Constants(standard) failed: %v", err))
		stdSC = nil
	}

	for _, delta := range opts.Deltas {
		label := fmt.Sprintf("rotated(δ=%g)", delta)
		rot, err := su3.RotatedBasis(delta)
		if err != nil {
			r.Checks++
			r.Violations = append(r.Violations, violation(checkBasisAlgebra,
				0, 0, "%s construction failed: %v", label, err))
			continue
		}

		record(CheckBasisAlgebra(label, rot, eps))

		if stdSC != nil {
			rotSC, err := su3.Constants(rot)
			if err != nil {
				r.Checks++
				r.Violations = append(r.Violations, violation(checkConstantsInvariant,
					0, 0, "Constants(%s) failed: %v", label, err))
			} else {
				record(CheckConstantsInvariance(stdSC, rotSC, delta, eps))
			}
		}

		record(CheckRotationDetectable(delta, eps))
	}

	record(CheckWeylRelations(eps))
	record(CheckDisplacements(eps))
	record(CheckPhasePoints(eps))

	for _, delta := range opts.Deltas {
		record(CheckPhasePointRotation(delta, eps, opts.RotationPoints))
	}

	return r
}
