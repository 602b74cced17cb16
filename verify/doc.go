// SPDX-License-Identifier: MIT

// Package verify is the acceptance harness for the qutrit operator
// families: a flat set of independent property checks over the su3 and
// weyl packages, aggregated into a single best-effort report.
//
// The verify package provides:
//
//   - Check functions (CheckBasisAlgebra, CheckWeylRelations, ...), each a
//     pure function returning the list of tolerance violations it observed
//     — never aborting on the first failure.
//   - Violation, the diagnostic record naming the check, the offending
//     indices/parameters, and the observed vs expected values.
//   - Run, the facade that executes every check at every configured
//     rotation angle and returns a Report; the suite passes only if zero
//     violations occurred across every check.
//
// The properties encoded here are the specification of the operator
// families; the packages under test deliberately do not re-validate them.
// There is no inheritance or framework machinery — each check is callable
// on its own with an explicit epsilon.
package verify
