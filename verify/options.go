// SPDX-License-Identifier: MIT
// Package verify: suite configuration.
package verify

import (
	"math"

	"github.com/pclintontarestad/qutrit/qmat"
	"github.com/pclintontarestad/qutrit/weyl"
)

// DefaultEpsilon is the suite-wide numeric tolerance. Every encoded
// property holds to machine precision for the closed-form operator
// families, so 1e-9 leaves three orders of headroom over accumulated
// rounding while still catching any convention mistake outright.
const DefaultEpsilon = qmat.DefaultEpsilon

// Options configures a suite run.
//
// Fields:
//   - Epsilon — non-negative tolerance for every check.
//   - Deltas  — rotation angles at which basis and phase-point rotation
//     properties are exercised. Must include 0 for the exact-invariance
//     branches to run; nonzero entries exercise the detectability branches.
//   - RotationPoints — phase-space points for the phase-point rotation
//     check (exhaustive enumeration is not required there; the reference
//     set covers the origin, both axes and the diagonal).
type Options struct {
	Epsilon        float64
	Deltas         []float64
	RotationPoints []weyl.Point
}

// DefaultOptions returns the reference configuration: ε = 1e-9; the
// distinguished angles 0 (T-spin limit) and π/6 (U-spin limit) plus the
// generic probes π/4 and π/2; and the four-point rotation set.
func DefaultOptions() Options {
	return Options{
		Epsilon: DefaultEpsilon,
		Deltas:  []float64{0, math.Pi / 6, math.Pi / 4, math.Pi / 2},
		RotationPoints: []weyl.Point{
			{P: 0, Q: 0},
			{P: 1, Q: 0},
			{P: 1, Q: 1},
			{P: 2, Q: 2},
		},
	}
}
