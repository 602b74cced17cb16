// SPDX-License-Identifier: MIT
// Package verify: property checks over the discrete phase-space operators.
package verify

import (
	"github.com/pclintontarestad/qutrit/qmat"
	"github.com/pclintontarestad/qutrit/su3"
	"github.com/pclintontarestad/qutrit/weyl"
)

// Check name tags, shared with the report and tests.
const (
	checkWeylRelations      = "WeylRelations"
	checkDisplacements      = "Displacements"
	checkPhasePoints        = "PhasePoints"
	checkPhasePointRotation = "PhasePointRotation"
)

// CheckWeylRelations verifies the generator relations X³ = I, Z³ = I and
// the commutation rule Z·X = ω·X·Z.
func CheckWeylRelations(eps float64) []Violation {
	var vs []Violation
	x, z := weyl.Shift(), weyl.Clock()

	x3, _ := qmat.Pow(x, 3)
	if d := qmat.MaxAbsDiff(x3, qmat.Identity()); d > eps {
		vs = append(vs, violation(checkWeylRelations, d, 0, "X³ vs identity"))
	}
	z3, _ := qmat.Pow(z, 3)
	if d := qmat.MaxAbsDiff(z3, qmat.Identity()); d > eps {
		vs = append(vs, violation(checkWeylRelations, d, 0, "Z³ vs identity"))
	}
	if d := qmat.MaxAbsDiff(qmat.Mul(z, x), qmat.Mul(x, z).Scale(weyl.Omega)); d > eps {
		vs = append(vs, violation(checkWeylRelations, d, 0, "ZX vs ω·XZ"))
	}

	return vs
}

// CheckDisplacements verifies D(0,0) = I and unitarity of every D(p,q)
// over the exhaustive 9-point enumeration.
func CheckDisplacements(eps float64) []Violation {
	var vs []Violation

	origin, err := weyl.Displacement(0, 0)
	if err != nil {
		vs = append(vs, violation(checkDisplacements, 0, 0, "D(0,0) failed: %v", err))

		return vs
	}
	if d := qmat.MaxAbsDiff(origin, qmat.Identity()); d > eps {
		vs = append(vs, violation(checkDisplacements, d, 0, "D(0,0) vs identity"))
	}

	for _, pt := range weyl.Points() {
		dm, err := weyl.Displacement(pt.P, pt.Q)
		if err != nil {
			vs = append(vs, violation(checkDisplacements,
				0, 0, "D(%d,%d) failed: %v", pt.P, pt.Q, err))
			continue
		}
		if d := qmat.MaxAbsDiff(qmat.Mul(dm, dm.Dagger()), qmat.Identity()); d > eps {
			vs = append(vs, violation(checkDisplacements,
				d, 0, "D(%d,%d)·D† vs identity", pt.P, pt.Q))
		}
	}

	return vs
}

// CheckPhasePoints verifies the full phase-point battery: Hermiticity and
// unit trace of each A(p,q), pairwise orthogonality scaled by the dimension
// (trace(A·A') = 3·δ over all 81 ordered pairs), and the resolution of
// identity Σ A(p,q) = 3·I.
func CheckPhasePoints(eps float64) []Violation {
	var vs []Violation
	pts := weyl.Points()

	ops := make([]qmat.Mat, 0, len(pts))
	for _, pt := range pts {
		a, err := weyl.PhasePoint(pt.P, pt.Q)
		if err != nil {
			vs = append(vs, violation(checkPhasePoints,
				0, 0, "A(%d,%d) failed: %v", pt.P, pt.Q, err))

			return vs
		}
		ops = append(ops, a)
	}

	sum := qmat.Zero()
	for i, pt := range pts {
		if d := qmat.MaxAbsDiff(ops[i], ops[i].Dagger()); d > eps {
			vs = append(vs, violation(checkPhasePoints,
				d, 0, "A(%d,%d) hermiticity", pt.P, pt.Q))
		}
		if tr := real(ops[i].Trace()); abs(tr-1) > eps {
			vs = append(vs, violation(checkPhasePoints,
				tr, 1, "trace A(%d,%d)", pt.P, pt.Q))
		}
		sum = sum.Add(ops[i])
	}

	for i, a := range pts {
		for j, b := range pts {
			want := 0.0
			if i == j {
				want = 3.0
			}
			got := real(qmat.Mul(ops[i], ops[j]).Trace())
			if abs(got-want) > eps {
				vs = append(vs, violation(checkPhasePoints,
					got, want, "trace(A(%d,%d)·A(%d,%d))", a.P, a.Q, b.P, b.Q))
			}
		}
	}

	if d := qmat.MaxAbsDiff(sum, qmat.Identity().Scale(3)); d > eps {
		vs = append(vs, violation(checkPhasePoints, d, 0, "Σ A(p,q) vs 3·I"))
	}

	return vs
}

// CheckPhasePointRotation contrasts the basis-rotation unitary's action on
// phase-point operators at δ=0 vs δ≠0. At δ=0 conjugation must fix every
// tested A(p,q) exactly; at δ≠0 no global phase c may reconcile
// U·A·U† with c·A for any tested point — the phase-point family is not
// invariant under the su(3) basis rotation.
//
// The best candidate phase is the least-squares optimum
// c = trace(A†·B)/trace(A†·A); with trace(A†·A) = 3 the denominator never
// vanishes.
func CheckPhasePointRotation(delta, eps float64, pts []weyl.Point) []Violation {
	var vs []Violation

	u, err := qmat.ExpI(su3.StandardBasis()[su3.RotationGenerator], delta)
	if err != nil {
		vs = append(vs, violation(checkPhasePointRotation,
			0, 0, "ExpI(λ4, δ=%g) failed: %v", delta, err))

		return vs
	}
	ud := u.Dagger()

	for _, pt := range pts {
		a, err := weyl.PhasePoint(pt.P, pt.Q)
		if err != nil {
			vs = append(vs, violation(checkPhasePointRotation,
				0, 0, "A(%d,%d) failed: %v", pt.P, pt.Q, err))
			continue
		}
		b := qmat.MulN(u, a, ud)

		if delta == 0 {
			if d := qmat.MaxAbsDiff(b, a); d > eps {
				vs = append(vs, violation(checkPhasePointRotation,
					d, 0, "U·A(%d,%d)·U† moved at δ=0", pt.P, pt.Q))
			}
			continue
		}

		c := qmat.Mul(a.Dagger(), b).Trace() / qmat.Mul(a.Dagger(), a).Trace()
		if d := qmat.MaxAbsDiff(b, a.Scale(c)); d <= eps {
			vs = append(vs, violation(checkPhasePointRotation,
				d, 1, "A(%d,%d) phase-invariant at δ=%g", pt.P, pt.Q, delta))
		}
	}

	return vs
}
