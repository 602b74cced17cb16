// SPDX-License-Identifier: MIT
// Package verify: property checks over su(3) bases and structure constants.
//
// Each check is pure, deterministic, and best-effort: it walks its full
// index range and records every breach instead of stopping at the first.
package verify

import (
	"math/cmplx"

	"github.com/pclintontarestad/qutrit/qmat"
	"github.com/pclintontarestad/qutrit/su3"
)

// Check name tags, shared with the report and tests.
const (
	checkBasisAlgebra       = "BasisAlgebra"
	checkConstantsInvariant = "ConstantsInvariance"
	checkRotationDetectable = "RotationDetectable"
)

// CheckBasisAlgebra verifies the defining basis invariants of b:
// Hermiticity and tracelessness of each generator, and trace
// orthonormality trace(Mᵢ·Mⱼ) = 2·δᵢⱼ over all ordered pairs.
// The name argument labels the basis in diagnostics (e.g. "standard",
// "rotated(δ=0.7854)").
func CheckBasisAlgebra(name string, b su3.Basis, eps float64) []Violation {
	var vs []Violation
	if len(b) != su3.BasisSize {
		vs = append(vs, violation(checkBasisAlgebra,
			float64(len(b)), float64(su3.BasisSize), "%s: generator count", name))

		return vs
	}

	for i := 0; i < su3.BasisSize; i++ {
		if d := qmat.MaxAbsDiff(b[i], b[i].Dagger()); d > eps {
			vs = append(vs, violation(checkBasisAlgebra,
				d, 0, "%s: generator %d hermiticity", name, i))
		}
		if tr := cabs(b[i].Trace()); tr > eps {
			vs = append(vs, violation(checkBasisAlgebra,
				tr, 0, "%s: generator %d trace", name, i))
		}
	}

	for i := 0; i < su3.BasisSize; i++ {
		for j := 0; j < su3.BasisSize; j++ {
			want := 0.0
			if i == j {
				want = 2.0
			}
			got := real(qmat.Mul(b[i], b[j]).Trace())
			if d := abs(got - want); d > eps {
				vs = append(vs, violation(checkBasisAlgebra,
					got, want, "%s: trace(M%d·M%d)", name, i, j))
			}
		}
	}

	return vs
}

// CheckConstantsInvariance verifies that the f and d tensors of a rotated
// basis match the standard-basis tensors elementwise within eps — the
// rotation is an inner automorphism and must leave the algebra's structure
// constants untouched for any δ.
func CheckConstantsInvariance(std, rot *su3.StructureConstants, delta, eps float64) []Violation {
	var vs []Violation
	for i := 0; i < su3.BasisSize; i++ {
		for j := 0; j < su3.BasisSize; j++ {
			for k := 0; k < su3.BasisSize; k++ {
				if d := abs(std.F[i][j][k] - rot.F[i][j][k]); d > eps {
					vs = append(vs, violation(checkConstantsInvariant,
						rot.F[i][j][k], std.F[i][j][k], "f[%d][%d][%d] at δ=%g", i, j, k, delta))
				}
				if d := abs(std.D[i][j][k] - rot.D[i][j][k]); d > eps {
					vs = append(vs, violation(checkConstantsInvariant,
						rot.D[i][j][k], std.D[i][j][k], "d[%d][%d][%d] at δ=%g", i, j, k, delta))
				}
			}
		}
	}

	return vs
}

// CheckRotationDetectable verifies the rotation is observable even though
// it preserves structure constants. At δ=0 the rotated basis and the
// standard-basis decomposition of the probe generator (λ₁) must coincide
// with their references; at δ≠0 at least one generator and at least one
// decomposition coefficient must move beyond eps.
func CheckRotationDetectable(delta, eps float64) []Violation {
	var vs []Violation
	std := su3.StandardBasis()
	rot, err := su3.RotatedBasis(delta)
	if err != nil {
		vs = append(vs, violation(checkRotationDetectable,
			0, 0, "RotatedBasis(δ=%g) failed: %v", delta, err))

		return vs
	}

	// Largest elementwise displacement across all 8 generators.
	var moved float64
	for i := range std {
		if d := qmat.MaxAbsDiff(rot[i], std[i]); d > moved {
			moved = d
		}
	}

	ref, err := su3.Decompose(std[0], std)
	if err != nil {
		vs = append(vs, violation(checkRotationDetectable,
			0, 0, "Decompose(λ1, standard) failed: %v", err))

		return vs
	}
	dec, err := su3.Decompose(rot[0], std)
	if err != nil {
		vs = append(vs, violation(checkRotationDetectable,
			0, 0, "Decompose(rotated λ1, standard) failed: %v", err))

		return vs
	}
	coeffMoved := ref.MaxAbsDiff(dec)

	if delta == 0 {
		if moved > eps {
			vs = append(vs, violation(checkRotationDetectable,
				moved, 0, "basis moved at δ=0"))
		}
		if coeffMoved > eps {
			vs = append(vs, violation(checkRotationDetectable,
				coeffMoved, 0, "decomposition moved at δ=0"))
		}

		return vs
	}

	if moved <= eps {
		vs = append(vs, violation(checkRotationDetectable,
			moved, 1, "no generator moved at δ=%g", delta))
	}
	if coeffMoved <= eps {
		vs = append(vs, violation(checkRotationDetectable,
			coeffMoved, 1, "no decomposition coefficient moved at δ=%g", delta))
	}

	return vs
}

// abs is a branch-only float absolute value.
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}

// cabs is shorthand for the complex magnitude.
func cabs(z complex128) float64 { return cmplx.Abs(z) }
