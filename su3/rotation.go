// Package su3: the one-parameter rotated-basis family.
package su3

import "github.com/pclintontarestad/qutrit/qmat"

// RotatedBasis returns the standard basis conjugated by U(δ) = exp(iδ·λ₄):
// element i is U·λᵢ₊₁·U†.
//
// Conjugation by a unitary preserves Hermiticity, tracelessness and trace
// orthonormality exactly, so the result is a valid Basis for any real δ.
// At δ=0 it equals StandardBasis elementwise. Structure constants computed
// from a rotated basis match the standard ones within numerical tolerance
// (the rotation is an inner automorphism); what the rotation does change is
// the decomposition of any fixed operator against the *standard* basis,
// which is how the transformation stays observable.
//
// Errors: propagated from qmat.ExpI; unreachable for the closed-form λ₄.
func RotatedBasis(delta float64) (Basis, error) {
	std := StandardBasis()
	u, err := qmat.ExpI(std[RotationGenerator], delta)
	if err != nil {
		return nil, err
	}
	ud := u.Dagger()

	out := make(Basis, BasisSize)
	for i := 0; i < BasisSize; i++ {
		out[i] = qmat.MulN(u, std[i], ud)
	}

	return out, nil
}
