// Package su3: the standard Gell-Mann basis.
package su3

import (
	"math"

	"github.com/pclintontarestad/qutrit/qmat"
)

// StandardBasis returns the 8 Gell-Mann matrices λ₁..λ₈ in their
// conventional order: three symmetric off-diagonal, three antisymmetric
// off-diagonal (interleaved pairwise as λ₁/λ₂, λ₄/λ₅, λ₆/λ₇), and the two
// diagonal generators λ₃ and λ₈, the latter carrying the 1/√3
// normalization that makes trace(λ₈·λ₈) = 2.
//
// Deterministic, side-effect-free, and callable any number of times with
// identical output; the returned slice is fresh on every call so callers
// may not alias each other.
func StandardBasis() Basis {
	i := complex(0, 1)
	invSqrt3 := complex(1/math.Sqrt(3), 0)

	return Basis{
		// λ₁, λ₂: the 1↔2 off-diagonal pair.
		{
			{0, 1, 0},
			{1, 0, 0},
			{0, 0, 0},
		},
		{
			{0, -i, 0},
			{i, 0, 0},
			{0, 0, 0},
		},
		// λ₃: isospin z-projection.
		qmat.Diag(1, -1, 0),
		// λ₄, λ₅: the 1↔3 off-diagonal pair.
		{
			{0, 0, 1},
			{0, 0, 0},
			{1, 0, 0},
		},
		{
			{0, 0, -i},
			{0, 0, 0},
			{i, 0, 0},
		},
		// λ₆, λ₇: the 2↔3 off-diagonal pair.
		{
			{0, 0, 0},
			{0, 0, 1},
			{0, 1, 0},
		},
		{
			{0, 0, 0},
			{0, 0, -i},
			{0, i, 0},
		},
		// λ₈: hypercharge, normalized to trace(λ₈²) = 2.
		qmat.Diag(invSqrt3, invSqrt3, -2*invSqrt3),
	}
}
