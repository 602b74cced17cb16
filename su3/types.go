// Package su3: domain types and sentinel errors.
package su3

import (
	"errors"

	"github.com/pclintontarestad/qutrit/qmat"
)

// BasisSize is the number of generators of su(3).
const BasisSize = 8

// RotationGenerator is the zero-based index of the generator whose
// exponential drives RotatedBasis (λ₄, the symmetric 1↔3 off-diagonal).
// Rotations about λ₄ interpolate between the T-spin (δ=0) and U-spin
// (δ=π/6) subalgebra alignments.
const RotationGenerator = 3

// Basis is an ordered sequence of exactly BasisSize generators; index i
// holds λ_{i+1}. Every element must be Hermitian and traceless, and the
// sequence trace-orthonormal (trace(λᵢ·λⱼ) = 2·δᵢⱼ). Constructors in this
// package guarantee the invariant; hand-built bases are validated only for
// length, the algebraic invariants being the verify package's concern.
type Basis []qmat.Mat

// StructureConstants holds the f and d tensors of one basis, both indexed
// [i][j][k] over 0..7. F is antisymmetric under i↔j, D symmetric. Computed
// fresh per basis by Constants and never mutated afterwards.
type StructureConstants struct {
	F [BasisSize][BasisSize][BasisSize]float64
	D [BasisSize][BasisSize][BasisSize]float64
}

// ErrBasisSize is returned when a basis does not contain exactly BasisSize
// generators. This is a contract violation by the caller, not a recoverable
// condition; match it via errors.Is.
var ErrBasisSize = errors.New("su3: basis must contain exactly 8 generators")
