// Package su3 builds the Gell-Mann generator basis of the su(3) Lie
// algebra and derives its structure constants.
//
// 🚀 What is su3?
//
//	The Gell-Mann matrices generalize the Pauli matrices to three-level
//	systems (qutrits). This package provides:
//	  • StandardBasis — the 8 fixed Hermitian, traceless, trace-orthonormal
//	    generators λ₁..λ₈.
//	  • Constants — the antisymmetric f and symmetric d structure constants,
//	    computed by projecting commutators/anticommutators onto the basis.
//	  • RotatedBasis — a one-parameter family of unitarily rotated bases,
//	    U(δ)·λᵢ·U(δ)† with U(δ) = exp(iδ·λ₄).
//	  • Decompose — expansion coefficients of an operator against a basis.
//
// ✨ Key invariants:
//   - every generator is Hermitian and traceless
//   - trace(λᵢ·λⱼ) = 2·δᵢⱼ (trace orthonormality)
//   - structure constants are invariant under basis rotation: conjugation
//     by a unitary is an inner automorphism of the algebra
//
// ⚙️ Usage:
//
//	import "github.com/pclintontarestad/qutrit/su3"
//
//	basis := su3.StandardBasis()
//	sc, err := su3.Constants(basis)
//	if err != nil {
//	  // handle ErrBasisSize
//	}
//	fmt.Println("f_123 =", sc.F[0][1][2]) // 1.0
//
// Everything is a pure function over value objects; results are computed
// fresh per call and never cached.
package su3
