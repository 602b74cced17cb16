// Package weyl builds the discrete Weyl–Heisenberg operator families on
// the 3×3 discrete phase space of a qutrit.
//
// 🚀 What is weyl?
//
//	A discrete phase space for a three-level system is indexed by
//	(p,q) ∈ Z₃×Z₃. This package provides:
//	  • Clock / Shift — the generators Z = diag(1, ω, ω²) and the cyclic
//	    permutation X, with ω = exp(2πi/3).
//	  • Displacement — D(p,q) = ω^{pq}·Zᵖ·Xᵠ, the 9 operators of the
//	    Weyl–Heisenberg group on Z₃.
//	  • PhasePoint — A(p,q) = D(p,q)·Π·D(p,q)†, the Hermitian phase-point
//	    operators underlying a discrete Wigner-function representation,
//	    with Π the parity operator swapping basis states 1 and 2.
//
// ✨ Key invariants:
//   - X³ = Z³ = I and the Weyl relation Z·X = ω·X·Z
//   - D(0,0) = I and every D(p,q) is unitary
//   - every A(p,q) is Hermitian with unit trace
//   - trace(A(p,q)·A(p',q')) = 3·δ and Σ A(p,q) = 3·I (resolution of identity)
//
// All operator tables are module-initialized immutable values; both
// constructors are pure functions over the index pair and reject indices
// outside Z₃ with ErrIndexOutOfRange.
package weyl
