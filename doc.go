// Package qutrit is a numerical operator-algebra toolkit for three-level
// quantum systems — the su(3) Gell-Mann basis, its structure constants,
// and the discrete Weyl–Heisenberg phase-space formalism.
//
// 🚀 What is qutrit?
//
//	A small, pure-Go library that builds finite-dimensional operator
//	families from closed form and verifies their algebraic invariants to
//	machine precision:
//		• Matrix primitives: fixed-size 3×3 complex kernels incl. exp(i·t·H)
//		• Gell-Mann basis: the 8 generators of su(3), trace-orthonormal
//		• Structure constants: f and d tensors by commutator projection
//		• Rotated bases: the one-parameter family U(δ)·λᵢ·U(δ)†
//		• Phase space: clock/shift, displacement and phase-point operators
//		• Verification: best-effort property suite with per-check diagnostics
//
// ✨ Why choose qutrit?
//
//   - Value semantics – every operator is an immutable 3×3 value, every
//     function pure and deterministic
//   - Explicit numeric policy – one tolerance notion (MaxAbsDiff) shared by
//     every check, ε = 1e-9 by default
//   - No hidden machinery – stdlib kernels, testify-backed tests, no
//     global state
//
// Under the hood, everything is organized under four subpackages:
//
//	qmat/   — 3×3 complex matrix value type and kernels
//	su3/    — Gell-Mann basis, structure constants, basis rotation
//	weyl/   — discrete Weyl–Heisenberg displacement & phase-point operators
//	verify/ — the acceptance-property suite and its report types
//
// Quick start:
//
//	basis := su3.StandardBasis()
//	sc, _ := su3.Constants(basis)
//	fmt.Println(sc.F[0][1][2]) // 1 — the Pauli-like f_123
//
//	report := verify.Run(verify.DefaultOptions())
//	fmt.Print(report) // "verify: all N checks passed"
//
// See each subpackage's doc.go for the full contract, and cmd/qutritverify
// for the console runner.
package qutrit
