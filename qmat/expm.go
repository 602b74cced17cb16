// SPDX-License-Identifier: MIT
// Package qmat: matrix exponential of i·t·H for Hermitian H.
//
// Purpose:
//   - Provide the one transcendental kernel the rotation generator needs:
//     U(t) = exp(i·t·H), a unitary whenever H is Hermitian.
//
// Implementation:
//   - Stage 1: hermiticity guard (ErrNotHermitian beyond hermTol).
//   - Stage 2: scaling — halve A = i·t·H until max|entry| ≤ expScaleCap.
//   - Stage 3: Taylor summation of exp(A/2ˢ) with a running term, stopping
//     once the term magnitude drops under machine precision.
//   - Stage 4: square the partial result s times.
//
// Determinism:
//   - Fixed term order; the stopping rule depends only on the input values.

package qmat

// hermTol is the guard tolerance for the Hermitian precondition of ExpI.
// Tighter than DefaultEpsilon on purpose: the inputs here are closed-form
// generators, exact up to one or two ulps.
const hermTol = 1e-12

// expScaleCap bounds the scaled argument norm so the Taylor series
// converges in well under expMaxTerms terms.
const expScaleCap = 0.5

// expTermTol is the series stopping threshold on the running term magnitude.
const expTermTol = 1e-16

// expMaxTerms caps the Taylor summation; at norm ≤ 0.5 the series reaches
// expTermTol in ~15 terms, so hitting the cap indicates a non-finite input.
const expMaxTerms = 40

// ExpI returns exp(i·t·h) for Hermitian h.
//
// The result is unitary to machine precision for any real t, which is what
// makes conjugation by it preserve Hermiticity, trace and orthonormality of
// an operator basis exactly.
//
// Errors:
//   - ErrNotHermitian    — h deviates from h† beyond hermTol.
//   - ErrExpNotConverged — series failed to reach expTermTol within the cap
//     (only reachable through non-finite input).
//
// Complexity: O(log(t·‖h‖)·Dim³) squarings + O(expMaxTerms·Dim³) series.
func ExpI(h Mat, t float64) (Mat, error) {
	if !IsHermitian(h, hermTol) {
		return Mat{}, ErrNotHermitian
	}

	// A = i·t·h, the anti-Hermitian exponent.
	a := h.Scale(complex(0, t))
	if !isFinite(a) {
		return Mat{}, ErrExpNotConverged
	}

	// Scaling: halve until the entry norm is comfortably inside the
	// convergence region.
	squarings := 0
	for maxAbs(a) > expScaleCap {
		a = a.Scale(0.5)
		squarings++
	}

	// Taylor: out = Σ aᵏ/k!, accumulated with a running term.
	out := Identity()
	term := Identity()
	converged := false
	for k := 1; k <= expMaxTerms; k++ {
		term = Mul(term, a).Scale(complex(1/float64(k), 0))
		out = out.Add(term)
		if maxAbs(term) < expTermTol {
			converged = true
			break
		}
	}
	if !converged {
		return Mat{}, ErrExpNotConverged
	}

	// Undo the scaling: exp(A) = exp(A/2ˢ)^(2ˢ).
	for i := 0; i < squarings; i++ {
		out = Mul(out, out)
	}

	return out, nil
}
