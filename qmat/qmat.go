// SPDX-License-Identifier: MIT
// Package qmat: dense 3×3 complex value type and linear-algebra kernels.
//
// Purpose:
//   - Declare the canonical Mat value type used by every operator family.
//   - Provide the small, deterministic kernel set (Mul, Dagger, Trace, Pow)
//     that su3 and weyl build on.
//
// Determinism & Policy:
//   - Fixed loop orders everywhere (r→c→k); no data-dependent branches.
//   - Kernels never mutate their operands; results are fresh values.

package qmat

import (
	"math"
	"math/cmplx"
)

// Dim is the fixed matrix dimension. The whole module is a three-level
// (qutrit) algebra; nothing here generalizes to other dimensions.
const Dim = 3

// DefaultEpsilon defines the non-negative tolerance used by numeric-policy
// checks (Close, IsHermitian, IsUnitary) unless callers supply their own.
const DefaultEpsilon = 1e-9

// Mat is a 3×3 complex matrix, stored row-major as a plain array value.
// A Mat is immutable by convention: every kernel returns a new value and
// callers must never compare with == (use Close with an explicit epsilon).
type Mat [Dim][Dim]complex128

// Zero returns the 3×3 zero matrix.
// Complexity: O(1).
func Zero() Mat { return Mat{} }

// Identity returns I₃.
// Complexity: O(Dim) diagonal writes.
func Identity() Mat {
	var m Mat
	for i := 0; i < Dim; i++ {
		m[i][i] = 1
	}

	return m
}

// Diag returns the diagonal matrix diag(a, b, c).
func Diag(a, b, c complex128) Mat {
	var m Mat
	m[0][0], m[1][1], m[2][2] = a, b, c

	return m
}

// Mul returns the matrix product a·b.
// Deterministic r→c→k loop order; single result value, no temporaries.
// Complexity: O(Dim³).
func Mul(a, b Mat) Mat {
	var out Mat
	var sum complex128
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			sum = 0
			for k := 0; k < Dim; k++ {
				sum += a[r][k] * b[k][c]
			}
			out[r][c] = sum
		}
	}

	return out
}

// MulN folds Mul over ms left-to-right: MulN(a, b, c) = (a·b)·c.
// With no arguments it returns the identity (the neutral element).
// Complexity: O(len(ms)·Dim³).
func MulN(ms ...Mat) Mat {
	out := Identity()
	for _, m := range ms {
		out = Mul(out, m)
	}

	return out
}

// Add returns m + n elementwise.
func (m Mat) Add(n Mat) Mat {
	var out Mat
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			out[r][c] = m[r][c] + n[r][c]
		}
	}

	return out
}

// Sub returns m − n elementwise.
func (m Mat) Sub(n Mat) Mat {
	var out Mat
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			out[r][c] = m[r][c] - n[r][c]
		}
	}

	return out
}

// Scale returns s·m.
func (m Mat) Scale(s complex128) Mat {
	var out Mat
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			out[r][c] = s * m[r][c]
		}
	}

	return out
}

// Dagger returns the conjugate transpose m†.
func (m Mat) Dagger() Mat {
	var out Mat
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			out[r][c] = cmplx.Conj(m[c][r])
		}
	}

	return out
}

// Trace returns the sum of the diagonal entries.
func (m Mat) Trace() complex128 {
	return m[0][0] + m[1][1] + m[2][2]
}

// Pow returns mⁿ for n ≥ 0, with m⁰ = I.
//
// Errors:
//   - ErrNegativePower if n < 0 (inverses are out of scope).
//
// Complexity: O(n·Dim³); exponents in this module never exceed 3, so the
// plain repeated product beats square-and-multiply bookkeeping.
func Pow(m Mat, n int) (Mat, error) {
	if n < 0 {
		return Mat{}, ErrNegativePower
	}
	out := Identity()
	for i := 0; i < n; i++ {
		out = Mul(out, m)
	}

	return out, nil
}

// Commutator returns [a, b] = a·b − b·a.
func Commutator(a, b Mat) Mat {
	return Mul(a, b).Sub(Mul(b, a))
}

// AntiCommutator returns {a, b} = a·b + b·a.
func AntiCommutator(a, b Mat) Mat {
	return Mul(a, b).Add(Mul(b, a))
}

// MaxAbsDiff returns the largest elementwise |a[r][c] − b[r][c]|.
// This is the single distance notion used by every tolerance check in the
// module; keeping it in one place keeps the numeric policy uniform.
func MaxAbsDiff(a, b Mat) float64 {
	var max, d float64
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			d = cmplx.Abs(a[r][c] - b[r][c])
			if d > max {
				max = d
			}
		}
	}

	return max
}

// Close reports whether a and b coincide elementwise within eps.
func Close(a, b Mat, eps float64) bool {
	return MaxAbsDiff(a, b) <= eps
}

// IsHermitian reports whether m equals m† within eps.
func IsHermitian(m Mat, eps float64) bool {
	return Close(m, m.Dagger(), eps)
}

// IsUnitary reports whether m·m† equals the identity within eps.
func IsUnitary(m Mat, eps float64) bool {
	return Close(Mul(m, m.Dagger()), Identity(), eps)
}

// maxAbs returns the largest elementwise magnitude of m; used by ExpI to
// pick the scaling exponent.
func maxAbs(m Mat) float64 {
	var max, d float64
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			d = cmplx.Abs(m[r][c])
			if d > max {
				max = d
			}
		}
	}

	return max
}

// isFinite reports whether every entry of m is finite.
func isFinite(m Mat) bool {
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			if math.IsNaN(real(m[r][c])) || math.IsInf(real(m[r][c]), 0) ||
				math.IsNaN(imag(m[r][c])) || math.IsInf(imag(m[r][c]), 0) {
				return false
			}
		}
	}

	return true
}
