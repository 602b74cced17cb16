// SPDX-License-Identifier: MIT

// Package qmat provides fixed-size 3×3 complex matrix primitives for
// qutrit operator algebra.
//
// The qmat package provides:
//
//   - A value-type Mat ([3][3]complex128) with the kernels every operator
//     construction needs: Mul, Add, Sub, Scale, Dagger, Trace, Pow.
//   - ExpI, the matrix exponential exp(i·t·H) of a Hermitian matrix scaled
//     by an imaginary constant, via scaling-and-squaring Taylor summation.
//   - Numeric-policy helpers (MaxAbsDiff, Close, IsHermitian, IsUnitary)
//     shared by the su3, weyl and verify packages.
//
// All operations are pure: a Mat is never mutated after construction, and
// every kernel allocates its result on the stack. Two matrices carry no
// identity beyond their value; compare them with Close under an explicit
// tolerance, never with ==.
//
// See the examples in this package and su3 for usage patterns.
package qmat
