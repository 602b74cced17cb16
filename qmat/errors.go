// SPDX-License-Identifier: MIT
// Package qmat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the qmat
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package qmat

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "qmat: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("Op: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNegativePower is returned by Pow for a negative exponent; inverse
	// powers are out of scope for this operator algebra.
	ErrNegativePower = errors.New("qmat: negative matrix power")

	// ErrNotHermitian is returned by ExpI when the input deviates from its
	// conjugate transpose beyond the hermiticity guard.
	ErrNotHermitian = errors.New("qmat: matrix is not Hermitian within tolerance")

	// ErrExpNotConverged signals that the Taylor series in ExpI failed to
	// reach machine precision within the iteration cap. Unreachable for a
	// scaled 3×3 Hermitian input; kept as a guarded sentinel rather than a
	// silent truncation.
	ErrExpNotConverged = errors.New("qmat: matrix exponential did not converge")
)
