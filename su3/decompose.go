// Package su3: operator decomposition against a generator basis.
package su3

import "github.com/pclintontarestad/qutrit/qmat"

// Decomposition holds the expansion of a Hermitian operator m over a basis:
//
//	m = Trace·I/3 + Σᵢ Coeff[i]·λᵢ₊₁
//
// Trace is the identity component trace(m)/3 scaled back to trace(m);
// Coeff[i] = trace(m·λᵢ₊₁)/2 by trace orthonormality.
type Decomposition struct {
	Trace float64
	Coeff [BasisSize]float64
}

// Decompose expands the Hermitian operator m against b. For a Hermitian m
// and a valid basis every coefficient is real; the imaginary residual of
// the trace projection is discarded.
//
// Errors:
//   - ErrBasisSize if len(b) != BasisSize.
func Decompose(m qmat.Mat, b Basis) (Decomposition, error) {
	if len(b) != BasisSize {
		return Decomposition{}, ErrBasisSize
	}

	var dec Decomposition
	dec.Trace = real(m.Trace())
	for i := 0; i < BasisSize; i++ {
		dec.Coeff[i] = real(qmat.Mul(m, b[i]).Trace()) / 2
	}

	return dec, nil
}

// MaxAbsDiff returns the largest difference between two decompositions over
// the trace part and all 8 coefficients.
func (d Decomposition) MaxAbsDiff(other Decomposition) float64 {
	max := abs(d.Trace - other.Trace)
	var v float64
	for i := 0; i < BasisSize; i++ {
		v = abs(d.Coeff[i] - other.Coeff[i])
		if v > max {
			max = v
		}
	}

	return max
}
