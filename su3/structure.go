// Package su3: structure-constant derivation by trace projection.
package su3

import "github.com/pclintontarestad/qutrit/qmat"

// Constants computes the f and d structure constants of b.
//
// Algorithm (fixed i→j→k order over all 8³ triples):
//
//	f[i][j][k] = trace([λᵢ,λⱼ]·λₖ) / (4i)
//	d[i][j][k] = Re(trace({λᵢ,λⱼ}·λₖ)) / 4
//
// The commutator of two Hermitian matrices is anti-Hermitian, so its trace
// against a Hermitian λₖ is purely imaginary and the /(4i) division is
// taken as Im(trace)/4, discarding the negligible real residual. The
// normalization constant is 4 under the trace(λᵢ·λⱼ)=2δᵢⱼ convention
// (conventions differing by a factor of 2 exist in the literature; this one
// yields f[0][1][2] = 1).
//
// d is symmetrized over (i,j) after the trace formula to cancel
// floating-point asymmetry; f is antisymmetric by construction and is left
// untouched.
//
// Errors:
//   - ErrBasisSize if len(b) != BasisSize.
//
// Complexity: O(8³) matrix triple products of fixed 3×3 cost.
func Constants(b Basis) (*StructureConstants, error) {
	if len(b) != BasisSize {
		return nil, ErrBasisSize
	}

	sc := &StructureConstants{}
	var comm, anti qmat.Mat
	for i := 0; i < BasisSize; i++ {
		for j := 0; j < BasisSize; j++ {
			comm = qmat.Commutator(b[i], b[j])
			anti = qmat.AntiCommutator(b[i], b[j])
			for k := 0; k < BasisSize; k++ {
				sc.F[i][j][k] = imag(qmat.Mul(comm, b[k]).Trace()) / 4
				sc.D[i][j][k] = real(qmat.Mul(anti, b[k]).Trace()) / 4
			}
		}
	}

	// Symmetrize d over the (i,j) pair.
	var s float64
	for i := 0; i < BasisSize; i++ {
		for j := i + 1; j < BasisSize; j++ {
			for k := 0; k < BasisSize; k++ {
				s = (sc.D[i][j][k] + sc.D[j][i][k]) / 2
				sc.D[i][j][k] = s
				sc.D[j][i][k] = s
			}
		}
	}

	return sc, nil
}

// MaxAbsDiff returns the largest elementwise difference between the f and d
// tensors of sc and other, across both tensors. Used by invariance checks.
func (sc *StructureConstants) MaxAbsDiff(other *StructureConstants) float64 {
	var max, d float64
	for i := 0; i < BasisSize; i++ {
		for j := 0; j < BasisSize; j++ {
			for k := 0; k < BasisSize; k++ {
				d = abs(sc.F[i][j][k] - other.F[i][j][k])
				if d > max {
					max = d
				}
				d = abs(sc.D[i][j][k] - other.D[i][j][k])
				if d > max {
					max = d
				}
			}
		}
	}

	return max
}

// abs is a branch-only float absolute value.
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
