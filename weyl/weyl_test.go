// Package weyl_test contains unit tests for the discrete Weyl–Heisenberg
// operator families.
package weyl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pclintontarestad/qutrit/qmat"
	"github.com/pclintontarestad/qutrit/weyl"
)

const eps = 1e-9

// TestWeylRelations verifies X³ = I, Z³ = I and Z·X = ω·X·Z.
func TestWeylRelations(t *testing.T) {
	x, z := weyl.Shift(), weyl.Clock()

	x3, err := qmat.Pow(x, 3)
	require.NoError(t, err)
	assert.True(t, qmat.Close(x3, qmat.Identity(), eps), "X³ must be identity")

	z3, err := qmat.Pow(z, 3)
	require.NoError(t, err)
	assert.True(t, qmat.Close(z3, qmat.Identity(), eps), "Z³ must be identity")

	zx := qmat.Mul(z, x)
	wxz := qmat.Mul(x, z).Scale(weyl.Omega)
	assert.True(t, qmat.Close(zx, wxz, eps), "ZX must equal ω·XZ")
}

// TestDisplacementOrigin verifies D(0,0) is the identity.
func TestDisplacementOrigin(t *testing.T) {
	d, err := weyl.Displacement(0, 0)
	require.NoError(t, err)
	assert.True(t, qmat.Close(d, qmat.Identity(), eps))
}

// TestDisplacementUnitary verifies unitarity of all 9 displacement operators.
func TestDisplacementUnitary(t *testing.T) {
	for _, pt := range weyl.Points() {
		d, err := weyl.Displacement(pt.P, pt.Q)
		require.NoError(t, err)
		assert.True(t, qmat.IsUnitary(d, eps), "D(%d,%d) must be unitary", pt.P, pt.Q)
	}
}

// TestDisplacementKnownValue pins the literal D(1,1) = ω·Z·X.
func TestDisplacementKnownValue(t *testing.T) {
	d, err := weyl.Displacement(1, 1)
	require.NoError(t, err)

	w := weyl.Omega
	want := qmat.Mat{
		{0, 0, w},
		{w * w, 0, 0},
		{0, 1, 0},
	}
	assert.True(t, qmat.Close(d, want, eps))
}

// TestDisplacementGroup verifies the composition law
// D(p,q)·D(p',q') ∝ D(p+p' mod 3, q+q' mod 3) up to a cube-root-of-unity
// phase, i.e. the 9 operators close into the Weyl–Heisenberg group.
func TestDisplacementGroup(t *testing.T) {
	for _, a := range weyl.Points() {
		for _, b := range weyl.Points() {
			da, err := weyl.Displacement(a.P, a.Q)
			require.NoError(t, err)
			db, err := weyl.Displacement(b.P, b.Q)
			require.NoError(t, err)
			dc, err := weyl.Displacement((a.P+b.P)%3, (a.Q+b.Q)%3)
			require.NoError(t, err)

			prod := qmat.Mul(da, db)
			matched := false
			for k := 0; k < 3 && !matched; k++ {
				phase := complex(1, 0)
				for n := 0; n < k; n++ {
					phase *= weyl.Omega
				}
				matched = qmat.Close(prod, dc.Scale(phase), eps)
			}
			assert.True(t, matched, "D(%v)·D(%v) must be a phase times D(sum)", a, b)
		}
	}
}

// TestDisplacementOutOfRange verifies the OutOfRange contract on both indices.
func TestDisplacementOutOfRange(t *testing.T) {
	for _, pq := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}} {
		_, err := weyl.Displacement(pq[0], pq[1])
		assert.ErrorIs(t, err, weyl.ErrIndexOutOfRange, "D(%d,%d)", pq[0], pq[1])

		_, err = weyl.PhasePoint(pq[0], pq[1])
		assert.ErrorIs(t, err, weyl.ErrIndexOutOfRange, "A(%d,%d)", pq[0], pq[1])
	}
}

// TestPhasePointAlgebra verifies Hermiticity and unit trace of all 9
// phase-point operators.
func TestPhasePointAlgebra(t *testing.T) {
	for _, pt := range weyl.Points() {
		a, err := weyl.PhasePoint(pt.P, pt.Q)
		require.NoError(t, err)
		assert.True(t, qmat.IsHermitian(a, eps), "A(%d,%d) must be Hermitian", pt.P, pt.Q)
		assert.InDelta(t, 1.0, real(a.Trace()), eps, "trace A(%d,%d)", pt.P, pt.Q)
		assert.InDelta(t, 0.0, imag(a.Trace()), eps)
	}
}

// TestPhasePointOrigin pins the literal A(0,0) = Π.
func TestPhasePointOrigin(t *testing.T) {
	a, err := weyl.PhasePoint(0, 0)
	require.NoError(t, err)
	assert.True(t, qmat.Close(a, weyl.Parity(), eps))
}

// TestPhasePointOrthogonality verifies trace(A·A') = 3·δ over all 81
// ordered pairs.
func TestPhasePointOrthogonality(t *testing.T) {
	for _, a := range weyl.Points() {
		for _, b := range weyl.Points() {
			ma, err := weyl.PhasePoint(a.P, a.Q)
			require.NoError(t, err)
			mb, err := weyl.PhasePoint(b.P, b.Q)
			require.NoError(t, err)

			want := 0.0
			if a == b {
				want = 3.0
			}
			tr := qmat.Mul(ma, mb).Trace()
			assert.InDelta(t, want, real(tr), eps, "trace(A%v·A%v)", a, b)
			assert.InDelta(t, 0.0, imag(tr), eps)
		}
	}
}

// TestPhasePointResolution verifies Σ A(p,q) = 3·I.
func TestPhasePointResolution(t *testing.T) {
	sum := qmat.Zero()
	for _, pt := range weyl.Points() {
		a, err := weyl.PhasePoint(pt.P, pt.Q)
		require.NoError(t, err)
		sum = sum.Add(a)
	}
	assert.True(t, qmat.Close(sum, qmat.Identity().Scale(3), eps))
}

// TestPointsEnumeration verifies the row-major order and count.
func TestPointsEnumeration(t *testing.T) {
	pts := weyl.Points()
	require.Len(t, pts, 9)
	assert.Equal(t, weyl.Point{P: 0, Q: 0}, pts[0])
	assert.Equal(t, weyl.Point{P: 0, Q: 2}, pts[2])
	assert.Equal(t, weyl.Point{P: 1, Q: 0}, pts[3])
	assert.Equal(t, weyl.Point{P: 2, Q: 2}, pts[8])
}
