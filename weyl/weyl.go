// Package weyl: clock/shift generators, displacement and phase-point
// operators for the Z₃×Z₃ phase space.
package weyl

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/pclintontarestad/qutrit/qmat"
)

// Dim is the phase-space side length; indices run over Z₃ = {0,1,2}.
const Dim = 3

// Omega is the primitive cube root of unity ω = exp(2πi/3).
var Omega = complex(-0.5, math.Sqrt(3)/2)

// omegaPow holds ω⁰, ω¹, ω²; ω² is taken as the conjugate of ω so the pair
// is exact to the last ulp.
var omegaPow = [Dim]complex128{1, Omega, cmplx.Conj(Omega)}

// ErrIndexOutOfRange is returned when a phase-space index lies outside Z₃.
// Match it via errors.Is.
var ErrIndexOutOfRange = errors.New("weyl: phase-space index outside Z3")

// Point is one discrete phase-space point.
type Point struct {
	P, Q int
}

// Points returns the fixed row-major enumeration of all 9 phase-space
// points: (0,0), (0,1), ..., (2,2). Downstream checks iterate this slice
// exhaustively; nothing in this package samples.
func Points() []Point {
	pts := make([]Point, 0, Dim*Dim)
	for p := 0; p < Dim; p++ {
		for q := 0; q < Dim; q++ {
			pts = append(pts, Point{P: p, Q: q})
		}
	}

	return pts
}

// Clock returns Z = diag(1, ω, ω²), the modular phase generator.
func Clock() qmat.Mat {
	return qmat.Diag(omegaPow[0], omegaPow[1], omegaPow[2])
}

// Shift returns X, the cyclic permutation sending basis vector eᵢ to
// e_{i+1 mod 3}.
func Shift() qmat.Mat {
	return qmat.Mat{
		{0, 0, 1},
		{1, 0, 0},
		{0, 1, 0},
	}
}

// Parity returns Π, the reflection swapping basis states 1 and 2 (the
// phase-point operator at the origin).
func Parity() qmat.Mat {
	return qmat.Mat{
		{1, 0, 0},
		{0, 0, 1},
		{0, 1, 0},
	}
}

// Displacement returns D(p,q) = ω^{pq}·Zᵖ·Xᵠ.
//
// D(0,0) is the identity, every D(p,q) is unitary, and the 9 operators
// generate the full Weyl–Heisenberg group on Z₃. The ω^{pq} phase is taken
// from the exact power table (pq mod 3).
//
// Errors:
//   - ErrIndexOutOfRange unless p,q ∈ {0,1,2}.
func Displacement(p, q int) (qmat.Mat, error) {
	if err := validateIndex(p, q); err != nil {
		return qmat.Mat{}, err
	}

	zp, _ := qmat.Pow(Clock(), p)
	xq, _ := qmat.Pow(Shift(), q)

	return qmat.Mul(zp, xq).Scale(omegaPow[(p*q)%Dim]), nil
}

// PhasePoint returns A(p,q) = D(p,q)·Π·D(p,q)†.
//
// Every A(p,q) is Hermitian with unit trace; the family is pairwise
// trace-orthogonal scaled by the dimension (trace(A·A') = 3·δ) and resolves
// the identity (Σ A(p,q) = 3·I).
//
// Errors:
//   - ErrIndexOutOfRange unless p,q ∈ {0,1,2}.
func PhasePoint(p, q int) (qmat.Mat, error) {
	d, err := Displacement(p, q)
	if err != nil {
		return qmat.Mat{}, err
	}

	return qmat.MulN(d, Parity(), d.Dagger()), nil
}

// validateIndex rejects indices outside Z₃ with the package sentinel.
func validateIndex(p, q int) error {
	if p < 0 || p >= Dim || q < 0 || q >= Dim {
		return ErrIndexOutOfRange
	}

	return nil
}
