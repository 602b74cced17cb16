package weyl_test

import (
	"fmt"

	"github.com/pclintontarestad/qutrit/qmat"
	"github.com/pclintontarestad/qutrit/weyl"
)

// ExampleDisplacement builds one Weyl–Heisenberg displacement operator and
// confirms it is unitary.
func ExampleDisplacement() {
	d, err := weyl.Displacement(1, 2)
	if err != nil {
		fmt.Println("unexpected:", err)

		return
	}

	fmt.Println("unitary:", qmat.IsUnitary(d, 1e-9))

	_, err = weyl.Displacement(3, 0)
	fmt.Println("out of range:", err)
	// Output:
	// unitary: true
	// out of range: weyl: phase-space index outside Z3
}

// ExamplePhasePoint sums the 9 phase-point operators into the resolution
// of identity.
func ExamplePhasePoint() {
	sum := qmat.Zero()
	for _, pt := range weyl.Points() {
		a, err := weyl.PhasePoint(pt.P, pt.Q)
		if err != nil {
			fmt.Println("unexpected:", err)

			return
		}
		sum = sum.Add(a)
	}

	fmt.Println("Σ A(p,q) = 3·I:", qmat.Close(sum, qmat.Identity().Scale(3), 1e-9))
	// Output:
	// Σ A(p,q) = 3·I: true
}
