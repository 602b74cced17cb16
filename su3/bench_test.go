package su3_test

import (
	"math"
	"testing"

	"github.com/pclintontarestad/qutrit/su3"
)

// BenchmarkConstants measures the full 8³ commutator/anticommutator
// projection on the standard basis.
// Complexity: O(8³) fixed 3×3 triple products.
func BenchmarkConstants(b *testing.B) {
	basis := su3.StandardBasis()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := su3.Constants(basis); err != nil {
			b.Fatalf("Constants failed: %v", err)
		}
	}
}

// BenchmarkRotatedBasis measures one exponential plus 8 conjugations.
func BenchmarkRotatedBasis(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := su3.RotatedBasis(math.Pi / 4); err != nil {
			b.Fatalf("RotatedBasis failed: %v", err)
		}
	}
}
