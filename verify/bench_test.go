package verify_test

import (
	"testing"

	"github.com/pclintontarestad/qutrit/verify"
)

// BenchmarkRun measures one full suite pass under the default options;
// the suite is the dominant consumer of the module's kernels.
func BenchmarkRun(b *testing.B) {
	opts := verify.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if report := verify.Run(opts); !report.OK() {
			b.Fatalf("suite failed: %s", report)
		}
	}
}
