// Command qutritverify runs the full operator-algebra verification suite
// and prints its diagnostic report. Exit status is 0 when every check
// passed and 1 when any tolerance violation occurred.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pclintontarestad/qutrit/verify"
)

func main() {
	opts := verify.DefaultOptions()
	flag.Float64Var(&opts.Epsilon, "eps", opts.Epsilon, "numeric tolerance for every check")
	flag.Parse()

	report := verify.Run(opts)
	fmt.Print(report)

	if !report.OK() {
		os.Exit(1)
	}
}
