// Command paleostress runs a stress inversion described by a YAML run file
// and writes the resulting report.
//
//	paleostress run --config run.yaml --out report.json --plot residuals.png
//	paleostress kinds
//	paleostress methods
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "paleostress:", err)
		os.Exit(1)
	}
}
