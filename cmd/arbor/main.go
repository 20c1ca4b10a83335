// Command arbor runs the arbor diagram demo and inspects configuration.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newCLI(os.Stderr).rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
