// rot3 is a CLI utility for converting between rotation matrices, quaternions, and Euler angles.
package main

import (
	"os"

	"github.com/solarlune/rot3/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
