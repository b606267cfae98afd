// SPDX-License-Identifier: MIT

// agroplan assesses the numerical robustness of crop-allocation plans.
//
// Usage:
//
//	agroplan demo
//	agroplan analyze -f plan.yaml --seed 7 --lambda 1
//	agroplan sweep -f plan.yaml --seeds 64 -o json
//
// Settings are read from AGROPLAN_* environment variables first; flags
// override them.
package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
