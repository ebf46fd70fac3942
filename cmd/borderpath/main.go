// SPDX-License-Identifier: MIT

// Command borderpath plays and inspects border-path puzzles.
//
//	borderpath play [--seed N] [--metrics-addr :9090]
//	borderpath puzzle [--seed N]
//	borderpath paths FROM TO
//	borderpath validate [FILE]
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
