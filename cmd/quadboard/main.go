// Package main provides the quadboard CLI, a line-oriented front end for the
// quadboard dashboard core.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "quadboard:", err)
		os.Exit(exitCode(err))
	}
}
