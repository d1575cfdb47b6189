// Package main is the entry point for the D&D 3.5 character sheet tool
package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/dnd35-sheet/internal/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}
