// Package main is the entry point for the phonetics CLI.
//
// Usage:
//
//	phonetics [flags] <command> [args]
//
// Commands:
//
//	convert   - Re-spell transcriptions in another notation
//	describe  - Print the feature analysis of a transcription
//	compare   - Align two transcriptions and report their distance
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/phonetics/cmd/phonetics/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
