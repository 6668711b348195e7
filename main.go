// Package main provides the entry point for a64fields.
// a64fields splits A64 instruction words into their op0 group and fields.
//
// For the full CLI, use: go run ./cmd/a64fields
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("a64fields - A64 instruction field decomposition")
	fmt.Println("")
	fmt.Println("Usage: a64fields [options] [word ...]")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -config    Path to classification table JSON file")
	fmt.Println("  -fallback  Report unmatched op0 values as Unknown")
	fmt.Println("  -v         Print every component of each word")
	fmt.Println("  -dump      Dump each decoded instruction")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/a64fields' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/a64fields' instead.")
	}
}
