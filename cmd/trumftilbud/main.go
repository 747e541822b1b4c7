// Package main is the entry point for the trumftilbud CLI.
package main

import (
	"os"

	"github.com/oyvhov/trumftilbud/cmd/trumftilbud/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
