// Package main is the entry point for the sitebrief CLI.
package main

import (
	"os"

	"github.com/jmylchreest/sitebrief/cmd/sitebrief/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
