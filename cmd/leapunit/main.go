// Package main provides the leapunit command-line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/leapunit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
