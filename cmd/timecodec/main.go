// Package main is the entry point for the timecodec command line tool.
package main

import (
	"os"

	"github.com/timefield/locale-time-codec/cmd/timecodec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
