package main

import (
	"os"

	"github.com/gopak/csv2nfo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
