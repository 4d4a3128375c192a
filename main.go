package main

import (
	"os"

	"github.com/cristianoliveira/pawmatch/cmd"
	"github.com/cristianoliveira/pawmatch/internal/colors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		colors.Error(err.Error())
		os.Exit(1)
	}
}
