package main

import (
	"os"

	"github.com/katalvlaran/matcalc/cmd/matcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
