package main

import (
	"os"

	"github.com/OpenTraceLab/OpenTraceFootprint/cmd/fpwiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
