package main

import (
	"os"

	"github.com/TomoakiAbebe/rac-tourist/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
