package main

import (
	"os"

	"github.com/rustyeddy/advisor/cmd/advisor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
