package main

import (
	"os"

	"github.com/bonofiglio/matcha/cmd/matcha/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
