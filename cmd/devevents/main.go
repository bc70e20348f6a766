package main

import (
	"os"

	"awesomedevevents/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
