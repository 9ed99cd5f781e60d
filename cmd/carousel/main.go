package main

import (
	"os"

	"github.com/go-drift/carousel/cmd/carousel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
