package main

import (
	"os"

	"github.com/mathevilla/server/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
