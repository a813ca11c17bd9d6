package main

import (
	"os"

	"github.com/rajannraj/rtomock/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
