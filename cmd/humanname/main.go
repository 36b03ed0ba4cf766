package main

import (
	"os"

	"github.com/dbryar/humanname/cmd/humanname/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(64)
	}
}
