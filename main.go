package main

import (
	"os"

	"github.com/abhisek/churnboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
