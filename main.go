package main

import (
	"fmt"
	"os"

	"github.com/farescout/farescout/cmd/farescout"
)

func main() {
	if err := farescout.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
