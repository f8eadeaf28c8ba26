package main

import (
	"fmt"
	"log"
	"os"

	"astock/cmd/astock/cmd"
)

func main() {
	log.SetFlags(log.LstdFlags)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
