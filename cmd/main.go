package main

import (
	"fmt"
	"os"

	"pomodo7o/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pomodo7o: %v\n", err)
		os.Exit(1)
	}
}
