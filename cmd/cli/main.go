package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/de-tools/market-atlas/pkg/runtime/terminal"
)

func main() {
	_ = godotenv.Load()

	cli := terminal.NewCLI(terminal.Options{
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
