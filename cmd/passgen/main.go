package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/passform/passform-go/internal/cli"
)

func main() {
	// A .env file is optional for the CLI.
	_ = godotenv.Load()

	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
