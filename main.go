package main

import (
	"os"

	"github.com/Makepad-fr/plantetyven/internal/cli"
)

// `go run .` entry point; same as cmd/plantetyven.
func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
