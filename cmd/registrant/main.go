package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/joho/godotenv"

	"github.com/geodata-tools/registrant/internal/cli"
	"github.com/geodata-tools/registrant/pkg/registrant"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(registrant.ExitPanic)
		}
	}()

	// A .env in the working directory can provide REGISTRANT_TARGET,
	// PGPASSWORD, or cloud credentials; absence is not an error.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(registrant.ExitCodeForError(err))
	}
}
