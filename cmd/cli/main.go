package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/de-tools/block-atlas/pkg/runtime/terminal"
	"github.com/de-tools/block-atlas/pkg/services/pipeline"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(terminal.ExitFailure)
	}

	cli := terminal.NewCLI(terminal.Options{
		Runner:    pipeline.NewRunner(),
		Output:    os.Stdout,
		ErrOutput: os.Stderr,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(terminal.ExitCode(err))
	}
}
