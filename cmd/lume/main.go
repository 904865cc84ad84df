package main

import (
	"errors"
	"fmt"
	"os"

	"go.lume.dev/cmd"
	lume "go.lume.dev/pkg"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}

	var lexErr *lume.LexError
	var synErr *lume.SyntaxError
	var runErr *lume.RuntimeError

	switch {
	case errors.As(err, &lexErr), errors.As(err, &synErr):
		// Diagnostics already went to stderr
		os.Exit(65)
	case errors.As(err, &runErr):
		os.Exit(70)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(64)
	}
}
