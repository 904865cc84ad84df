package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	lume "go.lume.dev/pkg"
)

// runPrompt reads one line at a time against a single runner, so the
// session's global scope persists across lines. A failed line has already
// printed its diagnostics; the next line starts clean.
func runPrompt(runner *lume.Runner, prompt string) error {
	in := bufio.NewReader(os.Stdin)

	for {
		fmt.Print(prompt)

		line, err := in.ReadString('\n')
		if len(line) > 0 {
			_ = runner.Run(line)
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return nil
			}

			return err
		}
	}
}
