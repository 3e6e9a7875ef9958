package cmd

import (
	"os"

	"github.com/misectl/misectl/src/internal/ui"
	"golang.org/x/term"
)

// stderrIsTerminal is replaced in tests
var stderrIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// withStatus runs a read-only step quietly, with a debug line in verbose mode
func withStatus(message string, fn func() error) error {
	ui.Debug("%s", message)
	return fn()
}

// withSpinner runs a mutation behind a spinner. Structured output gets no
// status at all and a redirected stderr gets only the final line.
func withSpinner(message, done string, fn func() error) error {
	if structured() {
		return fn()
	}
	if !stderrIsTerminal() {
		ui.Debug("%s", message)
		if err := fn(); err != nil {
			return err
		}
		ui.Success("%s", done)
		return nil
	}
	return ui.WithSpinner(message, done, fn)
}
