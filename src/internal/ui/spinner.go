package ui

import (
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps briandowns/spinner with our color scheme.
// It writes to stderr so piped stdout stays clean.
type Spinner struct {
	spinner *spinner.Spinner
}

// NewSpinner creates a new spinner with a message
func NewSpinner(message string) *Spinner {
	s := spinner.New(
		spinner.CharSets[14], // dots style
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+message),
		spinner.WithWriter(statusOut),
	)
	return &Spinner{spinner: s}
}

// Start starts the spinner
func (s *Spinner) Start() {
	s.spinner.Start()
}

// Stop stops the spinner
func (s *Spinner) Stop() {
	s.spinner.Stop()
}

// Success stops the spinner and shows a success message
func (s *Spinner) Success(message string) {
	s.spinner.Stop()
	Success("%s", message)
}

// Error stops the spinner and shows an error message
func (s *Spinner) Error(message string) {
	s.spinner.Stop()
	Error("%s", message)
}

// Warning stops the spinner and shows a warning message
func (s *Spinner) Warning(message string) {
	s.spinner.Stop()
	Warning("%s", message)
}

// WithSpinner runs fn behind a spinner showing message.
// On success the spinner is replaced by done; on failure by "<message> failed".
// The spinner is skipped entirely in verbose mode so debug lines are not overwritten.
func WithSpinner(message, done string, fn func() error) error {
	if verboseMode {
		Progress("%s", message)
		if err := fn(); err != nil {
			return err
		}
		Success("%s", done)
		return nil
	}

	s := NewSpinner(message)
	s.Start()

	if err := fn(); err != nil {
		s.Error(message + " failed")
		return err
	}

	s.Success(done)
	return nil
}
