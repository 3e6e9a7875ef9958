package mise

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// formatLineLimit is how many trailing output lines FormatError keeps
const formatLineLimit = 5

// StripANSI removes terminal escape sequences
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// FormatError turns any error into a short message fit for a status line.
// Failed commands prefer the tail of stderr, then the tail of stdout.
func FormatError(err error) string {
	if err == nil {
		return "Unknown mise error"
	}

	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		if cmdErr.ExitCode < 0 && cmdErr.Err != nil {
			// Never started or was cut off at the output cap
			return StripANSI(cmdErr.Error())
		}
		if stderr := StripANSI(strings.TrimSpace(cmdErr.Stderr)); stderr != "" {
			return lastLines(stderr, formatLineLimit)
		}
		if stdout := StripANSI(strings.TrimSpace(cmdErr.Stdout)); stdout != "" {
			return lastLines(stdout, formatLineLimit)
		}
		code := "unknown"
		if cmdErr.ExitCode >= 0 {
			code = fmt.Sprintf("%d", cmdErr.ExitCode)
		}
		return fmt.Sprintf("%s (exit code %s)", cmdErr.Command, code)
	}

	return StripANSI(err.Error())
}

func lastLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
