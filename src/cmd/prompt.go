package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/misectl/misectl/src/internal/constants"
)

// assumeYes skips confirmation prompts (--yes)
var assumeYes bool

// stdin is read for confirmation answers
var stdin io.Reader = os.Stdin

// confirm asks a yes/no question on stderr; the default is no
func confirm(format string, args ...interface{}) bool {
	if assumeYes {
		return true
	}

	fmt.Fprintf(os.Stderr, "\n"+format+" [y/N]: ", args...)

	response, _ := bufio.NewReader(stdin).ReadString('\n')
	return isConfirmed(response)
}

// isConfirmed accepts y and yes in any case
func isConfirmed(response string) bool {
	response = strings.ToLower(strings.TrimSpace(response))
	return response == constants.ResponseY || response == constants.ResponseYes
}
