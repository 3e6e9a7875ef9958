package mise

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatError(t *testing.T) {
	startFailure := fmt.Errorf("failed to start /usr/local/bin/mise: %w", errors.New("fork/exec /usr/local/bin/mise: no such file or directory"))

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "stderr",
			err:  &CommandError{Command: "mise install nope", Stderr: "Error: tool not found\n", Stdout: "ignored", ExitCode: 1},
			want: "Error: tool not found",
		},
		{
			name: "stderr with ansi",
			err:  &CommandError{Command: "mise install nope", Stderr: "\x1b[31mmise\x1b[0m ERROR failed\n", ExitCode: 1},
			want: "mise ERROR failed",
		},
		{
			name: "last five stderr lines",
			err:  &CommandError{Command: "mise install", Stderr: "1\n2\n3\n4\n5\n6\n7\n", ExitCode: 1},
			want: "3\n4\n5\n6\n7",
		},
		{
			name: "stdout fallback",
			err:  &CommandError{Command: "mise upgrade node", Stderr: "  \n", Stdout: "nothing to upgrade\n", ExitCode: 1},
			want: "nothing to upgrade",
		},
		{
			name: "exit code fallback",
			err:  &CommandError{Command: "mise reshim", ExitCode: 2},
			want: "mise reshim (exit code 2)",
		},
		{
			name: "unknown exit code",
			err:  &CommandError{Command: "mise reshim", ExitCode: -1},
			want: "mise reshim (exit code unknown)",
		},
		{
			name: "start failure keeps cause",
			err:  &CommandError{Command: "mise ls --json", ExitCode: -1, Err: startFailure},
			want: "mise ls --json: failed to start /usr/local/bin/mise: fork/exec /usr/local/bin/mise: no such file or directory",
		},
		{
			name: "output cap",
			err:  &CommandError{Command: "mise registry --json", ExitCode: -1, Err: ErrOutputTooLarge},
			want: "mise registry --json: " + ErrOutputTooLarge.Error(),
		},
		{
			name: "wrapped command error",
			err:  fmt.Errorf("upgrade failed: %w", &CommandError{Command: "mise upgrade", Stderr: "boom"}),
			want: "boom",
		},
		{
			name: "plain error",
			err:  errors.New("\x1b[1mplain\x1b[0m failure"),
			want: "plain failure",
		},
		{
			name: "binary not found",
			err:  ErrBinaryNotFound,
			want: "unable to locate the mise binary. Set MISE_BIN or ensure mise is on PATH",
		},
		{
			name: "nil",
			err:  nil,
			want: "Unknown mise error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatError(tt.err))
		})
	}
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "green text", StripANSI("\x1b[32mgreen\x1b[0m text"))
	assert.Equal(t, "no codes", StripANSI("no codes"))
	assert.Equal(t, "bold red", StripANSI("\x1b[1;31mbold\x1b[0m red"))
}

func TestCommandError(t *testing.T) {
	cause := errors.New("exit status 1")
	err := &CommandError{Command: "mise ls", ExitCode: 1, Err: cause}

	assert.Equal(t, "mise ls failed with exit code 1", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsCommandError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsCommandError(cause))

	_, ok := ExitCode(cause)
	assert.False(t, ok)

	startErr := &CommandError{Command: "mise ls", ExitCode: -1, Err: ErrOutputTooLarge}
	assert.Contains(t, startErr.Error(), ErrOutputTooLarge.Error())
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "tool name", Reason: "must not be empty"}
	assert.Equal(t, "tool name must not be empty", err.Error())
	assert.True(t, IsValidationError(fmt.Errorf("install: %w", err)))
	assert.False(t, IsValidationError(ErrBinaryNotFound))
}
