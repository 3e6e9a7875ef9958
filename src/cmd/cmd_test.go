package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/misectl/misectl/src/internal/config"
	"github.com/misectl/misectl/src/internal/mise"
)

// fakeExecutor replays canned mise output keyed by the joined argv
type fakeExecutor struct {
	results map[string]string
	errors  map[string]error
	calls   []string
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{results: make(map[string]string), errors: make(map[string]error)}
}

func (f *fakeExecutor) Run(_ context.Context, args []string, _ mise.RunOptions) (*mise.Result, error) {
	key := strings.Join(args, " ")
	f.calls = append(f.calls, key)
	if err, ok := f.errors[key]; ok {
		return nil, err
	}
	return &mise.Result{Stdout: f.results[key]}, nil
}

func (f *fakeExecutor) RunProgram(_ context.Context, program string, args []string, _ mise.RunOptions) (*mise.Result, error) {
	f.calls = append(f.calls, program+" "+strings.Join(args, " "))
	return &mise.Result{}, nil
}

func (f *fakeExecutor) BinaryPath() (string, error) {
	return "/usr/local/bin/mise", nil
}

func (f *fakeExecutor) called(argv string) bool {
	for _, call := range f.calls {
		if call == argv {
			return true
		}
	}
	return false
}

// useFakeMise points the command globals at fake and captures stdout
func useFakeMise(t *testing.T, fake *fakeExecutor, output string) *bytes.Buffer {
	t.Helper()

	origClient, origSource, origCache, origSettings, origStdout := client, registrySource, registryCache, settings, stdout
	t.Cleanup(func() {
		client, registrySource, registryCache, settings, stdout = origClient, origSource, origCache, origSettings, origStdout
	})

	client = mise.NewClient(fake)
	registrySource = client
	registryCache = nil
	settings = &config.Settings{Output: output}

	buf := &bytes.Buffer{}
	stdout = buf
	return buf
}
