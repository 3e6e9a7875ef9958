package mise

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/misectl/misectl/src/internal/constants"
	pathutil "github.com/misectl/misectl/src/internal/path"
	"github.com/misectl/misectl/src/internal/ui"
)

// DefaultMaxOutputBytes caps captured stdout and stderr, each
const DefaultMaxOutputBytes = 20 * 1024 * 1024

// extraPathDirs are prepended to PATH so mise can find tools it shells out
// to. They are Unix locations and are skipped on Windows.
var extraPathDirs = []string{
	"/opt/homebrew/bin",
	"/opt/homebrew/sbin",
	"/usr/local/bin",
	"/usr/bin",
	"/bin",
	"/usr/sbin",
	"/sbin",
}

// RunOptions adjusts a single invocation
type RunOptions struct {
	Env              map[string]string // Applied after the fixed overlay
	Dir              string            // Working directory; empty inherits ours
	AllowNonZeroExit bool              // Return the Result instead of a CommandError
}

// Result is the captured output of a finished process
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Executor runs mise (and the occasional helper program such as brew)
type Executor interface {
	Run(ctx context.Context, args []string, opts RunOptions) (*Result, error)
	RunProgram(ctx context.Context, program string, args []string, opts RunOptions) (*Result, error)
	BinaryPath() (string, error)
}

// Runner executes the mise binary found by its Locator
type Runner struct {
	locator   *Locator
	maxOutput int
	environ   func() []string
	goos      string

	// For mocking in tests
	command func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewRunner creates a Runner that resolves mise through locator
func NewRunner(locator *Locator) *Runner {
	return &Runner{
		locator:   locator,
		maxOutput: DefaultMaxOutputBytes,
		environ:   os.Environ,
		goos:      runtime.GOOS,
		command:   exec.CommandContext,
	}
}

var _ Executor = (*Runner)(nil)

// BinaryPath returns the resolved mise executable
func (r *Runner) BinaryPath() (string, error) {
	return r.locator.Resolve()
}

// Run executes mise with args. A non-zero exit is a *CommandError unless
// opts.AllowNonZeroExit is set.
func (r *Runner) Run(ctx context.Context, args []string, opts RunOptions) (*Result, error) {
	binary, err := r.locator.Resolve()
	if err != nil {
		return nil, err
	}

	display := "mise " + strings.Join(args, " ")
	return r.execute(ctx, display, binary, args, r.miseEnvironment(opts.Env), opts)
}

// RunProgram executes another program with only the PATH overlay applied
func (r *Runner) RunProgram(ctx context.Context, program string, args []string, opts RunOptions) (*Result, error) {
	env := envMap(r.environ())
	r.prependPath(env)
	for key, value := range opts.Env {
		env[r.envKey(env, key)] = value
	}

	binary := program
	if !strings.ContainsAny(program, `/\`) {
		if found := lookPathIn(program, env[r.envKey(env, "PATH")]); found != "" {
			binary = found
		}
	}

	display := strings.TrimSpace(program + " " + strings.Join(args, " "))
	return r.execute(ctx, display, binary, args, envList(env), opts)
}

func (r *Runner) execute(ctx context.Context, display, binary string, args, env []string, opts RunOptions) (*Result, error) {
	ui.Debug("Running: %s", display)

	cmd := r.command(ctx, binary, args...)
	cmd.Env = env
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	stdout := &cappedBuffer{max: r.maxOutput}
	stderr := &cappedBuffer{max: r.maxOutput}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()

	result := &Result{Stdout: stdout.String(), Stderr: stderr.String()}
	failure := &CommandError{
		Command:  display,
		Args:     append([]string(nil), args...),
		Stdout:   result.Stdout,
		Stderr:   result.Stderr,
		ExitCode: -1,
	}

	if stdout.exceeded || stderr.exceeded {
		failure.Err = ErrOutputTooLarge
		return nil, failure
	}

	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		// The process never ran: missing binary, permissions, cancelled context
		failure.Err = fmt.Errorf("failed to start %s: %w", binary, err)
		return nil, failure
	}

	result.ExitCode = exitErr.ExitCode()
	ui.Debug("%s exited with code %d", display, result.ExitCode)

	if opts.AllowNonZeroExit {
		return result, nil
	}

	failure.ExitCode = result.ExitCode
	failure.Err = err
	return nil, failure
}

// miseEnvironment layers the non-interactive overlay and caller overrides on
// top of the inherited environment
func (r *Runner) miseEnvironment(overrides map[string]string) []string {
	env := envMap(r.environ())

	for _, key := range []string{"CI", "MISE_SKIP_VERSION_CHECK"} {
		if _, ok := env[r.envKey(env, key)]; !ok {
			env[key] = "1"
		}
	}
	env[r.envKey(env, "MISE_YES")] = "1"
	env[r.envKey(env, "MISE_NO_COLOR")] = "1"
	r.prependPath(env)
	if shell := r.envKey(env, "SHELL"); env[shell] == "" {
		env[shell] = "/bin/bash"
	}

	for key, value := range overrides {
		env[r.envKey(env, key)] = value
	}

	return envList(env)
}

// envKey returns the key under which name is already stored in env. Windows
// variable names are case-insensitive and PATH usually arrives as "Path".
func (r *Runner) envKey(env map[string]string, name string) string {
	if r.goos != constants.OSWindows {
		return name
	}
	if _, ok := env[name]; ok {
		return name
	}
	for key := range env {
		if strings.EqualFold(key, name) {
			return key
		}
	}
	return name
}

func (r *Runner) prependPath(env map[string]string) {
	if r.goos == constants.OSWindows {
		return
	}
	env["PATH"] = pathutil.Prepend(env["PATH"], extraPathDirs...)
}

func envMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

func envList(env map[string]string) []string {
	list := make([]string, 0, len(env))
	for key, value := range env {
		list = append(list, key+"="+value)
	}
	sort.Strings(list)
	return list
}

// lookPathIn searches pathEnv for an executable named name
func lookPathIn(name, pathEnv string) string {
	for _, dir := range pathutil.Split(pathEnv) {
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate
		}
	}
	return ""
}

// cappedBuffer collects output and fails writes beyond max bytes.
// The failed write closes the pipe, so the child sees EPIPE and exits.
type cappedBuffer struct {
	buf      bytes.Buffer
	max      int
	exceeded bool
}

func (c *cappedBuffer) Write(p []byte) (int, error) {
	if c.buf.Len()+len(p) > c.max {
		c.exceeded = true
		return 0, ErrOutputTooLarge
	}
	return c.buf.Write(p)
}

func (c *cappedBuffer) String() string {
	return c.buf.String()
}
