package mise

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecutor records invocations and replays canned results keyed by argv
type fakeExecutor struct {
	binary   string
	results  map[string]*Result
	errors   map[string]error
	calls    [][]string
	programs [][]string
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{
		binary:  "/usr/local/bin/mise",
		results: make(map[string]*Result),
		errors:  make(map[string]error),
	}
}

func (f *fakeExecutor) on(argv string, stdout string) {
	f.results[argv] = &Result{Stdout: stdout}
}

func (f *fakeExecutor) fail(argv string, err error) {
	f.errors[argv] = err
}

func (f *fakeExecutor) Run(_ context.Context, args []string, _ RunOptions) (*Result, error) {
	f.calls = append(f.calls, args)
	key := strings.Join(args, " ")
	if err, ok := f.errors[key]; ok {
		return nil, err
	}
	if result, ok := f.results[key]; ok {
		return result, nil
	}
	return &Result{}, nil
}

func (f *fakeExecutor) RunProgram(_ context.Context, program string, args []string, _ RunOptions) (*Result, error) {
	argv := append([]string{program}, args...)
	f.programs = append(f.programs, argv)
	key := strings.Join(argv, " ")
	if err, ok := f.errors[key]; ok {
		return nil, err
	}
	return &Result{}, nil
}

func (f *fakeExecutor) BinaryPath() (string, error) {
	if f.binary == "" {
		return "", ErrBinaryNotFound
	}
	return f.binary, nil
}

func (f *fakeExecutor) lastCall(t *testing.T) []string {
	t.Helper()
	require.NotEmpty(t, f.calls, "no mise invocation recorded")
	return f.calls[len(f.calls)-1]
}

type fakeRegistry struct {
	entries []RegistryEntry
	err     error
}

func (f *fakeRegistry) ListRegistry(context.Context) ([]RegistryEntry, error) {
	return f.entries, f.err
}

func TestClient_Argv(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		call func(c *Client) error
		want []string
	}{
		{"install plugin", func(c *Client) error { return c.InstallPlugin(ctx, "node", "") }, []string{"plugins", "install", "node"}},
		{"install plugin with url", func(c *Client) error {
			return c.InstallPlugin(ctx, "node", " https://github.com/asdf-vm/asdf-nodejs.git ")
		}, []string{"plugins", "install", "node", "https://github.com/asdf-vm/asdf-nodejs.git"}},
		{"uninstall plugin", func(c *Client) error { return c.UninstallPlugin(ctx, "node") }, []string{"plugins", "uninstall", "node"}},
		{"update plugins", func(c *Client) error { return c.UpdatePlugins(ctx) }, []string{"plugins", "update"}},
		{"install", func(c *Client) error {
			return c.InstallTool(ctx, "node", InstallOptions{Version: "20"})
		}, []string{"install", "node@20"}},
		{"install forced with backend", func(c *Client) error {
			return c.InstallTool(ctx, "ripgrep", InstallOptions{Backend: "cargo:", Force: true})
		}, []string{"install", "--force", "cargo:ripgrep"}},
		{"install and use locally", func(c *Client) error {
			return c.InstallTool(ctx, "node", InstallOptions{Version: "20", Activate: ActivateLocal, Pin: true})
		}, []string{"use", "--pin", "node@20"}},
		{"install and use globally", func(c *Client) error {
			return c.InstallTool(ctx, "node", InstallOptions{Activate: ActivateGlobal, Pin: true, Force: true})
		}, []string{"use", "--global", "--pin", "--force", "node"}},
		{"prune", func(c *Client) error { _, err := c.Prune(ctx, false); return err }, []string{"prune", "--yes"}},
		{"prune dry run", func(c *Client) error { _, err := c.Prune(ctx, true); return err }, []string{"prune", "--yes", "--dry-run"}},
		{"clean cache", func(c *Client) error { return c.CleanCache(ctx) }, []string{"cache", "clean"}},
		{"update setting", func(c *Client) error { return c.UpdateSetting(ctx, "experimental", "true") }, []string{"settings", "experimental=true"}},
		{"upgrade", func(c *Client) error { return c.UpgradeTool(ctx, "node") }, []string{"upgrade", "node"}},
		{"uninstall version", func(c *Client) error { return c.UninstallVersion(ctx, "node", "18.0.0") }, []string{"uninstall", "node@18.0.0"}},
		{"use", func(c *Client) error { return c.SetToolVersion(ctx, "node", "20", UseOptions{}) }, []string{"use", "node@20"}},
		{"use globally in dir", func(c *Client) error {
			return c.SetToolVersion(ctx, "node", "20", UseOptions{Global: true, Path: "/work"})
		}, []string{"-C", "/work", "use", "--global", "node@20"}},
		{"unuse", func(c *Client) error { return c.UnuseTool(ctx, "node", "") }, []string{"use", "--remove", "node"}},
		{"unuse with path", func(c *Client) error { return c.UnuseTool(ctx, "node", "/work") }, []string{"use", "--remove", "node", "--path", "/work"}},
		{"reshim", func(c *Client) error { return c.Reshim(ctx) }, []string{"reshim"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeExecutor()
			require.NoError(t, tt.call(NewClient(fake)))
			assert.Equal(t, tt.want, fake.lastCall(t))
		})
	}
}

func TestClient_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		call func(c *Client) error
	}{
		{"install plugin", func(c *Client) error { return c.InstallPlugin(ctx, " ", "") }},
		{"uninstall plugin", func(c *Client) error { return c.UninstallPlugin(ctx, "") }},
		{"install tool", func(c *Client) error { return c.InstallTool(ctx, "", InstallOptions{}) }},
		{"update setting", func(c *Client) error { return c.UpdateSetting(ctx, "", "x") }},
		{"upgrade", func(c *Client) error { return c.UpgradeTool(ctx, "") }},
		{"versions", func(c *Client) error { _, err := c.ListAllVersions(ctx, ""); return err }},
		{"uninstall version", func(c *Client) error { return c.UninstallVersion(ctx, "node", "") }},
		{"use", func(c *Client) error { return c.SetToolVersion(ctx, "", "20", UseOptions{}) }},
		{"unuse", func(c *Client) error { return c.UnuseTool(ctx, "", "") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeExecutor()
			err := tt.call(NewClient(fake))
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Empty(t, fake.calls, "mise must not run on invalid input")
		})
	}
}

func TestClient_ListInstalledTools(t *testing.T) {
	fake := newFakeExecutor()
	fake.on("ls --json", `{"python":[{"version":"3.12.2"}],"node":[{"version":"18.0.0"},{"version":"20.11.1","active":true}]}`)

	tools, err := NewClient(fake).ListInstalledTools(context.Background())
	require.NoError(t, err)
	require.Len(t, tools, 2)
	assert.Equal(t, "node", tools[0].Name)
	assert.Equal(t, "20.11.1", tools[0].Versions[0].Version)
}

func TestClient_ListOutdatedTools(t *testing.T) {
	fake := newFakeExecutor()
	fake.on("outdated --json", `{"node":{"current":"20.0.0","latest":"20.11.1"}}`)

	tools, err := NewClient(fake).ListOutdatedTools(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []OutdatedTool{{Name: "node", CurrentVersion: "20.0.0", LatestVersion: "20.11.1"}}, tools)
}

func TestClient_Search(t *testing.T) {
	t.Run("results", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.on("search rip", "ripgrep  fast grep\n")

		entries, err := NewClient(fake).Search(context.Background(), "rip")
		require.NoError(t, err)
		assert.Equal(t, []RegistryEntry{{Name: "ripgrep", Description: "fast grep"}}, entries)
	})

	t.Run("empty query skips mise", func(t *testing.T) {
		fake := newFakeExecutor()

		entries, err := NewClient(fake).Search(context.Background(), "  ")
		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.Empty(t, fake.calls)
	})

	t.Run("exit code 1 means no results", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.fail("search nothing", &CommandError{Command: "mise search nothing", ExitCode: 1})

		entries, err := NewClient(fake).Search(context.Background(), "nothing")
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("other failures propagate", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.fail("search node", &CommandError{Command: "mise search node", ExitCode: 2})

		_, err := NewClient(fake).Search(context.Background(), "node")
		code, ok := ExitCode(err)
		require.True(t, ok)
		assert.Equal(t, 2, code)
	})
}

func TestClient_SearchWithDetails(t *testing.T) {
	registry := &fakeRegistry{entries: []RegistryEntry{
		{Name: "ripgrep", Description: "registry text", Identifier: "cargo:ripgrep", URL: "https://crates.io/crates/ripgrep", Backends: []string{"cargo:ripgrep"}},
	}}

	t.Run("merges registry details", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.on("search rip", "ripgrep fast grep\nrip2 safe rm\n")

		entries, err := NewClient(fake).SearchWithDetails(context.Background(), "rip", registry)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "fast grep", entries[0].Description)
		assert.Equal(t, "https://crates.io/crates/ripgrep", entries[0].URL)
		assert.Equal(t, []string{"cargo:ripgrep"}, entries[0].Backends)
		assert.Equal(t, RegistryEntry{Name: "rip2", Description: "safe rm"}, entries[1])
	})

	t.Run("registry failure keeps plain results", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.on("search rip", "ripgrep fast grep\n")

		entries, err := NewClient(fake).SearchWithDetails(context.Background(), "rip", &fakeRegistry{err: errors.New("offline")})
		require.NoError(t, err)
		assert.Equal(t, []RegistryEntry{{Name: "ripgrep", Description: "fast grep"}}, entries)
	})
}

func TestClient_ListRegistry(t *testing.T) {
	fake := newFakeExecutor()
	fake.on("registry --json", `[{"short":"ripgrep","description":"grep","backends":["aqua:BurntSushi/ripgrep","cargo:ripgrep"]}]`)

	entries, err := NewClient(fake).ListRegistry(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "aqua:BurntSushi/ripgrep", entries[0].Identifier)
	assert.Equal(t, "https://crates.io/crates/ripgrep", entries[0].URL)
}

func TestClient_Lists(t *testing.T) {
	fake := newFakeExecutor()
	fake.on("plugins ls --urls", "node https://github.com/asdf-vm/asdf-nodejs.git\nzig\n")
	fake.on("backends ls", "aqua\ncargo\n\n")
	fake.on("settings", "experimental true ~/.config/mise/config.toml\n")
	fake.on("ls-remote node", "18.0.0\n20.0.0\n")
	fake.on("cache path", "/home/dev/.cache/mise\n")
	fake.on("tasks ls --json", `[{"name":"build","description":"Build it"}]`)
	client := NewClient(fake)
	ctx := context.Background()

	plugins, err := client.ListPlugins(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Plugin{{Name: "node", URL: "https://github.com/asdf-vm/asdf-nodejs.git"}, {Name: "zig"}}, plugins)

	backends, err := client.ListBackends(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Backend{"aqua", "cargo"}, backends)

	settings, err := client.ListSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Setting{{Key: "experimental", Value: "true", Source: "~/.config/mise/config.toml"}}, settings)

	versions, err := client.ListAllVersions(ctx, "node")
	require.NoError(t, err)
	assert.Equal(t, []string{"20.0.0", "18.0.0"}, versions)

	path, err := client.CachePath(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/home/dev/.cache/mise", path)

	tasks, err := client.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Task{{Name: "build", Description: "Build it"}}, tasks)
}

func TestClient_Doctor(t *testing.T) {
	fake := newFakeExecutor()
	fake.on("doctor --json", `{"version":"2024.12.0 macos-arm64","activated":true,"shims_on_path":false,"dirs":{"data":"/home/dev/.local/share/mise"}}`)

	result, err := NewClient(fake).Doctor(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024.12.0 macos-arm64", result.Version)
	assert.True(t, result.Activated)
	assert.Equal(t, "/home/dev/.local/share/mise", result.Dirs.Data)
}

func TestClient_SelfUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("standalone binary", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.binary = "/home/dev/.local/bin/mise"
		client := NewClient(fake)
		client.goos = "linux"

		require.NoError(t, client.SelfUpdate(ctx))
		assert.Empty(t, fake.programs)
		assert.Equal(t, []string{"self-update", "--yes"}, fake.lastCall(t))
	})

	t.Run("homebrew", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.binary = "/opt/homebrew/bin/mise"
		client := NewClient(fake)
		client.goos = "darwin"

		require.NoError(t, client.SelfUpdate(ctx))
		assert.Equal(t, [][]string{{"brew", "list", "mise"}, {"brew", "upgrade", "mise"}}, fake.programs)
		assert.Empty(t, fake.calls)
	})

	t.Run("homebrew failure falls back", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.binary = "/opt/homebrew/bin/mise"
		fake.fail("brew list mise", errors.New("not installed with brew"))
		client := NewClient(fake)
		client.goos = "darwin"

		require.NoError(t, client.SelfUpdate(ctx))
		assert.Equal(t, [][]string{{"brew", "list", "mise"}}, fake.programs)
		assert.Equal(t, []string{"self-update", "--yes"}, fake.lastCall(t))
	})

	t.Run("binary not found", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.binary = ""

		assert.ErrorIs(t, NewClient(fake).SelfUpdate(ctx), ErrBinaryNotFound)
	})
}

func TestClient_ParseErrorsPropagate(t *testing.T) {
	fake := newFakeExecutor()
	fake.on("ls --json", `{"node": [`)

	_, err := NewClient(fake).ListInstalledTools(context.Background())
	require.Error(t, err)
	assert.False(t, IsCommandError(err))
}

func TestParseActivation(t *testing.T) {
	for input, want := range map[string]Activation{"": ActivateNone, "none": ActivateNone, "LOCAL": ActivateLocal, "global": ActivateGlobal} {
		got, err := ParseActivation(input)
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", input)
	}

	_, err := ParseActivation("project")
	assert.True(t, IsValidationError(err))
}

func TestTaskRunCommand(t *testing.T) {
	assert.Equal(t, "mise run build", TaskRunCommand("build"))
}
