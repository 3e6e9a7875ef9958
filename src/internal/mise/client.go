package mise

import (
	"context"
	"runtime"
	"strings"

	"github.com/misectl/misectl/src/internal/ui"
)

// Activation decides whether an install also records the version in a config file
type Activation string

// Activation modes for InstallTool
const (
	ActivateNone   Activation = "none"
	ActivateLocal  Activation = "local"
	ActivateGlobal Activation = "global"
)

// ParseActivation validates an activation name; empty means none
func ParseActivation(name string) (Activation, error) {
	switch Activation(strings.ToLower(name)) {
	case "", ActivateNone:
		return ActivateNone, nil
	case ActivateLocal:
		return ActivateLocal, nil
	case ActivateGlobal:
		return ActivateGlobal, nil
	}
	return "", &ValidationError{Field: "activation", Reason: "must be one of none, local, global"}
}

// InstallOptions controls InstallTool
type InstallOptions struct {
	Version  string
	Backend  string
	Activate Activation
	Pin      bool // Only with local or global activation
	Force    bool
}

// UseOptions controls SetToolVersion
type UseOptions struct {
	Global bool
	Path   string // Project directory; empty uses the current one
}

// Client exposes one method per mise operation
type Client struct {
	exec Executor
	goos string
}

// NewClient creates a Client running commands through exec
func NewClient(exec Executor) *Client {
	return &Client{exec: exec, goos: runtime.GOOS}
}

func (c *Client) run(ctx context.Context, args ...string) (*Result, error) {
	return c.exec.Run(ctx, args, RunOptions{})
}

func requireValue(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Reason: "must not be empty"}
	}
	return nil
}

// ListInstalledTools runs `mise ls --json`
func (c *Client) ListInstalledTools(ctx context.Context) ([]InstalledTool, error) {
	result, err := c.run(ctx, "ls", "--json")
	if err != nil {
		return nil, err
	}
	return ParseInstalledTools(result.Stdout)
}

// ListOutdatedTools runs `mise outdated --json`
func (c *Client) ListOutdatedTools(ctx context.Context) ([]OutdatedTool, error) {
	result, err := c.run(ctx, "outdated", "--json")
	if err != nil {
		return nil, err
	}
	return ParseOutdatedTools(result.Stdout)
}

// Search runs `mise search <query>`. mise exits with 1 when nothing
// matches, which is reported as an empty result.
func (c *Client) Search(ctx context.Context, query string) ([]RegistryEntry, error) {
	if strings.TrimSpace(query) == "" {
		return []RegistryEntry{}, nil
	}

	result, err := c.run(ctx, "search", query)
	if err != nil {
		if code, ok := ExitCode(err); ok && code == 1 {
			return []RegistryEntry{}, nil
		}
		return nil, err
	}
	return ParseSearchResults(result.Stdout), nil
}

// SearchWithDetails searches and fills in descriptions, URLs and backends
// from the registry. A registry failure degrades to plain search results.
func (c *Client) SearchWithDetails(ctx context.Context, query string, registry RegistryLister) ([]RegistryEntry, error) {
	results, err := c.Search(ctx, query)
	if err != nil || len(results) == 0 || registry == nil {
		return results, err
	}

	entries, err := registry.ListRegistry(ctx)
	if err != nil {
		ui.Debug("registry lookup failed, showing plain results: %v", err)
		return results, nil
	}
	return MergeSearchResults(results, entries), nil
}

// ListRegistry runs `mise registry --json`
func (c *Client) ListRegistry(ctx context.Context) ([]RegistryEntry, error) {
	result, err := c.run(ctx, "registry", "--json")
	if err != nil {
		return nil, err
	}
	return ParseRegistry(result.Stdout)
}

// ListPlugins runs `mise plugins ls --urls`
func (c *Client) ListPlugins(ctx context.Context) ([]Plugin, error) {
	result, err := c.run(ctx, "plugins", "ls", "--urls")
	if err != nil {
		return nil, err
	}
	return ParsePlugins(result.Stdout), nil
}

// InstallPlugin runs `mise plugins install <name> [url]`
func (c *Client) InstallPlugin(ctx context.Context, name, url string) error {
	if err := requireValue("plugin name", name); err != nil {
		return err
	}

	args := []string{"plugins", "install", strings.TrimSpace(name)}
	if url = strings.TrimSpace(url); url != "" {
		args = append(args, url)
	}
	_, err := c.run(ctx, args...)
	return err
}

// UninstallPlugin runs `mise plugins uninstall <name>`
func (c *Client) UninstallPlugin(ctx context.Context, name string) error {
	if err := requireValue("plugin name", name); err != nil {
		return err
	}
	_, err := c.run(ctx, "plugins", "uninstall", strings.TrimSpace(name))
	return err
}

// UpdatePlugins runs `mise plugins update`
func (c *Client) UpdatePlugins(ctx context.Context) error {
	_, err := c.run(ctx, "plugins", "update")
	return err
}

// ListBackends runs `mise backends ls`
func (c *Client) ListBackends(ctx context.Context) ([]Backend, error) {
	result, err := c.run(ctx, "backends", "ls")
	if err != nil {
		return nil, err
	}
	return ParseBackends(result.Stdout), nil
}

// InstallTool installs a tool. With local or global activation it runs
// `mise use`, which installs and records the version in one step.
func (c *Client) InstallTool(ctx context.Context, name string, opts InstallOptions) error {
	if err := requireValue("tool name", name); err != nil {
		return err
	}

	spec := BuildToolSpec(name, opts.Version, opts.Backend)

	if opts.Activate == ActivateLocal || opts.Activate == ActivateGlobal {
		args := []string{"use"}
		if opts.Activate == ActivateGlobal {
			args = append(args, "--global")
		}
		if opts.Pin {
			args = append(args, "--pin")
		}
		if opts.Force {
			args = append(args, "--force")
		}
		_, err := c.run(ctx, append(args, spec)...)
		return err
	}

	args := []string{"install"}
	if opts.Force {
		args = append(args, "--force")
	}
	_, err := c.run(ctx, append(args, spec)...)
	return err
}

// Prune runs `mise prune --yes`, optionally as a dry run
func (c *Client) Prune(ctx context.Context, dryRun bool) (*Result, error) {
	args := []string{"prune", "--yes"}
	if dryRun {
		args = append(args, "--dry-run")
	}
	return c.run(ctx, args...)
}

// CachePath returns the mise cache directory
func (c *Client) CachePath(ctx context.Context) (string, error) {
	result, err := c.run(ctx, "cache", "path")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result.Stdout), nil
}

// CleanCache runs `mise cache clean`
func (c *Client) CleanCache(ctx context.Context) error {
	_, err := c.run(ctx, "cache", "clean")
	return err
}

// Doctor runs `mise doctor --json`
func (c *Client) Doctor(ctx context.Context) (*DoctorResult, error) {
	result, err := c.run(ctx, "doctor", "--json")
	if err != nil {
		return nil, err
	}
	return ParseDoctor(result.Stdout)
}

// ListSettings runs `mise settings`
func (c *Client) ListSettings(ctx context.Context) ([]Setting, error) {
	result, err := c.run(ctx, "settings")
	if err != nil {
		return nil, err
	}
	return ParseSettings(result.Stdout), nil
}

// UpdateSetting runs `mise settings <key>=<value>`
func (c *Client) UpdateSetting(ctx context.Context, key, value string) error {
	if err := requireValue("setting key", key); err != nil {
		return err
	}
	_, err := c.run(ctx, "settings", strings.TrimSpace(key)+"="+value)
	return err
}

// UpgradeTool runs `mise upgrade <name>`
func (c *Client) UpgradeTool(ctx context.Context, name string) error {
	if err := requireValue("tool name", name); err != nil {
		return err
	}
	_, err := c.run(ctx, "upgrade", strings.TrimSpace(name))
	return err
}

// SelfUpdate upgrades mise itself. Homebrew installs are upgraded through
// brew; anything else, or a failed brew upgrade, uses `mise self-update`.
func (c *Client) SelfUpdate(ctx context.Context) error {
	binary, err := c.exec.BinaryPath()
	if err != nil {
		return err
	}

	if IsHomebrewBinary(binary, c.goos) {
		brewErr := c.brewUpgrade(ctx)
		if brewErr == nil {
			return nil
		}
		ui.Debug("brew upgrade failed, falling back to self-update: %v", brewErr)
	}

	_, err = c.run(ctx, "self-update", "--yes")
	return err
}

func (c *Client) brewUpgrade(ctx context.Context) error {
	if _, err := c.exec.RunProgram(ctx, "brew", []string{"list", "mise"}, RunOptions{}); err != nil {
		return err
	}
	_, err := c.exec.RunProgram(ctx, "brew", []string{"upgrade", "mise"}, RunOptions{})
	return err
}

// ListAllVersions runs `mise ls-remote <name>`, newest first
func (c *Client) ListAllVersions(ctx context.Context, name string) ([]string, error) {
	if err := requireValue("tool name", name); err != nil {
		return nil, err
	}
	result, err := c.run(ctx, "ls-remote", strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	return ParseRemoteVersions(result.Stdout), nil
}

// UninstallVersion runs `mise uninstall <name>@<version>`
func (c *Client) UninstallVersion(ctx context.Context, name, version string) error {
	if err := requireValue("tool name", name); err != nil {
		return err
	}
	if err := requireValue("version", version); err != nil {
		return err
	}
	_, err := c.run(ctx, "uninstall", strings.TrimSpace(name)+"@"+strings.TrimSpace(version))
	return err
}

// SetToolVersion runs `mise use` for name@version, in opts.Path when set
func (c *Client) SetToolVersion(ctx context.Context, name, version string, opts UseOptions) error {
	if err := requireValue("tool name", name); err != nil {
		return err
	}
	if err := requireValue("version", version); err != nil {
		return err
	}

	var args []string
	if opts.Path != "" {
		args = append(args, "-C", opts.Path)
	}
	args = append(args, "use")
	if opts.Global {
		args = append(args, "--global")
	}
	_, err := c.run(ctx, append(args, strings.TrimSpace(name)+"@"+strings.TrimSpace(version))...)
	return err
}

// UnuseTool runs `mise use --remove <name>`, against the config in path when set
func (c *Client) UnuseTool(ctx context.Context, name, path string) error {
	if err := requireValue("tool name", name); err != nil {
		return err
	}

	args := []string{"use", "--remove", strings.TrimSpace(name)}
	if path != "" {
		args = append(args, "--path", path)
	}
	_, err := c.run(ctx, args...)
	return err
}

// ListTasks runs `mise tasks ls --json`
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	result, err := c.run(ctx, "tasks", "ls", "--json")
	if err != nil {
		return nil, err
	}
	return ParseTasks(result.Stdout)
}

// TaskRunCommand returns the shell command that runs a task
func TaskRunCommand(name string) string {
	return "mise run " + name
}

// Reshim runs `mise reshim`
func (c *Client) Reshim(ctx context.Context) error {
	_, err := c.run(ctx, "reshim")
	return err
}
