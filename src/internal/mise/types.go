// Package mise wraps the external mise binary: it locates the executable,
// runs it with a non-interactive environment and parses its JSON and text
// output into typed records.
package mise

// ToolVersion is one version of a tool as reported by `mise ls --json`
type ToolVersion struct {
	Version          string `json:"version" yaml:"version"`
	RequestedVersion string `json:"requested_version,omitempty" yaml:"requested_version,omitempty"`
	InstallPath      string `json:"install_path,omitempty" yaml:"install_path,omitempty"`
	SourcePath       string `json:"source_path,omitempty" yaml:"source_path,omitempty"`
	Active           bool   `json:"active" yaml:"active"`
	Installed        bool   `json:"installed" yaml:"installed"`
}

// InstalledTool groups the versions of a single tool
type InstalledTool struct {
	Name     string        `json:"name" yaml:"name"`
	Versions []ToolVersion `json:"versions" yaml:"versions"`
}

// OutdatedTool is a tool whose installed version lags behind the latest
type OutdatedTool struct {
	Name             string `json:"name" yaml:"name"`
	CurrentVersion   string `json:"current_version" yaml:"current_version"`
	LatestVersion    string `json:"latest_version" yaml:"latest_version"`
	RequestedVersion string `json:"requested_version,omitempty" yaml:"requested_version,omitempty"`
	SourcePath       string `json:"source_path,omitempty" yaml:"source_path,omitempty"`
	InstallPath      string `json:"install_path,omitempty" yaml:"install_path,omitempty"`
}

// Plugin is an installed plugin and the git URL it was installed from
type Plugin struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

// RegistryEntry is a tool from the mise registry
type RegistryEntry struct {
	Name        string   `json:"name" yaml:"name"`
	Identifier  string   `json:"identifier,omitempty" yaml:"identifier,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`
	Backends    []string `json:"backends,omitempty" yaml:"backends,omitempty"`
}

// Backend is a package source type such as cargo, npm or core
type Backend = string

// Setting is a single mise configuration key
type Setting struct {
	Key    string `json:"key" yaml:"key"`
	Value  string `json:"value" yaml:"value"`
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

// Task is a task defined in a mise.toml
type Task struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Source      string   `json:"source,omitempty" yaml:"source,omitempty"`
	Aliases     []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Depends     []string `json:"depends,omitempty" yaml:"depends,omitempty"`
}

// DoctorResult is the diagnostic snapshot printed by `mise doctor --json`
type DoctorResult struct {
	Version             string                         `json:"version" yaml:"version"`
	Activated           bool                           `json:"activated" yaml:"activated"`
	Aqua                *DoctorAqua                    `json:"aqua,omitempty" yaml:"aqua,omitempty"`
	BuildInfo           DoctorBuildInfo                `json:"build_info" yaml:"build_info"`
	ConfigFiles         []string                       `json:"config_files" yaml:"config_files"`
	Dirs                DoctorDirs                     `json:"dirs" yaml:"dirs"`
	EnvVars             map[string]string              `json:"env_vars" yaml:"env_vars"`
	IgnoredConfigFiles  []string                       `json:"ignored_config_files" yaml:"ignored_config_files"`
	Paths               []string                       `json:"paths" yaml:"paths"`
	SelfUpdateAvailable bool                           `json:"self_update_available" yaml:"self_update_available"`
	Settings            map[string]interface{}         `json:"settings" yaml:"settings"`
	Shell               DoctorShell                    `json:"shell" yaml:"shell"`
	ShimsOnPath         bool                           `json:"shims_on_path" yaml:"shims_on_path"`
	Toolset             map[string][]DoctorToolVersion `json:"toolset" yaml:"toolset"`
}

// DoctorAqua reports the aqua registry baked into the binary
type DoctorAqua struct {
	BakedInRegistryTools int `json:"baked_in_registry_tools" yaml:"baked_in_registry_tools"`
}

// DoctorBuildInfo describes how the mise binary was built
type DoctorBuildInfo struct {
	Target      string `json:"target" yaml:"target"`
	Features    string `json:"features" yaml:"features"`
	Built       string `json:"built" yaml:"built"`
	RustVersion string `json:"rust_version" yaml:"rust_version"`
	Profile     string `json:"profile" yaml:"profile"`
}

// DoctorDirs lists the directories mise uses
type DoctorDirs struct {
	Cache  string `json:"cache" yaml:"cache"`
	Config string `json:"config" yaml:"config"`
	Data   string `json:"data" yaml:"data"`
	Shims  string `json:"shims" yaml:"shims"`
	State  string `json:"state" yaml:"state"`
}

// DoctorShell is the detected shell
type DoctorShell struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// DoctorToolVersion is a toolset member in the doctor report
type DoctorToolVersion struct {
	Version string `json:"version" yaml:"version"`
}
