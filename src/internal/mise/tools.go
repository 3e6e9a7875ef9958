package mise

import (
	"fmt"
	"sort"
	"strings"
)

// Config scopes reported by ToolVersion.ConfigScope
const (
	ScopeGlobal = "global"
	ScopeLocal  = "local"
)

// ParseInstalledTools parses `mise ls --json`: an object of tool name to an
// array of version records
func ParseInstalledTools(stdout string) ([]InstalledTool, error) {
	trimmed := strings.TrimSpace(stdout)
	if trimmed == "" {
		return []InstalledTool{}, nil
	}

	parsed, err := decodeLoose(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse installed tools: %w", err)
	}

	byName, ok := parsed.(map[string]interface{})
	if !ok {
		return []InstalledTool{}, nil
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	tools := make([]InstalledTool, 0, len(byName))
	for _, name := range names {
		entries, ok := byName[name].([]interface{})
		if !ok {
			continue
		}

		versions := make([]ToolVersion, 0, len(entries))
		for _, entry := range objects(entries) {
			versions = append(versions, toolVersionFrom(entry))
		}
		sortToolVersions(versions)

		tools = append(tools, InstalledTool{Name: name, Versions: versions})
	}

	sortInstalledTools(tools)
	return tools, nil
}

func toolVersionFrom(entry map[string]interface{}) ToolVersion {
	installed := true
	if value, ok := entry["installed"]; ok {
		installed = truthy(value)
	}

	return ToolVersion{
		Version:          stringify(entry["version"]),
		RequestedVersion: stringField(entry, "requested_version"),
		InstallPath:      stringField(entry, "install_path"),
		SourcePath:       sourcePath(entry),
		Active:           truthy(entry["active"]),
		Installed:        installed,
	}
}

// ConfigScope reports whether the version comes from the global config
// (a config.toml) or a project file. Empty when mise gave no source.
func (v ToolVersion) ConfigScope() string {
	if v.SourcePath == "" {
		return ""
	}
	if strings.Contains(v.SourcePath, "config.toml") {
		return ScopeGlobal
	}
	return ScopeLocal
}

// Tag is a short label describing how the version was requested
func (v ToolVersion) Tag() string {
	switch {
	case v.RequestedVersion == "":
		return ""
	case v.RequestedVersion == v.Version:
		return "Pinned"
	default:
		return "Requested " + v.RequestedVersion
	}
}

// ActiveVersion returns the active version of tool, if any
func (t InstalledTool) ActiveVersion() (ToolVersion, bool) {
	for _, v := range t.Versions {
		if v.Active {
			return v, true
		}
	}
	return ToolVersion{}, false
}

// CurrentVersion is the active version, else the highest installed one
func (t InstalledTool) CurrentVersion() string {
	if active, ok := t.ActiveVersion(); ok {
		return active.Version
	}
	return LatestInstalledVersion(t)
}

// InstalledFilter narrows an installed tool listing
type InstalledFilter string

// Installed tool filters
const (
	FilterAll      InstalledFilter = "all"
	FilterActive   InstalledFilter = "active"
	FilterGlobal   InstalledFilter = "global"
	FilterLocal    InstalledFilter = "local"
	FilterMultiple InstalledFilter = "multiple"
	FilterUnused   InstalledFilter = "unused"
)

// InstalledFilters lists the accepted filter names
var InstalledFilters = []InstalledFilter{FilterAll, FilterActive, FilterGlobal, FilterLocal, FilterMultiple, FilterUnused}

// ParseInstalledFilter validates a filter name; empty means all
func ParseInstalledFilter(name string) (InstalledFilter, error) {
	if name == "" {
		return FilterAll, nil
	}
	for _, f := range InstalledFilters {
		if string(f) == strings.ToLower(name) {
			return f, nil
		}
	}
	return "", &ValidationError{Field: "filter", Reason: fmt.Sprintf("must be one of %v", InstalledFilters)}
}

// FilterInstalledTools keeps the versions matching filter and drops tools
// left without any. FilterMultiple keeps whole tools with more than one version.
func FilterInstalledTools(tools []InstalledTool, filter InstalledFilter) []InstalledTool {
	result := make([]InstalledTool, 0, len(tools))
	for _, tool := range tools {
		if filter == FilterMultiple {
			if len(tool.Versions) > 1 {
				result = append(result, tool)
			}
			continue
		}

		versions := make([]ToolVersion, 0, len(tool.Versions))
		for _, v := range tool.Versions {
			if matchesFilter(v, filter) {
				versions = append(versions, v)
			}
		}
		if len(versions) == 0 {
			continue
		}
		result = append(result, InstalledTool{Name: tool.Name, Versions: versions})
	}
	return result
}

func matchesFilter(v ToolVersion, filter InstalledFilter) bool {
	switch filter {
	case FilterActive:
		return v.Active
	case FilterGlobal:
		return v.ConfigScope() == ScopeGlobal
	case FilterLocal:
		return v.ConfigScope() == ScopeLocal
	case FilterUnused:
		return !v.Active && v.RequestedVersion == ""
	default:
		return true
	}
}
