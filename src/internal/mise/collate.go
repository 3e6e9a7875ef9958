package mise

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collators are not safe for concurrent use, so each call builds its own.

func newVersionCollator() *collate.Collator {
	return collate.New(language.Und, collate.Numeric)
}

func newNameCollator() *collate.Collator {
	return collate.New(language.Und)
}

// CompareVersions orders version strings by locale-aware numeric comparison,
// so "1.10.0" sorts after "1.9.2". This is not semver precedence.
func CompareVersions(a, b string) int {
	return newVersionCollator().CompareString(a, b)
}

// sortToolVersions puts active versions first, then orders by version
func sortToolVersions(versions []ToolVersion) {
	c := newVersionCollator()
	sort.SliceStable(versions, func(i, j int) bool {
		if versions[i].Active != versions[j].Active {
			return versions[i].Active
		}
		return c.CompareString(versions[i].Version, versions[j].Version) < 0
	})
}

func sortInstalledTools(tools []InstalledTool) {
	c := newNameCollator()
	sort.SliceStable(tools, func(i, j int) bool {
		return c.CompareString(tools[i].Name, tools[j].Name) < 0
	})
}

func sortOutdatedTools(tools []OutdatedTool) {
	c := newNameCollator()
	sort.SliceStable(tools, func(i, j int) bool {
		return c.CompareString(tools[i].Name, tools[j].Name) < 0
	})
}

// LatestInstalledVersion returns the highest installed version of tool, or ""
func LatestInstalledVersion(tool InstalledTool) string {
	latest := ""
	for _, v := range tool.Versions {
		if !v.Installed || v.Version == "" {
			continue
		}
		if latest == "" || CompareVersions(v.Version, latest) > 0 {
			latest = v.Version
		}
	}
	return latest
}
