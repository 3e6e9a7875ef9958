package mise

import (
	"fmt"
	"strings"
)

// nonEmptyLines returns the trimmed, non-blank lines of s
func nonEmptyLines(s string) []string {
	lines := []string{}
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// ParsePlugins parses `mise plugins ls --urls`: a name optionally followed by a git URL
func ParsePlugins(stdout string) []Plugin {
	plugins := []Plugin{}
	for _, line := range nonEmptyLines(stdout) {
		fields := strings.Fields(line)
		plugins = append(plugins, Plugin{
			Name: fields[0],
			URL:  strings.Join(fields[1:], " "),
		})
	}
	return plugins
}

// ParseBackends parses `mise backends ls`
func ParseBackends(stdout string) []Backend {
	return nonEmptyLines(stdout)
}

// ParseSettings parses `mise settings`. Lines look like
// "key value [source]" or "key = value [source]".
func ParseSettings(stdout string) []Setting {
	settings := []Setting{}
	for _, line := range nonEmptyLines(stdout) {
		fields := strings.Fields(line)
		if len(fields) > 1 && fields[1] == "=" {
			fields = append(fields[:1], fields[2:]...)
		}

		setting := Setting{Key: fields[0]}
		if len(fields) > 1 {
			setting.Value = fields[1]
		}
		if len(fields) > 2 {
			setting.Source = strings.Join(fields[2:], " ")
		}
		settings = append(settings, setting)
	}
	return settings
}

// ParseRemoteVersions parses `mise ls-remote`, newest first
func ParseRemoteVersions(stdout string) []string {
	versions := nonEmptyLines(stdout)
	for i, j := 0, len(versions)-1; i < j; i, j = i+1, j-1 {
		versions[i], versions[j] = versions[j], versions[i]
	}
	return versions
}

// SummarizePrune condenses `mise prune` output into one status line
func SummarizePrune(stdout string) string {
	lines := nonEmptyLines(stdout)
	if len(lines) == 0 {
		return "No files removed."
	}
	if len(lines) <= 2 {
		return strings.Join(lines, " · ")
	}
	return fmt.Sprintf("%s · +%d more", strings.Join(lines[:2], " · "), len(lines)-2)
}

// ParseTasks parses `mise tasks ls --json`
func ParseTasks(stdout string) ([]Task, error) {
	trimmed := strings.TrimSpace(stdout)
	if trimmed == "" {
		return []Task{}, nil
	}

	var tasks []Task
	if err := decodeStrict(trimmed, &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse tasks: %w", err)
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

// ParseDoctor parses `mise doctor --json`
func ParseDoctor(stdout string) (*DoctorResult, error) {
	var result DoctorResult
	if err := decodeStrict(stdout, &result); err != nil {
		return nil, fmt.Errorf("failed to parse doctor report: %w", err)
	}
	return &result, nil
}
