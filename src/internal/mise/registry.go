package mise

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// RegistryLister lists the full mise registry
type RegistryLister interface {
	ListRegistry(ctx context.Context) ([]RegistryEntry, error)
}

// recommendedTools are surfaced before a search query is typed.
// The value is the registry name when it differs from the display name.
var recommendedTools = []struct {
	display  string
	registry string
}{
	{display: "cargo-binstall", registry: "cargo-binstall"},
	{display: "jdx/usage", registry: "usage"},
	{display: "sccache", registry: "sccache"},
}

// ParseSearchResults parses `mise search` output: one tool per line, the
// name followed by a free-text description
func ParseSearchResults(stdout string) []RegistryEntry {
	seen := make(map[string]bool)
	entries := []RegistryEntry{}

	for _, line := range strings.Split(stdout, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		name := fields[0]
		if len(entries) == 0 && isSearchHeader(name) {
			continue
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		entries = append(entries, RegistryEntry{
			Name:        name,
			Description: strings.Join(fields[1:], " "),
		})
	}
	return entries
}

func isSearchHeader(name string) bool {
	lower := strings.ToLower(name)
	return lower == "name" || lower == "tool"
}

type registryRecord struct {
	Short       string   `json:"short"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Backends    []string `json:"backends"`
}

// ParseRegistry parses `mise registry --json`. Entries without a name are
// skipped and a JSON value other than an array yields no entries.
func ParseRegistry(stdout string) ([]RegistryEntry, error) {
	var raw json.RawMessage
	if err := decodeStrict(stdout, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse registry: %w", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(raw)), "[") {
		return []RegistryEntry{}, nil
	}

	var records []registryRecord
	if err := decodeStrict(string(raw), &records); err != nil {
		return nil, fmt.Errorf("failed to parse registry: %w", err)
	}

	entries := make([]RegistryEntry, 0, len(records))
	for _, record := range records {
		name := record.Short
		if name == "" {
			name = record.Name
		}
		if name == "" {
			continue
		}

		backends := record.Backends
		if backends == nil {
			backends = []string{}
		}

		entry := RegistryEntry{
			Name:        name,
			Description: record.Description,
			Backends:    backends,
			URL:         DeriveToolURL(backends),
		}
		if len(backends) > 0 {
			entry.Identifier = backends[0]
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// MergeRegistryEntry fills the gaps in a search result from the full
// registry entry. Fields already set on search are kept.
func MergeRegistryEntry(search RegistryEntry, full RegistryEntry) RegistryEntry {
	merged := search
	if merged.Identifier == "" {
		merged.Identifier = full.Identifier
	}
	if merged.Description == "" {
		merged.Description = full.Description
	}
	if merged.URL == "" {
		merged.URL = full.URL
	}
	if len(merged.Backends) == 0 && len(full.Backends) > 0 {
		merged.Backends = append([]string(nil), full.Backends...)
	}
	return merged
}

// MergeSearchResults merges each search result with the registry entry of
// the same name, if there is one
func MergeSearchResults(results, registry []RegistryEntry) []RegistryEntry {
	byName := indexRegistry(registry)
	merged := make([]RegistryEntry, 0, len(results))
	for _, result := range results {
		if full, ok := byName[result.Name]; ok {
			result = MergeRegistryEntry(result, full)
		}
		merged = append(merged, result)
	}
	return merged
}

// RecommendedTools returns the featured tools, decorated from registry where
// an entry exists
func RecommendedTools(registry []RegistryEntry) []RegistryEntry {
	byName := indexRegistry(registry)
	tools := make([]RegistryEntry, 0, len(recommendedTools))
	for _, rec := range recommendedTools {
		entry := RegistryEntry{Name: rec.display}
		if full, ok := byName[rec.registry]; ok {
			entry = MergeRegistryEntry(entry, full)
		}
		tools = append(tools, entry)
	}
	return tools
}

// FilterRegistry keeps entries whose name, description or backends contain
// query, case-insensitively
func FilterRegistry(entries []RegistryEntry, query string) []RegistryEntry {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return entries
	}

	result := []RegistryEntry{}
	for _, entry := range entries {
		haystack := strings.ToLower(entry.Name + " " + entry.Description + " " + strings.Join(entry.Backends, " "))
		if strings.Contains(haystack, needle) {
			result = append(result, entry)
		}
	}
	return result
}

// FindRegistryEntry looks up an entry by name
func FindRegistryEntry(entries []RegistryEntry, name string) (RegistryEntry, bool) {
	for _, entry := range entries {
		if entry.Name == name {
			return entry, true
		}
	}
	return RegistryEntry{}, false
}

func indexRegistry(entries []RegistryEntry) map[string]RegistryEntry {
	byName := make(map[string]RegistryEntry, len(entries))
	for _, entry := range entries {
		if _, exists := byName[entry.Name]; !exists {
			byName[entry.Name] = entry
		}
	}
	return byName
}
