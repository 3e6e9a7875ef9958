package mise

import (
	"fmt"
	"strings"
)

// Field synonyms seen across mise releases, in priority order
var (
	outdatedNameKeys      = []string{"tool", "name", "plugin"}
	outdatedCurrentKeys   = []string{"current_version", "current", "installed"}
	outdatedLatestKeys    = []string{"latest_version", "latest", "available"}
	outdatedRequestedKeys = []string{"requested_version", "requested", "wanted"}
)

// outdatedShape recognizes one layout of `mise outdated --json` and returns
// its raw records. ok is false when the payload has a different layout.
type outdatedShape struct {
	name   string
	decode func(payload interface{}) (records []map[string]interface{}, ok bool)
}

// outdatedShapes are tried in order; the first match wins
var outdatedShapes = []outdatedShape{
	{name: "array", decode: decodeOutdatedArray},
	{name: "tools", decode: decodeOutdatedToolsField},
	{name: "map", decode: decodeOutdatedMap},
}

func decodeOutdatedArray(payload interface{}) ([]map[string]interface{}, bool) {
	items, ok := payload.([]interface{})
	if !ok {
		return nil, false
	}
	return objects(items), true
}

func decodeOutdatedToolsField(payload interface{}) ([]map[string]interface{}, bool) {
	obj, ok := payload.(map[string]interface{})
	if !ok {
		return nil, false
	}
	items, ok := obj["tools"].([]interface{})
	if !ok {
		return nil, false
	}
	return objects(items), true
}

// decodeOutdatedMap handles {"node": {...}}; the key becomes the name and
// overrides nothing already present in the record
func decodeOutdatedMap(payload interface{}) ([]map[string]interface{}, bool) {
	obj, ok := payload.(map[string]interface{})
	if !ok {
		return nil, false
	}

	records := make([]map[string]interface{}, 0, len(obj))
	for name, value := range obj {
		entry, ok := value.(map[string]interface{})
		if !ok {
			continue
		}
		record := make(map[string]interface{}, len(entry)+1)
		record["name"] = name
		for k, v := range entry {
			record[k] = v
		}
		records = append(records, record)
	}
	return records, true
}

// ParseOutdatedTools parses `mise outdated --json`. The payload may be an
// array, an object with a "tools" array, or a map keyed by tool name; all
// three normalize to the same records sorted by name.
func ParseOutdatedTools(stdout string) ([]OutdatedTool, error) {
	trimmed := strings.TrimSpace(stdout)
	if trimmed == "" {
		return []OutdatedTool{}, nil
	}

	payload, err := decodeLoose(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse outdated tools: %w", err)
	}

	var records []map[string]interface{}
	for _, shape := range outdatedShapes {
		if decoded, ok := shape.decode(payload); ok {
			records = decoded
			break
		}
	}

	tools := make([]OutdatedTool, 0, len(records))
	for _, record := range records {
		if tool, ok := outdatedToolFrom(record); ok {
			tools = append(tools, tool)
		}
	}

	sortOutdatedTools(tools)
	return tools, nil
}

func outdatedToolFrom(record map[string]interface{}) (OutdatedTool, bool) {
	name := firstString(record, outdatedNameKeys...)
	if name == "" {
		return OutdatedTool{}, false
	}

	return OutdatedTool{
		Name:             name,
		CurrentVersion:   firstString(record, outdatedCurrentKeys...),
		LatestVersion:    firstString(record, outdatedLatestKeys...),
		RequestedVersion: firstString(record, outdatedRequestedKeys...),
		SourcePath:       sourcePath(record),
		InstallPath:      stringField(record, "install_path"),
	}, true
}
