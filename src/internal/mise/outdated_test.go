package mise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutdatedTools_ShapesNormalizeIdentically(t *testing.T) {
	want := []OutdatedTool{
		{
			Name:             "node",
			CurrentVersion:   "20.0.0",
			LatestVersion:    "20.11.1",
			RequestedVersion: "20",
			SourcePath:       "/work/mise.toml",
			InstallPath:      "/data/node/20.0.0",
		},
		{Name: "python", CurrentVersion: "3.11.0", LatestVersion: "3.12.2"},
	}

	shapes := map[string]string{
		"array": `[
			{"name": "python", "current": "3.11.0", "latest": "3.12.2"},
			{"name": "node", "current": "20.0.0", "latest": "20.11.1", "requested": "20",
			 "source": {"path": "/work/mise.toml"}, "install_path": "/data/node/20.0.0"}
		]`,
		"tools object": `{"tools": [
			{"tool": "node", "current_version": "20.0.0", "latest_version": "20.11.1", "requested_version": "20",
			 "source": {"path": "/work/mise.toml"}, "install_path": "/data/node/20.0.0"},
			{"plugin": "python", "installed": "3.11.0", "available": "3.12.2"}
		]}`,
		"flat map": `{
			"python": {"current": "3.11.0", "latest": "3.12.2"},
			"node": {"current": "20.0.0", "latest": "20.11.1", "wanted": "20",
			 "source": {"path": "/work/mise.toml"}, "install_path": "/data/node/20.0.0"}
		}`,
	}

	for name, stdout := range shapes {
		t.Run(name, func(t *testing.T) {
			got, err := ParseOutdatedTools(stdout)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseOutdatedTools_SynonymPriority(t *testing.T) {
	got, err := ParseOutdatedTools(`[{"tool": "node", "name": "ignored", "current_version": "", "current": "18", "latest": 20}]`)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "node", got[0].Name)
	assert.Equal(t, "18", got[0].CurrentVersion)
	assert.Empty(t, got[0].LatestVersion, "non-string values are ignored")
}

func TestParseOutdatedTools_DropsUnnamed(t *testing.T) {
	got, err := ParseOutdatedTools(`[{"current": "1.0.0"}, {"name": ""}, 5, {"name": "zig", "latest": "0.13.0"}]`)
	require.NoError(t, err)
	assert.Equal(t, []OutdatedTool{{Name: "zig", LatestVersion: "0.13.0"}}, got)
}

func TestParseOutdatedTools_Empty(t *testing.T) {
	for _, input := range []string{"", "\n", "{}", "[]", `"nothing"`} {
		got, err := ParseOutdatedTools(input)
		require.NoError(t, err, "input %q", input)
		assert.Empty(t, got, "input %q", input)
	}
}

func TestParseOutdatedTools_Malformed(t *testing.T) {
	_, err := ParseOutdatedTools(`[{"name": "node"`)
	assert.Error(t, err)
}

func TestOutdatedShapes_Order(t *testing.T) {
	var names []string
	for _, shape := range outdatedShapes {
		names = append(names, shape.name)
	}
	assert.Equal(t, []string{"array", "tools", "map"}, names)

	// A "tools" key that is not an array falls through to the flat map
	records, ok := decodeOutdatedToolsField(map[string]interface{}{"tools": map[string]interface{}{}})
	assert.False(t, ok)
	assert.Nil(t, records)
}
