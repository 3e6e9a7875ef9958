package mise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildToolSpec(t *testing.T) {
	tests := []struct {
		name    string
		tool    string
		version string
		backend string
		want    string
	}{
		{name: "bare", tool: "node", want: "node"},
		{name: "trimmed", tool: "  node ", want: "node"},
		{name: "version", tool: "node", version: " 20 ", want: "node@20"},
		{name: "version already present", tool: "node@18", version: "20", want: "node@18"},
		{name: "backend", tool: "ripgrep", backend: "cargo", want: "cargo:ripgrep"},
		{name: "backend trailing colon", tool: "ripgrep", backend: "cargo:", want: "cargo:ripgrep"},
		{name: "backend and version", tool: "ripgrep", version: "14.1.0", backend: "cargo", want: "cargo:ripgrep@14.1.0"},
		{name: "backend already in name", tool: "npm:prettier", version: "3", backend: "cargo", want: "npm:prettier@3"},
		{name: "blank backend", tool: "node", backend: "  ", want: "node"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildToolSpec(tt.tool, tt.version, tt.backend))
		})
	}
}

func TestIsHomebrewBinary(t *testing.T) {
	tests := []struct {
		binary string
		goos   string
		want   bool
	}{
		{binary: "/opt/homebrew/bin/mise", goos: "darwin", want: true},
		{binary: "/usr/local/Cellar/mise/2024.12.0/bin/mise", goos: "darwin", want: true},
		{binary: "/home/linuxbrew/.linuxbrew/bin/mise", goos: "linux", want: true},
		{binary: "/home/dev/.local/bin/mise", goos: "linux", want: false},
		{binary: "/opt/homebrew/bin/mise", goos: "windows", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.binary+"_"+tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHomebrewBinary(tt.binary, tt.goos))
		})
	}
}
