package path

import (
	"os"
	"strings"
	"testing"
)

// joinList joins entries with the platform list separator
func joinList(entries ...string) string {
	return strings.Join(entries, string(os.PathListSeparator))
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		pathEnv string
		want    []string
	}{
		{name: "empty", pathEnv: "", want: []string{}},
		{name: "single", pathEnv: "/usr/bin", want: []string{"/usr/bin"}},
		{name: "skips empty entries", pathEnv: joinList("/usr/bin", "", "/bin"), want: []string{"/usr/bin", "/bin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.pathEnv)
			if len(got) != len(tt.want) {
				t.Fatalf("Split(%q) = %v, want %v", tt.pathEnv, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Split(%q)[%d] = %q, want %q", tt.pathEnv, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPrepend(t *testing.T) {
	tests := []struct {
		name    string
		pathEnv string
		dirs    []string
		want    string
	}{
		{
			name:    "dirs before existing",
			pathEnv: joinList("/home/me/bin"),
			dirs:    []string{"/opt/homebrew/bin", "/usr/bin"},
			want:    joinList("/opt/homebrew/bin", "/usr/bin", "/home/me/bin"),
		},
		{
			name:    "empty existing",
			pathEnv: "",
			dirs:    []string{"/usr/bin"},
			want:    "/usr/bin",
		},
		{
			name:    "no dirs",
			pathEnv: "/usr/bin",
			dirs:    nil,
			want:    "/usr/bin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Prepend(tt.pathEnv, tt.dirs...); got != tt.want {
				t.Errorf("Prepend(%q, %v) = %q, want %q", tt.pathEnv, tt.dirs, got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	pathEnv := joinList("/usr/bin", "/path with spaces", "/usr/local/bin/")

	tests := []struct {
		dir  string
		want bool
	}{
		{dir: "/usr/bin", want: true},
		{dir: "/path with spaces", want: true},
		{dir: "/usr/local/bin", want: true},
		{dir: "/nonexistent", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			if got := Contains(pathEnv, tt.dir); got != tt.want {
				t.Errorf("Contains(%q, %q) = %v, want %v", pathEnv, tt.dir, got, tt.want)
			}
		})
	}
}

func TestIsInPath(t *testing.T) {
	t.Setenv("PATH", joinList("/usr/bin", "/bin"))

	if !IsInPath("/usr/bin") {
		t.Error("IsInPath(/usr/bin) = false, want true")
	}
	if IsInPath("/opt/homebrew/bin") {
		t.Error("IsInPath(/opt/homebrew/bin) = true, want false")
	}
}
