package mise

import (
	"strings"

	"github.com/misectl/misectl/src/internal/constants"
)

// BuildToolSpec assembles the argument mise expects for install and use:
// backend:name@version, name@version or just name. A name that already
// carries a backend or version is left alone.
func BuildToolSpec(name, version, backend string) string {
	name = strings.TrimSpace(name)
	version = strings.TrimSpace(version)
	backend = strings.TrimSuffix(strings.TrimSpace(backend), ":")

	if backend != "" && !strings.Contains(name, ":") {
		if version != "" {
			return backend + ":" + name + "@" + version
		}
		return backend + ":" + name
	}
	if version != "" && !strings.Contains(name, "@") {
		return name + "@" + version
	}
	return name
}

// homebrewMarkers identify a mise binary installed by Homebrew
var homebrewMarkers = []string{"/Cellar/", "/opt/homebrew/", "/usr/local/Cellar", "/home/linuxbrew/"}

// IsHomebrewBinary reports whether binary looks like a Homebrew install.
// Only macOS and Linux have Homebrew.
func IsHomebrewBinary(binary, goos string) bool {
	if goos != constants.OSDarwin && goos != constants.OSLinux {
		return false
	}
	for _, marker := range homebrewMarkers {
		if strings.Contains(binary, marker) {
			return true
		}
	}
	return false
}
