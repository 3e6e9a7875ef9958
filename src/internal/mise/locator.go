package mise

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/misectl/misectl/src/internal/constants"
	pathutil "github.com/misectl/misectl/src/internal/path"
	"github.com/misectl/misectl/src/internal/ui"
)

// Locator finds the mise executable and remembers the first hit.
// Create one per process and share it; failures are retried on the next call.
type Locator struct {
	// Override is tried before everything else (--mise-bin or mise_bin config)
	Override string

	getenv    func(string) string
	homeDir   func() (string, error)
	goos      string
	fallbacks func(home string) []string

	mu       sync.Mutex
	resolved string
}

// NewLocator creates a Locator reading the real environment
func NewLocator(override string) *Locator {
	return &Locator{
		Override:  override,
		getenv:    os.Getenv,
		homeDir:   os.UserHomeDir,
		goos:      runtime.GOOS,
		fallbacks: wellKnownLocations,
	}
}

// wellKnownLocations are checked after PATH, in order
func wellKnownLocations(home string) []string {
	locations := []string{"~/Library/Application Support/mise/bin/mise"}
	if home != "" {
		locations = append(locations, filepath.Join(home, ".local", "bin", constants.MiseBinaryName))
	}
	return append(locations,
		"/opt/homebrew/bin/mise",
		"/usr/local/bin/mise",
		"/usr/bin/mise",
	)
}

// Resolve returns the absolute path of the mise binary or ErrBinaryNotFound
func (l *Locator) Resolve() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.resolved != "" {
		return l.resolved, nil
	}

	for _, candidate := range l.candidates() {
		if found := l.check(candidate); found != "" {
			ui.Debug("Using mise binary: %s", found)
			l.resolved = found
			return found, nil
		}
		ui.Debug("mise candidate rejected: %s", candidate)
	}

	return "", ErrBinaryNotFound
}

// candidates returns the search order with duplicates removed
func (l *Locator) candidates() []string {
	home, err := l.homeDir()
	if err != nil {
		home = ""
	}

	ordered := []string{l.Override, l.getenv(constants.EnvMiseBin), constants.MiseBinaryName}
	ordered = append(ordered, l.fallbacks(home)...)

	seen := make(map[string]bool, len(ordered))
	result := make([]string, 0, len(ordered))
	for _, candidate := range ordered {
		if candidate == "" || seen[candidate] {
			continue
		}
		seen[candidate] = true
		result = append(result, candidate)
	}
	return result
}

// check returns the usable path for candidate, or "" when it is not executable.
// Bare names are searched on PATH; anything with a separator is checked directly.
func (l *Locator) check(candidate string) string {
	if !strings.ContainsAny(candidate, `/\`) {
		return l.searchPath(candidate)
	}

	expanded := candidate
	if strings.HasPrefix(candidate, "~/") {
		home, err := l.homeDir()
		if err != nil || home == "" {
			return ""
		}
		expanded = filepath.Join(home, candidate[2:])
	}

	if isExecutable(expanded) {
		return expanded
	}
	return ""
}

func (l *Locator) searchPath(name string) string {
	for _, dir := range pathutil.Split(l.getenv("PATH")) {
		for _, ext := range l.extensions() {
			candidate := filepath.Join(dir, name+ext)
			if isExecutable(candidate) {
				return candidate
			}
		}
	}
	return ""
}

// extensions lists the suffixes tried for bare names on this platform
func (l *Locator) extensions() []string {
	if l.goos == constants.OSWindows {
		return []string{constants.ExtExe, constants.ExtCmd, constants.ExtBat, ""}
	}
	return []string{""}
}
