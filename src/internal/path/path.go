// Package path provides utilities for PATH environment variable manipulation
package path

import (
	"os"
	"path/filepath"
	"strings"
)

// Split splits a PATH value into its non-empty entries
func Split(pathEnv string) []string {
	entries := filepath.SplitList(pathEnv)
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry == "" {
			continue
		}
		result = append(result, entry)
	}
	return result
}

// Prepend returns pathEnv with dirs placed in front of it, in the given order.
// An empty pathEnv yields only dirs (no trailing separator).
func Prepend(pathEnv string, dirs ...string) string {
	sep := string(os.PathListSeparator)
	joined := strings.Join(dirs, sep)
	if joined == "" {
		return pathEnv
	}
	if pathEnv == "" {
		return joined
	}
	return joined + sep + pathEnv
}

// Contains reports whether dir is one of the entries of pathEnv
func Contains(pathEnv, dir string) bool {
	dir = filepath.Clean(dir)
	for _, p := range Split(pathEnv) {
		if filepath.Clean(p) == dir {
			return true
		}
	}
	return false
}

// IsInPath checks if a directory is in the current process PATH
func IsInPath(dir string) bool {
	return Contains(os.Getenv("PATH"), dir)
}
