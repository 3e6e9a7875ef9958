// Package config manages misectl configuration: its directories and the
// optional config.yaml file.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/misectl/misectl/src/internal/constants"
)

// Paths holds all important misectl directory paths
type Paths struct {
	Root       string // Root misectl directory (~/.misectl)
	Cache      string // Cache directory (~/.misectl/cache)
	ConfigFile string // Config file (~/.misectl/config.yaml)
}

var (
	defaultPaths *Paths
	pathsOnce    sync.Once
)

// ConfigFileName is the name of the misectl config file inside the root
const ConfigFileName = "config.yaml"

// RegistryCacheFileName is the name of the cached `mise registry --json` payload
const RegistryCacheFileName = "registry.cache.json"

// DefaultPaths returns the default misectl paths.
// This function is thread-safe and guarantees single initialization.
func DefaultPaths() *Paths {
	pathsOnce.Do(func() {
		defaultPaths = initPaths()
	})
	return defaultPaths
}

func initPaths() *Paths {
	root := getRootDir()
	return &Paths{
		Root:       root,
		Cache:      filepath.Join(root, "cache"),
		ConfigFile: filepath.Join(root, ConfigFileName),
	}
}

// getRootDir returns the root misectl directory
func getRootDir() string {
	if root := os.Getenv(constants.EnvHome); root != "" {
		return root
	}

	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home is not available
		return ".misectl"
	}

	return filepath.Join(home, ".misectl")
}

// RegistryCachePath returns the path of the registry cache file
func RegistryCachePath() string {
	return filepath.Join(DefaultPaths().Cache, RegistryCacheFileName)
}

// EnsureDirectories creates the misectl root and cache directories
func EnsureDirectories() error {
	paths := DefaultPaths()
	for _, dir := range []string{paths.Root, paths.Cache} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// ResetPathsCache resets the cached paths, forcing reinitialization on next access.
// This is primarily useful for testing.
func ResetPathsCache() {
	pathsOnce = sync.Once{}
	defaultPaths = nil
}
