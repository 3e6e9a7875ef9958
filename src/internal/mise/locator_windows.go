//go:build windows

package mise

import "os"

// isExecutable reports whether path exists as a file; Windows has no execute bit
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
