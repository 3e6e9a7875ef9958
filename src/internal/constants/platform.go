// Package constants defines common constants used across misectl
package constants

// Operating systems
const (
	OSWindows = "windows"
	OSDarwin  = "darwin"
	OSLinux   = "linux"
)

// Executable extensions tried on Windows, in lookup order
const (
	ExtExe = ".exe"
	ExtCmd = ".cmd"
	ExtBat = ".bat"
)

// User responses
const (
	ResponseYes = "yes"
	ResponseY   = "y"
)

// Environment variables
const (
	// EnvMiseBin overrides the mise binary location
	EnvMiseBin = "MISE_BIN"

	// EnvHome overrides the misectl root directory (~/.misectl)
	EnvHome = "MISECTL_HOME"

	// EnvPrefix is the viper prefix for config overrides (MISECTL_OUTPUT, ...)
	EnvPrefix = "MISECTL"
)

// MiseBinaryName is the name of the mise executable without extension
const MiseBinaryName = "mise"
