package cmd

import (
	"fmt"
	"os/exec"
	goruntime "runtime"
	"strings"

	"github.com/misectl/misectl/src/internal/constants"
	"github.com/misectl/misectl/src/internal/ui"
)

// openTarget is replaced in tests
var openTarget = openBrowser

// openBrowser opens a URL or directory with the platform's default handler
func openBrowser(target string) error {
	var cmd *exec.Cmd

	switch goruntime.GOOS {
	case constants.OSDarwin:
		cmd = exec.Command("open", target)
	case constants.OSLinux:
		cmd = exec.Command("xdg-open", target)
	case constants.OSWindows:
		// Use cmd.exe to run start command
		cmd = exec.Command("cmd", "/c", "start", "", strings.ReplaceAll(target, "&", "^&"))
	default:
		return fmt.Errorf("unsupported platform: %s", goruntime.GOOS)
	}

	return cmd.Start()
}

// openOrPrint opens target, falling back to printing it for manual use
func openOrPrint(target string) {
	if err := openTarget(target); err != nil {
		ui.Warning("Could not open automatically: %v", err)
		ui.Info("Please visit this location manually:")
		fmt.Fprintln(stdout, "  "+target)
		return
	}
	ui.Success("Opened %s", target)
}
