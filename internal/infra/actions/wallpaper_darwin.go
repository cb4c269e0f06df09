//go:build darwin

package actions

import (
	"fmt"
	"os/exec"
)

// setWallpaper sets the wallpaper on every desktop via System Events.
func setWallpaper(path string) error {
	script := fmt.Sprintf(`tell application "System Events" to set picture of every desktop to %q`, path)
	return exec.Command("osascript", "-e", script).Run()
}
