//go:build linux

package actions

import (
	"fmt"
	"os/exec"
)

// setWallpaper tries the common desktop-environment tools in order and
// stops at the first one that works.
func setWallpaper(path string) error {
	uri := "file://" + path

	if _, err := exec.LookPath("gsettings"); err == nil {
		light := exec.Command("gsettings", "set", "org.gnome.desktop.background", "picture-uri", uri).Run()
		dark := exec.Command("gsettings", "set", "org.gnome.desktop.background", "picture-uri-dark", uri).Run()
		if light == nil || dark == nil {
			return nil
		}
	}

	fallbacks := [][]string{
		{"feh", "--bg-fill", path},
		{"xwallpaper", "--zoom", path},
	}
	for _, args := range fallbacks {
		if _, err := exec.LookPath(args[0]); err != nil {
			continue
		}
		if err := exec.Command(args[0], args[1:]...).Run(); err == nil {
			return nil
		}
	}
	return fmt.Errorf("no wallpaper tool could set %s (tried gsettings, feh, xwallpaper)", path)
}
