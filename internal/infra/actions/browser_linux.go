//go:build linux

package actions

import "os/exec"

// openBrowser hands the URL to the desktop's default handler.
func openBrowser(url string) error {
	return exec.Command("xdg-open", url).Start()
}
