//go:build darwin

package actions

import "os/exec"

// openBrowser hands the URL to the default browser.
func openBrowser(url string) error {
	return exec.Command("open", url).Start()
}
