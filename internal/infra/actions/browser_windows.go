//go:build windows

package actions

import "os/exec"

// openBrowser hands the URL to the default browser.
func openBrowser(url string) error {
	return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
}
