//go:build windows

package actions

import (
	"fmt"
	"os/exec"
)

// setWallpaper calls SystemParametersInfo(SPI_SETDESKWALLPAPER) through
// PowerShell, avoiding a direct user32 binding.
func setWallpaper(path string) error {
	script := fmt.Sprintf(`Add-Type -TypeDefinition @"
using System.Runtime.InteropServices;
public class Wallpaper {
    [DllImport("user32.dll", CharSet = CharSet.Unicode)]
    public static extern int SystemParametersInfo(int uAction, int uParam, string lpvParam, int fuWinIni);
}
"@
[Wallpaper]::SystemParametersInfo(20, 0, '%s', 3)`, path)
	return exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", script).Run()
}
