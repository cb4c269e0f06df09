//go:build windows

package actions

import "fmt"

// playerCommand plays through PowerShell's MediaPlayer, which handles the
// common compressed formats unlike Media.SoundPlayer (WAV only).
func playerCommand(file string) (string, []string, error) {
	script := fmt.Sprintf(`Add-Type -AssemblyName PresentationCore
$p = New-Object System.Windows.Media.MediaPlayer
$p.Open([uri]'%s')
$p.Play()
Start-Sleep 1
while ($p.NaturalDuration.HasTimeSpan -and $p.Position -lt $p.NaturalDuration.TimeSpan) { Start-Sleep -Milliseconds 250 }`, file)
	return "powershell", []string{"-NoProfile", "-NonInteractive", "-Command", script}, nil
}
