//go:build linux

package actions

import (
	"fmt"
	"os/exec"
)

// playerCommand picks the first installed command-line player.
func playerCommand(file string) (string, []string, error) {
	candidates := []struct {
		name string
		args []string
	}{
		{"mpv", []string{"--no-video", "--really-quiet", file}},
		{"ffplay", []string{"-nodisp", "-autoexit", "-loglevel", "quiet", file}},
		{"mpg123", []string{"-q", file}},
		{"paplay", []string{file}},
	}
	for _, c := range candidates {
		if _, err := exec.LookPath(c.name); err == nil {
			return c.name, c.args, nil
		}
	}
	return "", nil, fmt.Errorf("no audio player found (tried mpv, ffplay, mpg123, paplay)")
}
