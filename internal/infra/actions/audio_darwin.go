//go:build darwin

package actions

// playerCommand uses afplay, which ships with macOS.
func playerCommand(file string) (string, []string, error) {
	return "afplay", []string{file}, nil
}
