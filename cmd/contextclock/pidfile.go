package main

import (
	"os"
	"strconv"
)

// writePidFile writes the current process ID to the PID file.
func writePidFile(path string) error {
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644)
}

// removePidFile removes the PID file; a missing file is not an error.
func removePidFile(path string) {
	_ = os.Remove(path)
}
