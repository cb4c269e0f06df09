package actions

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogEntry() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func TestLaunchSkipsAliveApp(t *testing.T) {
	l := NewLauncher(testLogEntry())
	l.launched["editor"] = &launchedApp{path: "/opt/tools/editor", done: make(chan struct{})}

	// Same base name as the tracked, still-alive process: nothing new is
	// spawned and the entry counts as a success.
	if got := l.Launch([]string{"/somewhere/else/editor"}); got != 1 {
		t.Errorf("Launch = %d, want 1", got)
	}
	if got := l.launched["editor"].path; got != "/opt/tools/editor" {
		t.Errorf("tracked path = %q, want the original launch path", got)
	}
	if got := l.Running(); got != 1 {
		t.Errorf("Running = %d, want 1", got)
	}
}

func TestLaunchRetriesExitedApp(t *testing.T) {
	l := NewLauncher(testLogEntry())
	exited := &launchedApp{path: "/opt/tools/editor", done: make(chan struct{})}
	close(exited.done)
	l.launched["editor"] = exited

	// The tracked process has exited, so the launcher tries again. The
	// path does not exist, so the relaunch fails and counts as zero.
	if got := l.Launch([]string{"/nonexistent/editor"}); got != 0 {
		t.Errorf("Launch = %d, want 0", got)
	}
	if got := l.Running(); got != 0 {
		t.Errorf("Running = %d, want 0", got)
	}
}
