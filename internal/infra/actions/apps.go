package actions

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

type launchedApp struct {
	path string
	done chan struct{}
}

func (a *launchedApp) alive() bool {
	select {
	case <-a.done:
		return false
	default:
		return true
	}
}

// Launcher starts the applications bound to a block and tracks what it
// started, so a repeat activation does not spawn duplicates.
type Launcher struct {
	log *logrus.Entry

	mu       sync.Mutex
	launched map[string]*launchedApp // keyed by executable base name
}

func NewLauncher(log *logrus.Entry) *Launcher {
	return &Launcher{
		log:      log,
		launched: make(map[string]*launchedApp),
	}
}

// Launch starts each application, skipping entries it already started that
// are still running. Returns the number of successful launches.
func (l *Launcher) Launch(paths []string) int {
	ok := 0
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := l.launchOne(p); err != nil {
			l.log.WithError(err).WithField("app", p).Warn("Failed to launch application")
		} else {
			ok++
		}
	}
	l.log.WithFields(logrus.Fields{"launched": ok, "requested": len(paths)}).Info("Application launches completed")
	return ok
}

func (l *Launcher) launchOne(path string) error {
	name := filepath.Base(path)

	l.mu.Lock()
	defer l.mu.Unlock()

	if prev, exists := l.launched[name]; exists && prev.alive() {
		l.log.WithFields(logrus.Fields{"app": name, "path": prev.path}).Info("Application already running, not relaunching")
		return nil
	}

	cmd := exec.Command(path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("could not start %s: %w", path, err)
	}

	app := &launchedApp{path: path, done: make(chan struct{})}
	go func() {
		_ = cmd.Wait() // reap; exit status is irrelevant
		close(app.done)
	}()
	l.launched[name] = app
	l.log.WithField("app", name).Info("Application launched")
	return nil
}

// Running returns how many launched applications are still alive.
func (l *Launcher) Running() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, a := range l.launched {
		if a.alive() {
			n++
		}
	}
	return n
}
