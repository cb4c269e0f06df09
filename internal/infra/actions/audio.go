package actions

import (
	"fmt"
	"os/exec"
	"sync"

	"github.com/sirupsen/logrus"
)

var audioExts = map[string]bool{
	".mp3": true, ".wav": true, ".ogg": true,
	".flac": true, ".m4a": true, ".aac": true,
}

// Player plays one audio file at a time through an external player
// process. Starting a new file stops the previous one.
type Player struct {
	log *logrus.Entry

	mu      sync.Mutex
	cmd     *exec.Cmd
	current string
	done    chan struct{}
}

func NewPlayer(log *logrus.Entry) *Player {
	return &Player{log: log}
}

// Play resolves the configured path (file or random-from-folder) and
// starts playback.
func (p *Player) Play(path string) error {
	target, err := resolveMedia(path, audioExts)
	if err != nil {
		return err
	}

	name, args, err := playerCommand(target)
	if err != nil {
		return err
	}

	p.Stop()

	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("could not start audio player %s: %w", name, err)
	}

	done := make(chan struct{})
	p.mu.Lock()
	p.cmd = cmd
	p.current = target
	p.done = done
	p.mu.Unlock()

	go func() {
		_ = cmd.Wait()
		close(done)
		p.mu.Lock()
		if p.cmd == cmd {
			p.cmd = nil
			p.current = ""
			p.done = nil
		}
		p.mu.Unlock()
	}()

	p.log.WithFields(logrus.Fields{"file": target, "player": name}).Info("Audio playback started")
	return nil
}

// Stop kills the active player process, if any, and waits for it to be
// reaped.
func (p *Player) Stop() {
	p.mu.Lock()
	cmd := p.cmd
	done := p.done
	p.cmd = nil
	p.current = ""
	p.done = nil
	p.mu.Unlock()

	if cmd == nil {
		return
	}
	if cmd.Process != nil {
		_ = cmd.Process.Kill()
	}
	if done != nil {
		<-done
	}
	p.log.Info("Audio playback stopped")
}

// Playing reports whether a player process is currently active.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done == nil {
		return false
	}
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

// Current returns the file being played, or "".
func (p *Player) Current() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}
