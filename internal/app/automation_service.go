package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"contextclock/internal/domain/history"
	"contextclock/internal/domain/schedule"
	domainTelegram "contextclock/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// WallpaperSetter applies a wallpaper from a file or folder path.
type WallpaperSetter interface {
	Apply(path string) error
}

// AppLauncher starts applications, suppressing duplicates it started.
type AppLauncher interface {
	Launch(paths []string) int
	Running() int
}

// WebsiteOpener opens URLs in the default browser.
type WebsiteOpener interface {
	Open(urls []string) int
	OpenedCount() int
}

// AudioPlayer plays a single audio file or folder pick at a time.
type AudioPlayer interface {
	Play(path string) error
	Stop()
	Playing() bool
	Current() string
}

// BlocksLoader re-reads the block set from its source, used on reload.
type BlocksLoader func() (schedule.List, error)

// Status is a snapshot of the automation state.
type Status struct {
	CurrentBlock   string
	Paused         bool
	BlockCount     int
	AudioPlaying   bool
	AudioFile      string
	LaunchedApps   int
	OpenedWebsites int
	NextTransition time.Time // zero when no blocks are configured
	Uptime         time.Duration
}

// AutomationService evaluates which time block is active and dispatches
// the block's actions whenever the active block identity changes.
type AutomationService struct {
	loadBlocks  BlocksLoader
	historyRepo history.Repository
	wallpaper   WallpaperSetter
	launcher    AppLauncher
	opener      WebsiteOpener
	player      AudioPlayer
	logger      *logrus.Entry

	telegramClient domainTelegram.Client // optional push on block change
	ownerChatID    int64

	now func() time.Time // injectable clock

	mu        sync.Mutex
	blocks    schedule.List
	current   string // name of the last activated block, "" before the first match
	paused    bool
	startedAt time.Time
}

func NewAutomationService(
	blocks schedule.List,
	loadBlocks BlocksLoader,
	historyRepo history.Repository,
	wallpaper WallpaperSetter,
	launcher AppLauncher,
	opener WebsiteOpener,
	player AudioPlayer,
	logger *logrus.Entry,
) *AutomationService {
	return &AutomationService{
		loadBlocks:  loadBlocks,
		historyRepo: historyRepo,
		wallpaper:   wallpaper,
		launcher:    launcher,
		opener:      opener,
		player:      player,
		logger:      logger,
		now:         time.Now,
		blocks:      blocks,
		startedAt:   time.Now(),
	}
}

// SetNotifier installs an optional Telegram client that receives a
// human-readable message in the owner chat on each block change.
func (s *AutomationService) SetNotifier(client domainTelegram.Client, ownerChatID int64) {
	s.telegramClient = client
	s.ownerChatID = ownerChatID
}

// Check is the poll body: find the active block and fire its actions if
// the block identity changed since the last activation.
func (s *AutomationService) Check(ctx context.Context, cause history.Trigger) {
	s.mu.Lock()
	if s.paused {
		s.mu.Unlock()
		s.logger.Debug("Automation paused, skipping time block check")
		return
	}
	now := s.now()
	block, ok := s.blocks.ActiveAt(schedule.ClockOf(now))
	if !ok {
		s.mu.Unlock()
		s.logger.Debug("No time block matches current time")
		return
	}
	if block.Name == s.current {
		s.mu.Unlock()
		s.logger.WithField("block", block.Name).Debug("Still in current time block")
		return
	}
	previous := s.current
	s.current = block.Name
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"from":  previous,
		"to":    block.Name,
		"cause": cause,
	}).Info("Time block changed")

	s.runActions(block)
	s.record(ctx, block.Name, cause, now)

	if s.telegramClient != nil {
		msg := fmt.Sprintf("Switched to %s mode", block.Name)
		if err := s.telegramClient.SendMessage(s.ownerChatID, msg, nil); err != nil {
			s.logger.WithError(err).Warn("Could not deliver Telegram notification")
		}
	}
}

// runActions executes the block's action set in sequence. Each action is
// best-effort: a failure is logged and the remaining actions still run.
func (s *AutomationService) runActions(b schedule.Block) {
	if b.Actions.Wallpaper != "" {
		if err := s.wallpaper.Apply(b.Actions.Wallpaper); err != nil {
			s.logger.WithError(err).WithField("block", b.Name).Warn("Wallpaper action failed")
		}
	}
	if len(b.Actions.Apps) > 0 {
		s.launcher.Launch(b.Actions.Apps)
	}
	if len(b.Actions.Websites) > 0 {
		s.opener.Open(b.Actions.Websites)
	}
	if b.Actions.Music != "" {
		s.player.Stop()
		if err := s.player.Play(b.Actions.Music); err != nil {
			s.logger.WithError(err).WithField("block", b.Name).Warn("Audio action failed")
		}
	}
}

func (s *AutomationService) record(ctx context.Context, blockName string, cause history.Trigger, at time.Time) {
	err := s.historyRepo.Record(ctx, &history.Activation{
		BlockName:   blockName,
		Trigger:     cause,
		ActivatedAt: at,
	})
	if err != nil {
		s.logger.WithError(err).Error("Failed to record block activation")
	}
}

// Pause disables automation and stops any playing audio.
func (s *AutomationService) Pause() {
	s.mu.Lock()
	already := s.paused
	s.paused = true
	s.mu.Unlock()
	if already {
		return
	}
	s.player.Stop()
	s.logger.Info("Automation paused")
}

// Resume re-enables automation and immediately re-evaluates the current
// block.
func (s *AutomationService) Resume(ctx context.Context) {
	s.mu.Lock()
	if !s.paused {
		s.mu.Unlock()
		return
	}
	s.paused = false
	s.mu.Unlock()
	s.logger.Info("Automation resumed")
	s.Check(ctx, history.TriggerResume)
}

// Paused reports whether automation is paused.
func (s *AutomationService) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Reload replaces the block set from its source. On a load error the
// previous block set stays active. Actions re-fire only when the active
// block identity changes under the new set.
func (s *AutomationService) Reload(ctx context.Context) error {
	blocks, err := s.loadBlocks()
	if err != nil {
		s.logger.WithError(err).Error("Configuration reload failed, keeping previous blocks")
		return err
	}
	s.mu.Lock()
	s.blocks = blocks
	s.mu.Unlock()
	s.logger.WithField("blocks", len(blocks)).Info("Configuration reloaded")
	s.Check(ctx, history.TriggerReload)
	return nil
}

// NextTransition returns the next instant a block boundary is crossed.
func (s *AutomationService) NextTransition() (time.Time, bool) {
	s.mu.Lock()
	blocks := s.blocks
	s.mu.Unlock()
	return blocks.NextTransition(s.now())
}

// BlockAt returns the block that would be active at the given instant.
func (s *AutomationService) BlockAt(t time.Time) (schedule.Block, bool) {
	s.mu.Lock()
	blocks := s.blocks
	s.mu.Unlock()
	return blocks.ActiveAt(schedule.ClockOf(t))
}

// Status returns a snapshot of the automation state.
func (s *AutomationService) Status() Status {
	s.mu.Lock()
	st := Status{
		CurrentBlock: s.current,
		Paused:       s.paused,
		BlockCount:   len(s.blocks),
		Uptime:       s.now().Sub(s.startedAt),
	}
	blocks := s.blocks
	s.mu.Unlock()

	st.AudioPlaying = s.player.Playing()
	st.AudioFile = s.player.Current()
	st.LaunchedApps = s.launcher.Running()
	st.OpenedWebsites = s.opener.OpenedCount()
	if next, ok := blocks.NextTransition(s.now()); ok {
		st.NextTransition = next
	}
	return st
}

// Shutdown stops side effects that outlive a check, currently audio.
func (s *AutomationService) Shutdown() {
	s.player.Stop()
}
