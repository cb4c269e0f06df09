package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"contextclock/internal/app"
	"contextclock/internal/domain/history"
	"contextclock/internal/domain/schedule"
	"contextclock/internal/infra/actions"
	"contextclock/internal/infra/config"
	"contextclock/internal/infra/control"
	idb "contextclock/internal/infra/database"
	"contextclock/internal/infra/logger"
	"contextclock/internal/infra/scheduler"
	itelegram "contextclock/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"gopkg.in/telebot.v3"
)

func runDaemon(_ *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg)
	log := logger.Get()

	if err := config.EnsureBlocksFile(cfg.BlocksPath); err != nil {
		return err
	}
	blocks, err := config.LoadBlocks(cfg.BlocksPath)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"blocks": len(blocks), "file": cfg.BlocksPath}).Info("Time blocks loaded")

	db, err := idb.NewSQLiteConnection(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()
	historyRepo := idb.NewSQLiteHistoryRepository(db)

	wallpaper := actions.NewWallpaper(log.WithField("component", "wallpaper"))
	launcher := actions.NewLauncher(log.WithField("component", "apps"))
	opener := actions.NewOpener(log.WithField("component", "websites"), cfg.WebsiteDelay)
	player := actions.NewPlayer(log.WithField("component", "audio"))

	loadBlocks := func() (schedule.List, error) { return config.LoadBlocks(cfg.BlocksPath) }
	service := app.NewAutomationService(
		blocks,
		loadBlocks,
		historyRepo,
		wallpaper,
		launcher,
		opener,
		player,
		log.WithField("component", "automation"),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	stopRequested := make(chan struct{})
	var stopOnce sync.Once
	requestStop := func() { stopOnce.Do(func() { close(stopRequested) }) }

	ctrl := control.NewServer(service, log.WithField("component", "control"), cfg.SocketPath, requestStop)
	if err := ctrl.Start(); err != nil {
		return err
	}
	defer ctrl.Close()

	if cfg.TelegramToken != "" {
		startTelegram(cfg, service, log)
	}

	if err := writePidFile(cfg.PidPath); err != nil {
		log.WithError(err).Warn("Could not write pid file")
	}
	defer removePidFile(cfg.PidPath)

	sched := scheduler.NewBlockScheduler(service, log.WithField("component", "scheduler"), cfg.CronSpecCheck)
	if err := sched.Start(); err != nil {
		return err
	}

	// Initial evaluation, so starting inside a block applies its actions
	// without waiting for the first poll.
	startCtx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	service.Check(startCtx, history.TriggerStartup)
	cancel()

	log.Info("Context Clock daemon running")
	select {
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Shutting down on signal")
	case <-stopRequested:
		log.Info("Shutting down on stop request")
	}

	sched.Stop()
	service.Shutdown()
	log.Info("Context Clock daemon stopped")
	return nil
}

// startTelegram wires the optional remote-control bot. A bot failure is
// never fatal; the daemon works without it.
func startTelegram(cfg *config.AppConfig, service *app.AutomationService, log *logrus.Logger) {
	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) {
			log.WithError(err).Error("Telegram bot error")
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		log.WithError(err).Error("Could not create Telegram bot, continuing without it")
		return
	}

	itelegram.RegisterControlHandlers(context.Background(), bot, service, cfg.OwnerChatID, log.WithField("component", "telegram"))
	service.SetNotifier(itelegram.NewTelebotAdapter(bot), cfg.OwnerChatID)

	go bot.Start()
	log.Info("Telegram remote control enabled")
}
