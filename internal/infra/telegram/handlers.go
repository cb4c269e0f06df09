package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"contextclock/internal/app"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// RegisterControlHandlers registers the remote-control commands. Every
// command is restricted to the configured owner chat; the bot stands in
// for a tray menu when the desktop is out of reach.
func RegisterControlHandlers(
	ctx context.Context,
	b *telebot.Bot,
	service *app.AutomationService,
	ownerChatID int64,
	baseLogger *logrus.Entry,
) {
	ownerOnly := func(command string, h telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) error {
			logCtx := baseLogger.WithFields(logrus.Fields{
				"command":   command,
				"sender_id": c.Sender().ID,
			})
			if c.Sender().ID != ownerChatID {
				logCtx.Warn("Command from non-owner ignored")
				return c.Send("This bot only answers to its owner.")
			}
			logCtx.Info("Command received")
			return h(c)
		}
	}

	b.Handle("/start", ownerOnly("/start", func(c telebot.Context) error {
		return c.Send(fmt.Sprintf("Hi, %s! I control your Context Clock daemon. Use /help for commands.", c.Sender().FirstName))
	}))

	b.Handle("/help", ownerOnly("/help", func(c telebot.Context) error {
		var help strings.Builder
		help.WriteString("Available commands:\n\n")
		help.WriteString("`/status`\n - Show the current time block and automation state.\n\n")
		help.WriteString("`/pause`\n - Pause automation (also stops audio).\n\n")
		help.WriteString("`/resume`\n - Resume automation and re-evaluate the current block.\n\n")
		help.WriteString("`/reload`\n - Reload the time block file.\n\n")
		help.WriteString("`/next`\n - Show the next block transition.\n\n")
		help.WriteString("`/help`\n - Show this message.")
		return c.Send(help.String(), &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
	}))

	b.Handle("/status", ownerOnly("/status", func(c telebot.Context) error {
		st := service.Status()
		var msg strings.Builder
		if st.CurrentBlock != "" {
			fmt.Fprintf(&msg, "Current block: %s\n", st.CurrentBlock)
		} else {
			msg.WriteString("No time block active yet.\n")
		}
		if st.Paused {
			msg.WriteString("Automation: paused\n")
		} else {
			msg.WriteString("Automation: running\n")
		}
		fmt.Fprintf(&msg, "Blocks configured: %d\n", st.BlockCount)
		if st.AudioPlaying {
			fmt.Fprintf(&msg, "Audio: playing %s\n", st.AudioFile)
		}
		fmt.Fprintf(&msg, "Apps running: %d, websites opened: %d\n", st.LaunchedApps, st.OpenedWebsites)
		if !st.NextTransition.IsZero() {
			fmt.Fprintf(&msg, "Next transition: %s", st.NextTransition.Format("15:04 Mon Jan 2"))
		}
		return c.Send(msg.String())
	}))

	b.Handle("/pause", ownerOnly("/pause", func(c telebot.Context) error {
		service.Pause()
		return c.Send("Automation paused.")
	}))

	b.Handle("/resume", ownerOnly("/resume", func(c telebot.Context) error {
		service.Resume(ctx)
		return c.Send("Automation resumed.")
	}))

	b.Handle("/reload", ownerOnly("/reload", func(c telebot.Context) error {
		if err := service.Reload(ctx); err != nil {
			return c.Send(fmt.Sprintf("Reload failed: %s. Previous blocks are still active.", err))
		}
		return c.Send("Time blocks reloaded.")
	}))

	b.Handle("/next", ownerOnly("/next", func(c telebot.Context) error {
		at, ok := service.NextTransition()
		if !ok {
			return c.Send("No blocks configured, no transitions ahead.")
		}
		in := time.Until(at).Round(time.Minute)
		if blk, ok := service.BlockAt(at); ok {
			return c.Send(fmt.Sprintf("Next transition at %s (in %s), entering %s.", at.Format("15:04"), in, blk.Name))
		}
		return c.Send(fmt.Sprintf("Next transition at %s (in %s), leaving all blocks.", at.Format("15:04"), in))
	}))
}
