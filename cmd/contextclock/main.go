package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "contextclock"
	app.Usage = "time-of-day desktop automation"
	app.Description = "Watches the clock, matches the current time against your configured time blocks, and applies each block's wallpaper, applications, websites and audio when the block changes."
	app.Commands = []cli.Command{
		{
			Name:   "run",
			Usage:  "start the automation daemon",
			Action: runDaemon,
		},
		{
			Name:   "status",
			Usage:  "show the daemon's current state",
			Action: statusCommand,
		},
		{
			Name:   "pause",
			Usage:  "pause automation (also stops audio)",
			Action: pauseCommand,
		},
		{
			Name:   "resume",
			Usage:  "resume automation and re-evaluate the current block",
			Action: resumeCommand,
		},
		{
			Name:   "reload",
			Usage:  "reload the time block file",
			Action: reloadCommand,
		},
		{
			Name:   "next",
			Usage:  "show the next block transition",
			Action: nextCommand,
		},
		{
			Name:   "stop",
			Usage:  "stop the running daemon",
			Action: stopCommand,
		},
		{
			Name:  "history",
			Usage: "list recent block activations",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "limit, n", Value: 20, Usage: "maximum number of entries"},
			},
			Action: historyCommand,
		},
		{
			Name:   "edit",
			Usage:  "open the time block file in your editor",
			Action: editCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
