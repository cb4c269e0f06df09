package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"

	"contextclock/internal/infra/config"
	"contextclock/internal/infra/control"
	idb "contextclock/internal/infra/database"

	"github.com/urfave/cli"
)

const rpcTimeout = 5 * time.Second

// withDaemon runs fn against the daemon's control socket.
func withDaemon(fn func(ctx context.Context, client *control.Client) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, err := control.Dial(cfg.SocketPath)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()
	return fn(ctx, client)
}

func statusCommand(_ *cli.Context) error {
	return withDaemon(func(ctx context.Context, client *control.Client) error {
		st, err := client.Status(ctx)
		if err != nil {
			return err
		}

		block := st.CurrentBlock
		if block == "" {
			block = "(none)"
		}
		state := "running"
		if st.Paused {
			state = "paused"
		}
		fmt.Printf("Current block:   %s\n", block)
		fmt.Printf("Automation:      %s\n", state)
		fmt.Printf("Blocks:          %d\n", st.BlockCount)
		if st.AudioPlaying {
			fmt.Printf("Audio:           %s\n", st.AudioFile)
		}
		fmt.Printf("Apps running:    %d\n", st.LaunchedApps)
		fmt.Printf("Websites opened: %d\n", st.OpenedWebsites)
		if st.NextTransition != "" {
			if at, err := time.Parse(time.RFC3339, st.NextTransition); err == nil {
				fmt.Printf("Next transition: %s\n", at.Local().Format("15:04 Mon Jan 2"))
			}
		}
		fmt.Printf("Uptime:          %s\n", time.Duration(st.UptimeSeconds)*time.Second)
		return nil
	})
}

func pauseCommand(_ *cli.Context) error {
	return withDaemon(func(ctx context.Context, client *control.Client) error {
		if err := client.Pause(ctx); err != nil {
			return err
		}
		fmt.Println("Automation paused.")
		return nil
	})
}

func resumeCommand(_ *cli.Context) error {
	return withDaemon(func(ctx context.Context, client *control.Client) error {
		if err := client.Resume(ctx); err != nil {
			return err
		}
		fmt.Println("Automation resumed.")
		return nil
	})
}

func reloadCommand(_ *cli.Context) error {
	return withDaemon(func(ctx context.Context, client *control.Client) error {
		if err := client.Reload(ctx); err != nil {
			return err
		}
		fmt.Println("Time blocks reloaded.")
		return nil
	})
}

func nextCommand(_ *cli.Context) error {
	return withDaemon(func(ctx context.Context, client *control.Client) error {
		res, err := client.Next(ctx)
		if err != nil {
			return err
		}
		if !res.Known {
			fmt.Println("No blocks configured, no transitions ahead.")
			return nil
		}
		at, err := time.Parse(time.RFC3339, res.At)
		if err != nil {
			return fmt.Errorf("daemon returned malformed transition time %q: %w", res.At, err)
		}
		in := time.Until(at).Round(time.Minute)
		if res.Block != "" {
			fmt.Printf("Next transition at %s (in %s), entering %s.\n", at.Local().Format("15:04"), in, res.Block)
		} else {
			fmt.Printf("Next transition at %s (in %s), leaving all blocks.\n", at.Local().Format("15:04"), in)
		}
		return nil
	})
}

func stopCommand(_ *cli.Context) error {
	return withDaemon(func(ctx context.Context, client *control.Client) error {
		if err := client.Stop(ctx); err != nil {
			return err
		}
		fmt.Println("Daemon stopping.")
		return nil
	})
}

// historyCommand reads the activation history straight from the database,
// so it also works while the daemon is down.
func historyCommand(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	db, err := idb.NewSQLiteConnection(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()
	repo := idb.NewSQLiteHistoryRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()
	activations, err := repo.ListRecent(ctx, c.Int("limit"))
	if err != nil {
		return err
	}
	if len(activations) == 0 {
		fmt.Println("No activations recorded yet.")
		return nil
	}
	for _, a := range activations {
		fmt.Printf("%s  %-10s %s\n", a.ActivatedAt.Local().Format("2006-01-02 15:04"), a.BlockName, a.Trigger)
	}
	return nil
}

func editCommand(_ *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := config.EnsureBlocksFile(cfg.BlocksPath); err != nil {
		return err
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		if runtime.GOOS == "windows" {
			editor = "notepad"
		} else {
			editor = "vi"
		}
	}
	cmd := exec.Command(editor, cfg.BlocksPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s failed: %w", editor, err)
	}
	fmt.Println("Run `contextclock reload` to apply your changes.")
	return nil
}
