package control

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"contextclock/internal/app"
	"contextclock/internal/domain/history"
	"contextclock/internal/domain/schedule"

	"github.com/sirupsen/logrus"
)

type nopWallpaper struct{}

func (nopWallpaper) Apply(string) error { return nil }

type nopLauncher struct{}

func (nopLauncher) Launch([]string) int { return 0 }
func (nopLauncher) Running() int        { return 0 }

type nopOpener struct{}

func (nopOpener) Open([]string) int { return 0 }
func (nopOpener) OpenedCount() int  { return 0 }

type nopPlayer struct{}

func (nopPlayer) Play(string) error { return nil }
func (nopPlayer) Stop()             {}
func (nopPlayer) Playing() bool     { return false }
func (nopPlayer) Current() string   { return "" }

type nopHistory struct{}

func (nopHistory) Record(context.Context, *history.Activation) error { return nil }
func (nopHistory) ListRecent(context.Context, int) ([]*history.Activation, error) {
	return nil, nil
}
func (nopHistory) Latest(context.Context) (*history.Activation, error) {
	return nil, errors.New("empty")
}

func testService(loader app.BlocksLoader) *app.AutomationService {
	l := logrus.New()
	l.SetOutput(io.Discard)
	blocks := schedule.List{{Name: "morning", Start: 6 * 60, End: 12 * 60}}
	if loader == nil {
		loader = func() (schedule.List, error) { return blocks, nil }
	}
	return app.NewAutomationService(blocks, loader, nopHistory{}, nopWallpaper{}, nopLauncher{}, nopOpener{}, nopPlayer{}, logrus.NewEntry(l))
}

func startServer(t *testing.T, svc *app.AutomationService) *Client {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	sock := filepath.Join(t.TempDir(), "control.sock")

	srv := NewServer(svc, logrus.NewEntry(l), sock, nil)
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(srv.Close)

	cli, err := Dial(sock)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	t.Cleanup(func() { cli.Close() })
	return cli
}

func TestStatusRoundTrip(t *testing.T) {
	cli := startServer(t, testService(nil))
	ctx := context.Background()

	st, err := cli.Status(ctx)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.Paused {
		t.Error("fresh daemon should not be paused")
	}
	if st.BlockCount != 1 {
		t.Errorf("BlockCount = %d, want 1", st.BlockCount)
	}
	if st.NextTransition == "" {
		t.Error("expected a next transition with blocks configured")
	}
}

func TestPauseResume(t *testing.T) {
	svc := testService(nil)
	cli := startServer(t, svc)
	ctx := context.Background()

	if err := cli.Pause(ctx); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if !svc.Paused() {
		t.Error("service not paused after RPC")
	}
	st, err := cli.Status(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !st.Paused {
		t.Error("status should report paused")
	}

	if err := cli.Resume(ctx); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if svc.Paused() {
		t.Error("service still paused after resume RPC")
	}
}

func TestReloadErrorPropagates(t *testing.T) {
	loader := func() (schedule.List, error) { return nil, errors.New("bad yaml") }
	cli := startServer(t, testService(loader))

	err := cli.Reload(context.Background())
	if err == nil {
		t.Fatal("expected reload error over RPC")
	}
}

func TestNext(t *testing.T) {
	cli := startServer(t, testService(nil))

	res, err := cli.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !res.Known || res.At == "" {
		t.Errorf("Next = %+v, want a known transition", res)
	}
}
