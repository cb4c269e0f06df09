package control

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/channel"
)

// Client talks to a running daemon over its control socket.
type Client struct {
	cli *jrpc2.Client
}

// Dial connects to the daemon's control socket.
func Dial(socketPath string) (*Client, error) {
	conn, err := net.DialTimeout("unix", socketPath, 2*time.Second)
	if err != nil {
		return nil, fmt.Errorf("could not connect to daemon at %s (is it running?): %w", socketPath, err)
	}
	return &Client{cli: jrpc2.NewClient(channel.Line(conn, conn), nil)}, nil
}

func (c *Client) Close() error {
	return c.cli.Close()
}

func (c *Client) Status(ctx context.Context) (*StatusResult, error) {
	var res StatusResult
	if err := c.cli.CallResult(ctx, "automation.status", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Pause(ctx context.Context) error {
	var res EmptyResult
	return c.cli.CallResult(ctx, "automation.pause", nil, &res)
}

func (c *Client) Resume(ctx context.Context) error {
	var res EmptyResult
	return c.cli.CallResult(ctx, "automation.resume", nil, &res)
}

func (c *Client) Reload(ctx context.Context) error {
	var res EmptyResult
	return c.cli.CallResult(ctx, "automation.reload", nil, &res)
}

func (c *Client) Next(ctx context.Context) (*NextResult, error) {
	var res NextResult
	if err := c.cli.CallResult(ctx, "automation.next", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Stop(ctx context.Context) error {
	var res EmptyResult
	return c.cli.CallResult(ctx, "automation.stop", nil, &res)
}
