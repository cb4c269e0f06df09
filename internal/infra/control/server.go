package control

import (
	"context"
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	"contextclock/internal/app"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/channel"
	"github.com/creachadair/jrpc2/handler"
	"github.com/sirupsen/logrus"
)

// Custom JSON-RPC error codes for control operations.
const codeReloadFailed = jrpc2.Code(-32001)

// Server exposes daemon control methods as JSON-RPC 2.0 over a unix
// socket. It replaces the tray menu of a GUI build: pause/resume, reload,
// status, next transition, stop.
type Server struct {
	service    *app.AutomationService
	logger     *logrus.Entry
	socketPath string
	shutdown   func() // requests daemon exit

	lis net.Listener
	wg  sync.WaitGroup
}

func NewServer(service *app.AutomationService, logger *logrus.Entry, socketPath string, shutdown func()) *Server {
	return &Server{
		service:    service,
		logger:     logger,
		socketPath: socketPath,
		shutdown:   shutdown,
	}
}

// Start begins listening on the control socket. A stale socket file from
// an unclean exit is removed first.
func (s *Server) Start() error {
	_ = os.Remove(s.socketPath)
	lis, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("could not listen on control socket %s: %w", s.socketPath, err)
	}
	s.lis = lis
	go s.acceptLoop()
	s.logger.WithField("socket", s.socketPath).Info("Control server listening")
	return nil
}

func (s *Server) acceptLoop() {
	methods := s.methods()
	for {
		conn, err := s.lis.Accept()
		if err != nil {
			return // listener closed
		}
		s.wg.Add(1)
		go func(conn net.Conn) {
			defer s.wg.Done()
			defer conn.Close()
			srv := jrpc2.NewServer(methods, nil)
			srv.Start(channel.Line(conn, conn))
			_ = srv.Wait()
		}(conn)
	}
}

// Close stops accepting connections, waits for in-flight requests, and
// removes the socket file.
func (s *Server) Close() {
	if s.lis != nil {
		s.lis.Close()
	}
	s.wg.Wait()
	_ = os.Remove(s.socketPath)
	s.logger.Info("Control server stopped")
}

func (s *Server) methods() handler.Map {
	return handler.Map{
		"automation.status": handler.New(s.status),
		"automation.pause":  handler.New(s.pause),
		"automation.resume": handler.New(s.resume),
		"automation.reload": handler.New(s.reload),
		"automation.next":   handler.New(s.next),
		"automation.stop":   handler.New(s.stop),
	}
}

func (s *Server) status(ctx context.Context) (*StatusResult, error) {
	st := s.service.Status()
	res := &StatusResult{
		CurrentBlock:   st.CurrentBlock,
		Paused:         st.Paused,
		BlockCount:     st.BlockCount,
		AudioPlaying:   st.AudioPlaying,
		AudioFile:      st.AudioFile,
		LaunchedApps:   st.LaunchedApps,
		OpenedWebsites: st.OpenedWebsites,
		UptimeSeconds:  int64(st.Uptime.Seconds()),
	}
	if !st.NextTransition.IsZero() {
		res.NextTransition = st.NextTransition.Format(time.RFC3339)
	}
	return res, nil
}

func (s *Server) pause(ctx context.Context) (*EmptyResult, error) {
	s.service.Pause()
	return &EmptyResult{}, nil
}

func (s *Server) resume(ctx context.Context) (*EmptyResult, error) {
	s.service.Resume(ctx)
	return &EmptyResult{}, nil
}

func (s *Server) reload(ctx context.Context) (*EmptyResult, error) {
	if err := s.service.Reload(ctx); err != nil {
		return nil, jrpc2.Errorf(codeReloadFailed, "reload failed: %v", err)
	}
	return &EmptyResult{}, nil
}

func (s *Server) next(ctx context.Context) (*NextResult, error) {
	at, ok := s.service.NextTransition()
	if !ok {
		return &NextResult{Known: false}, nil
	}
	res := &NextResult{Known: true, At: at.Format(time.RFC3339)}
	if b, ok := s.service.BlockAt(at); ok {
		res.Block = b.Name
	}
	return res, nil
}

func (s *Server) stop(ctx context.Context) (*EmptyResult, error) {
	s.logger.Info("Stop requested over control socket")
	if s.shutdown != nil {
		go s.shutdown()
	}
	return &EmptyResult{}, nil
}
