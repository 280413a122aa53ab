package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tensio/internal/config"
	"github.com/vovakirdan/tensio/internal/games/tensio"
	"github.com/vovakirdan/tensio/internal/storage"
)

// SSHServer serves Tensio over SSH via Wish. Every session plays its own
// run; all sessions share one high score.
type SSHServer struct {
	config config.Config
	server *ssh.Server
	scores *storage.HighScores
	logger *log.Logger
	active atomic.Int64

	mu    sync.Mutex
	games map[ssh.Session]*tensio.Controller
}

// NewSSHServer creates a new SSH server. scores may be nil, in which case
// high scores live only as long as each session.
func NewSSHServer(cfg config.Config, scores *storage.HighScores, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "tensio-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		scores: scores,
		logger: logger,
		games:  make(map[ssh.Session]*tensio.Controller),
	}

	hostKeyPath, err := storage.ExpandHome(cfg.Server.HostKey)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve host key path: %w", err)
	}
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".tensio", "host_key")
	}

	// Ensure host key directory exists
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Server.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}
	if idle := cfg.Server.IdleTimeout(); idle > 0 {
		opts = append(opts, wish.WithIdleTimeout(idle))
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a controller and Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		wish.Println(sshSession, "tensio needs an interactive terminal (ssh -t)")
		return nil, nil
	}

	logger := s.logger.With("session", uuid.NewString(), "user", sshSession.User())

	var store tensio.HighScoreStore
	if s.scores != nil {
		store = s.scores
	}
	ctrl := tensio.NewController(store, tensio.NewRand(time.Now().UnixNano()), logger)

	model := NewModel(ctrl, s.config, pty.Window.Width, pty.Window.Height)
	if err := model.Start(); err != nil {
		logger.Warn("cannot start game", "error", err,
			"width", pty.Window.Width, "height", pty.Window.Height)
		wish.Println(sshSession, "terminal too small for tensio")
		ctrl.Close()
		return nil, nil
	}
	s.track(sshSession, ctrl)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"active", s.active.Add(1),
		)
		next(sshSession)
		s.release(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
			"active", s.active.Add(-1),
		)
	}
}

// track records the controller playing in a session.
func (s *SSHServer) track(sess ssh.Session, ctrl *tensio.Controller) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[sess] = ctrl
}

// release closes the session's controller once its program has exited,
// including when the client disconnected without quitting.
func (s *SSHServer) release(sess ssh.Session) {
	s.mu.Lock()
	ctrl, ok := s.games[sess]
	delete(s.games, sess)
	s.mu.Unlock()

	if ok {
		ctrl.Close()
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Server.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-done:
	case err := <-errc:
		s.logger.Error("server error", "error", err)
		return err
	}
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Server.Address
}
