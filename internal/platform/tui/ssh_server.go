package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/metrics"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.snake/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// RateLimit bounds new sessions per remote IP.
	RateLimit RateLimitConfig

	// NewGame builds the game for one session.
	NewGame func() Game

	// Logger is the server logger. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		RateLimit:   DefaultRateLimitConfig,
	}
}

type sessionIDKey struct{}

// SSHServer wraps a Wish SSH server where every session plays its own game.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	limiter *IPRateLimiter
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if cfg.NewGame == nil {
		return nil, errors.New("ssh server: no game factory")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake-ssh",
		})
	}

	srv := &SSHServer{
		config:  cfg,
		limiter: NewIPRateLimiter(cfg.RateLimit),
		logger:  logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".snake", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Middlewares run last to first: rate limit, logging, metrics, game.
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.metricsMiddleware,
			srv.loggingMiddleware,
			srv.rateLimitMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		srv.limiter.Stop()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

func sessionID(s ssh.Session) string {
	id, _ := s.Context().Value(sessionIDKey{}).(string)
	return id
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		metrics.RecordConnectionRejected("no_pty")
		s.logger.Warn("no PTY requested", "user", sshSession.User(), "session", sessionID(sshSession))
		wish.Fatalln(sshSession, "snake needs an interactive terminal, try: ssh -t")
		return nil, nil
	}

	logger := s.logger.With("user", sshSession.User(), "session", sessionID(sshSession))
	model, err := NewModel(s.config.NewGame(), ModelConfig{
		Runtime: core.RuntimeConfig{
			ScreenW: pty.Window.Width,
			ScreenH: pty.Window.Height,
			Seed:    time.Now().UnixNano(),
		},
		Logger:   logger,
		Renderer: bubbletea.MakeRenderer(sshSession),
		OnTick:   metrics.RecordTick,
		OnEnd:    metrics.RecordGameFinished,
	})
	if err != nil {
		logger.Error("cannot start game", "err", err)
		wish.Fatalln(sshSession, "cannot start game")
		return nil, nil
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// metricsMiddleware tracks active sessions.
func (s *SSHServer) metricsMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		metrics.SessionStarted()
		defer metrics.SessionEnded()
		next(sshSession)
	}
}

// loggingMiddleware tags the session with an ID and logs its lifetime.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		id := uuid.NewString()
		sshSession.Context().SetValue(sessionIDKey{}, id)

		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"session", id,
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"session", id,
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// rateLimitMiddleware refuses sessions from IPs that reconnect too often.
func (s *SSHServer) rateLimitMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		ip := hostOf(sshSession.RemoteAddr())
		if !s.limiter.Allow(ip) {
			metrics.RecordConnectionRejected("rate_limit")
			s.logger.Warn("rate limited", "remote", ip)
			wish.Fatalln(sshSession, "too many connections, try again later")
			return
		}
		next(sshSession)
	}
}

// ListenAndServe starts the SSH server and blocks until ctx is canceled.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.limiter.Stop()
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.limiter.Stop()
	return s.server.Shutdown(ctx)
}
