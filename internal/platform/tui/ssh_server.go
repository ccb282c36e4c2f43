package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-goblins/internal/core"
	"github.com/vovakirdan/tui-goblins/internal/registry"
	"github.com/vovakirdan/tui-goblins/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key is generated at ~/.goblins/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	IdleTimeout time.Duration
	TickRate    int
	HoldTicks   int

	// Logger receives server and run events. Defaults to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.goblins/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    30,
		HoldTicks:   defaultHoldTicks,
	}
}

// SSHServer serves the game to SSH clients through Wish.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "goblins-ssh",
		})
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".goblins", "host_key")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}
	opts := []Option{
		WithPlayer(sshSession.User()),
		WithHoldTicks(s.config.HoldTicks),
		WithLogger(s.logger.With("user", sshSession.User())),
	}
	return NewSessionModel(s.store, cfg, opts...), []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel drives a whole SSH session: menu, game, menu again. Leaving
// a game returns to the menu; quitting the menu ends the session.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	opts     []Option
	menu     MenuModel
	board    *ScoreboardModel
	play     *Model
	quitting bool
}

// NewSessionModel creates a session starting at the level menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, opts ...Option) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		opts:   opts,
		menu:   NewMenuModel(store, cfg),
	}
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes msg to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch {
	case m.play != nil:
		return m.updatePlay(msg)
	case m.board != nil:
		return m.updateBoard(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		board := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.board = &board
		return m, board.Init()

	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().LevelID)
		if err != nil {
			m.menu = NewMenuModel(m.store, m.config)
			return m, nil
		}
		play := NewModel(game, m.store, m.config, m.opts...)
		m.play = &play
		return m, play.Init()
	}
	return m, cmd
}

func (m SessionModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	if board, ok := next.(ScoreboardModel); ok {
		m.board = &board
	}

	switch {
	case m.board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.board.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.play.Update(msg)
	if play, ok := next.(Model); ok {
		m.play = &play
	}
	if m.play.Done() {
		// The play model asks to quit its program; here that means the menu.
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.play = nil
	m.board = nil
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.play != nil:
		return m.play.View()
	case m.board != nil:
		return m.board.View()
	}
	return m.menu.View()
}
