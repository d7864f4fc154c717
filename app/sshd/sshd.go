// Package sshd serves the terminal portfolio screen over SSH. Every session
// mounts its own screen, so each client starts in light theme with a fresh fade-in.
package sshd

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/shanavlnc/folio/app/portfolio"
	"github.com/shanavlnc/folio/app/tui"
)

// Config holds ssh server configuration.
type Config struct {
	Address         string
	HostKeyPath     string
	IdleTimeout     time.Duration
	FadeDuration    time.Duration // zero or negative shows the screen settled at once
	ShutdownTimeout time.Duration
}

// Server is an ssh server running one portfolio program per session.
type Server struct {
	cfg          Config
	content      portfolio.Content
	srv          *ssh.Server
	makeRenderer func(ssh.Session) *lipgloss.Renderer
}

// New makes a server. The host key is generated at HostKeyPath if missing.
func New(content portfolio.Content, cfg Config) (*Server, error) {
	s := &Server{cfg: cfg, content: content, makeRenderer: bm.MakeRenderer}
	srv, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bm.Middleware(s.teaHandler),
			activeterm.Middleware(),
			logging(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ssh server: %w", err)
	}
	s.srv = srv
	return s, nil
}

// Run starts the ssh server and blocks until context is canceled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down ssh server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] ssh shutdown error: %v", err)
		}
	}()

	log.Printf("[INFO] started ssh server on %s", s.cfg.Address)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("ssh server error: %w", err)
	}
	return nil
}

// teaHandler mounts a new screen for the session, sized to the client pty.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	scr := portfolio.NewScreen(uuid.NewString(), s.content, portfolio.NewFadeIn(s.cfg.FadeDuration, nil))
	m := tui.New(scr, s.makeRenderer(sess)).WithSize(pty.Window.Width, pty.Window.Height)
	log.Printf("[DEBUG] mounted screen %s for %s", scr.ID(), sess.User())
	return m, []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *Server) shutdownTimeout() time.Duration {
	if s.cfg.ShutdownTimeout > 0 {
		return s.cfg.ShutdownTimeout
	}
	return 5 * time.Second
}

// logging reports session start and end with the session duration.
func logging() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			st := time.Now()
			log.Printf("[INFO] ssh session started, user %s from %s", sess.User(), sess.RemoteAddr())
			next(sess)
			log.Printf("[INFO] ssh session ended, user %s from %s, %s", sess.User(), sess.RemoteAddr(), time.Since(st).Round(time.Millisecond))
		}
	}
}
