package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/shanavlnc/folio/app/enum"
	"github.com/shanavlnc/folio/app/portfolio"
	"github.com/shanavlnc/folio/app/server"
	"github.com/shanavlnc/folio/app/sshd"
	"github.com/shanavlnc/folio/app/store"
	"github.com/shanavlnc/folio/app/tui"
)

// ServerCmd implements the server subcommand
type ServerCmd struct {
	Address      string        `long:"address" env:"FOLIO_ADDRESS" default:":8080" description:"server listen address"`
	ReadTimeout  time.Duration `long:"read-timeout" env:"FOLIO_READ_TIMEOUT" default:"5s" description:"read timeout"`
	BaseURL      string        `long:"base-url" env:"FOLIO_BASE_URL" description:"base URL path for reverse proxy (e.g., /folio)"`
	ProfileImage string        `long:"profile-image" env:"FOLIO_PROFILE_IMAGE" default:"assets/formal.jpg" description:"profile photo file"`
	Fade         time.Duration `long:"fade" env:"FOLIO_FADE" default:"800ms" description:"fade-in duration"`

	Screens struct {
		TTL time.Duration `long:"ttl" env:"TTL" default:"30m" description:"how long a mounted screen is kept"`
		Max int           `long:"max" env:"MAX" default:"10000" description:"max mounted screens, oldest dropped first"`
	} `group:"screens" namespace:"screen" env-namespace:"FOLIO_SCREEN"`

	Debug bool `long:"dbg" env:"FOLIO_DEBUG" description:"debug mode"`

	ctx    context.Context
	cancel context.CancelFunc
}

// Execute runs the server command
func (s *ServerCmd) Execute(_ []string) error {
	setupLogs(s.Debug, os.Stdout)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
		signals(s.cancel)
	}

	return s.run(s.ctx)
}

func (s *ServerCmd) run(ctx context.Context) error {
	baseURL, err := validateBaseURL(s.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	log.Printf("[INFO] starting folio server on %s", s.Address)
	if baseURL != "" {
		log.Printf("[INFO] base URL: %s", baseURL)
	}
	if _, statErr := os.Stat(s.ProfileImage); statErr != nil {
		log.Printf("[WARN] profile image is not available: %v", statErr)
	}

	content := portfolio.DefaultContent()
	screens, err := store.NewScreens(content, store.ScreensConfig{
		TTL:          s.Screens.TTL,
		MaxScreens:   s.Screens.Max,
		FadeDuration: s.Fade,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize screens: %w", err)
	}
	defer func() {
		st := screens.Stats()
		log.Printf("[DEBUG] screens on shutdown: hits %d, misses %d, keys %d", st.Hits, st.Misses, st.Keys)
		if err := screens.Close(); err != nil {
			log.Printf("[WARN] %v", err)
		}
	}()

	srv, err := server.New(screens, content, server.Config{
		Address:      s.Address,
		ReadTimeout:  s.ReadTimeout,
		Version:      revision,
		BaseURL:      baseURL,
		ProfileImage: s.ProfileImage,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// TUICmd implements the tui subcommand
type TUICmd struct {
	Fade    time.Duration `long:"fade" env:"FOLIO_FADE" default:"800ms" description:"fade-in duration"`
	LogFile string        `long:"log-file" env:"FOLIO_LOG_FILE" description:"write logs to this file, discarded if not set"`
	Debug   bool          `long:"dbg" env:"FOLIO_DEBUG" description:"debug mode"`

	ctx context.Context
	in  io.Reader
	out io.Writer
}

// Execute runs the tui command. The screen always starts in light theme.
func (c *TUICmd) Execute(_ []string) error {
	logOut := io.Discard
	if c.LogFile != "" {
		fh, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer fh.Close()
		logOut = fh
	}
	setupLogs(c.Debug, logOut)

	ctx := c.ctx
	if ctx == nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(context.Background())
		defer cancel()
		signals(cancel)
	}

	scr := portfolio.NewScreen(uuid.NewString(), portfolio.DefaultContent(), portfolio.NewFadeIn(c.Fade, nil))
	log.Printf("[INFO] mounted screen %s", scr.ID())

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if c.in != nil || c.out != nil {
		progOpts = append(progOpts, tea.WithInput(c.in), tea.WithOutput(c.out))
	} else {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(tui.New(scr, nil), progOpts...).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui failed: %w", err)
	}
	log.Printf("[INFO] screen %s closed, theme %s", scr.ID(), scr.Theme())
	return nil
}

// SSHCmd implements the ssh subcommand
type SSHCmd struct {
	Address     string        `long:"address" env:"FOLIO_SSH_ADDRESS" default:":2222" description:"ssh listen address"`
	HostKey     string        `long:"host-key" env:"FOLIO_SSH_HOST_KEY" default:".ssh/folio_ed25519" description:"host key path, generated if missing"`
	IdleTimeout time.Duration `long:"idle-timeout" env:"FOLIO_SSH_IDLE_TIMEOUT" default:"10m" description:"idle session timeout"`
	Fade        time.Duration `long:"fade" env:"FOLIO_FADE" default:"800ms" description:"fade-in duration"`
	Debug       bool          `long:"dbg" env:"FOLIO_DEBUG" description:"debug mode"`

	ctx    context.Context
	cancel context.CancelFunc
}

// Execute runs the ssh command
func (c *SSHCmd) Execute(_ []string) error {
	setupLogs(c.Debug, os.Stdout)

	if c.ctx == nil {
		c.ctx, c.cancel = context.WithCancel(context.Background())
		signals(c.cancel)
	}

	if dir := filepath.Dir(c.HostKey); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create host key directory: %w", err)
		}
	}

	srv, err := sshd.New(portfolio.DefaultContent(), sshd.Config{
		Address:      c.Address,
		HostKeyPath:  c.HostKey,
		IdleTimeout:  c.IdleTimeout,
		FadeDuration: c.Fade,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize ssh server: %w", err)
	}
	if err := srv.Run(c.ctx); err != nil {
		return fmt.Errorf("ssh server failed: %w", err)
	}
	return nil
}

// RenderCmd implements the render subcommand
type RenderCmd struct {
	Theme string `long:"theme" env:"FOLIO_THEME" choice:"light" choice:"dark" default:"light" description:"theme to render"`
	Width int    `long:"width" env:"FOLIO_WIDTH" default:"60" description:"output width in columns"`
}

// Execute prints the screen once, fully faded in.
func (r *RenderCmd) Execute(_ []string) error {
	theme, err := enum.ParseTheme(r.Theme)
	if err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}

	scr := portfolio.NewScreen("render", portfolio.DefaultContent(), nil)
	now := time.Now()
	scr.Mount(now)
	scr.Settle() // no animation clock here, content must be fully visible
	if theme != scr.Theme() {
		scr.ToggleTheme()
	}

	fmt.Println(tui.NewPainter(nil).Render(scr.Tree(now), r.Width))
	return nil
}
