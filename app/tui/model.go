// Package tui renders the portfolio screen in a terminal with bubbletea.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shanavlnc/folio/app/portfolio"
)

// frameInterval is the animation clock period, about 60 frames per second.
const frameInterval = time.Second / 60

// frameMsg is sent on every animation frame while the fade-in runs.
type frameMsg time.Time

// Model is the bubbletea model for one mounted screen.
type Model struct {
	screen  *portfolio.Screen
	painter *Painter
	now     func() time.Time

	width  int
	height int
	offset int // first visible line when the screen is taller than the terminal
}

// New makes a model for a screen that is not mounted yet. The screen mounts,
// and its fade-in starts, when the program calls Init.
func New(screen *portfolio.Screen, r *lipgloss.Renderer) Model {
	return Model{screen: screen, painter: NewPainter(r), now: time.Now}
}

// WithSize sets the initial terminal size, for hosts that know it before the first resize message.
func (m Model) WithSize(width, height int) Model {
	m.width, m.height = width, height
	return m
}

// Screen returns the screen shown by the model.
func (m Model) Screen() *portfolio.Screen { return m.screen }

// Size returns the terminal size known to the model.
func (m Model) Size() (width, height int) { return m.width, m.height }

// Init mounts the screen and starts the animation clock.
func (m Model) Init() tea.Cmd {
	m.screen.Mount(m.now())
	return frame()
}

// Update handles frames, keys and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if m.screen.Snapshot(time.Time(msg)).Phase.Terminal() {
			return m, nil // settled, stop ticking
		}
		return m, frame()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.offset = m.clampOffset(m.offset)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "d", "t", " ", "enter":
			m.screen.ToggleTheme()
		case "up", "k":
			m.offset = m.clampOffset(m.offset - 1)
		case "down", "j":
			m.offset = m.clampOffset(m.offset + 1)
		case "home", "g":
			m.offset = 0
		}
	}
	return m, nil
}

// View renders the visible part of the screen.
func (m Model) View() string {
	lines := m.lines()
	if m.height <= 0 || len(lines) <= m.height {
		return strings.Join(lines, "\n")
	}
	start := m.clampOffset(m.offset)
	return strings.Join(lines[start:start+m.height], "\n")
}

func (m Model) lines() []string {
	out := m.painter.Render(m.screen.Tree(m.now()), m.width)
	return append(strings.Split(out, "\n"), m.footer())
}

func (m Model) footer() string {
	return m.painter.r.NewStyle().Faint(true).Render("d toggle theme • ↑/↓ scroll • q quit")
}

func (m Model) clampOffset(off int) int {
	if m.height <= 0 {
		return 0
	}
	limit := max(len(m.lines())-m.height, 0)
	return max(0, min(off, limit))
}

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
