package portfolio

import (
	"sync"
	"time"

	"github.com/shanavlnc/folio/app/enum"
)

// State is a point-in-time view of a screen.
type State struct {
	ID        string
	Theme     enum.Theme
	Phase     enum.Phase
	Opacity   float64
	Elapsed   time.Duration // time spent fading so far, capped at the fade duration
	Remaining time.Duration // time left until settled
	MountedAt time.Time
}

// Screen is one mounted instance of the portfolio screen. It exclusively owns
// its theme flag and fade-in animator. Toggling the theme never touches the
// animator. Screen is safe for concurrent use.
type Screen struct {
	mu        sync.Mutex
	id        string
	content   Content
	theme     enum.Theme
	fade      *FadeIn
	mountedAt time.Time
}

// NewScreen makes an unmounted screen in the light theme. A nil fade gets
// the default duration and easing.
func NewScreen(id string, content Content, fade *FadeIn) *Screen {
	if fade == nil {
		fade = NewFadeIn(DefaultFadeDuration, nil)
	}
	return &Screen{id: id, content: content, theme: enum.ThemeLight, fade: fade}
}

// ID returns the screen identifier.
func (s *Screen) ID() string { return s.id }

// Mount starts the fade-in at now. Mounting twice does not restart it.
func (s *Screen) Mount(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.fade.Start(now) {
		return false
	}
	s.mountedAt = now
	return true
}

// MountedAt returns the mount time, zero if the screen is not mounted.
func (s *Screen) MountedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mountedAt
}

// Settle finishes the fade-in immediately.
func (s *Screen) Settle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fade.Settle()
}

// Theme returns the current theme.
func (s *Screen) Theme() enum.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// ToggleTheme flips the theme and returns the new value.
func (s *Screen) ToggleTheme() enum.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = ToggleTheme(s.theme)
	return s.theme
}

// Snapshot advances the animator to now and reports the screen state.
func (s *Screen) Snapshot(now time.Time) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(now)
}

// Tree advances the animator to now and builds the render tree.
func (s *Screen) Tree(now time.Time) Tree {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.snapshot(now)
	return BuildTree(st.Theme, st.Opacity, s.content)
}

func (s *Screen) snapshot(now time.Time) State {
	phase := s.fade.Advance(now)
	elapsed := s.fade.Elapsed(now)
	return State{
		ID:        s.id,
		Theme:     s.theme,
		Phase:     phase,
		Opacity:   s.fade.Opacity(now),
		Elapsed:   elapsed,
		Remaining: s.fade.Duration() - elapsed,
		MountedAt: s.mountedAt,
	}
}
