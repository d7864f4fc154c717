// Package api provides JSON handlers for the portfolio content and mounted screens.
package api

import (
	"errors"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/shanavlnc/folio/app/enum"
	"github.com/shanavlnc/folio/app/portfolio"
	"github.com/shanavlnc/folio/app/server/internal"
	"github.com/shanavlnc/folio/app/store"
)

// ScreenStore defines the interface for looking up mounted screens.
type ScreenStore interface {
	Get(id string) (*portfolio.Screen, error)
}

// Handler handles API requests for /api/v1/* endpoints.
type Handler struct {
	screens ScreenStore
	content portfolio.Content
	now     func() time.Time
}

// New creates a new API handler.
func New(screens ScreenStore, content portfolio.Content) *Handler {
	return &Handler{screens: screens, content: content, now: time.Now}
}

// Register registers API routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /portfolio", h.handlePortfolio)
	r.HandleFunc("GET /screens/{id}", h.handleScreen)
}

// portfolioResponse is the content of the screen with the styles for one theme.
type portfolioResponse struct {
	Theme   enum.Theme         `json:"theme"`
	Style   portfolio.StyleSet `json:"style"`
	Content portfolio.Content  `json:"content"`
}

// screenResponse is the state of a mounted screen.
type screenResponse struct {
	ID          string     `json:"id"`
	Theme       enum.Theme `json:"theme"`
	Phase       enum.Phase `json:"phase"`
	Opacity     float64    `json:"opacity"`
	ElapsedMS   int64      `json:"elapsed_ms"`
	RemainingMS int64      `json:"remaining_ms"`
	MountedAt   time.Time  `json:"mounted_at"`
}

// handlePortfolio returns the fixed content and the style set for a theme.
// GET /api/v1/portfolio?theme=dark, theme defaults to light
func (h *Handler) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	theme := enum.ThemeLight
	if v := r.URL.Query().Get("theme"); v != "" {
		parsed, err := enum.ParseTheme(v)
		if err != nil {
			rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "invalid theme")
			return
		}
		theme = parsed
	}

	rest.RenderJSON(w, portfolioResponse{Theme: theme, Style: portfolio.StyleFor(theme), Content: h.content})
}

// handleScreen returns the state of a mounted screen.
// GET /api/v1/screens/{id}
func (h *Handler) handleScreen(w http.ResponseWriter, r *http.Request) {
	id, ok := internal.ScreenID(r)
	if !ok {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, nil, "invalid screen id")
		return
	}

	scr, err := h.screens.Get(id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			code = http.StatusNotFound
		}
		rest.SendErrorJSON(w, r, log.Default(), code, err, "screen not found")
		return
	}

	st := scr.Snapshot(h.now())
	rest.RenderJSON(w, screenResponse{
		ID:          st.ID,
		Theme:       st.Theme,
		Phase:       st.Phase,
		Opacity:     st.Opacity,
		ElapsedMS:   st.Elapsed.Milliseconds(),
		RemainingMS: st.Remaining.Milliseconds(),
		MountedAt:   st.MountedAt,
	})
}
