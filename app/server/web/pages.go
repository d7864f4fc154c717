package web

import (
	"errors"
	"net/http"

	log "github.com/go-pkgz/lgr"

	"github.com/shanavlnc/folio/app/server/internal"
	"github.com/shanavlnc/folio/app/store"
)

// handleIndex mounts a fresh screen and renders the full page.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	scr, err := h.screens.Mount()
	if err != nil {
		log.Printf("[ERROR] failed to mount screen: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	log.Printf("[DEBUG] mounted screen %s for %s", scr.ID(), r.RemoteAddr)
	h.render(w, "base.html", h.screenData(scr))
}

// handleScreen re-renders an already mounted screen without restarting its fade-in.
// Unknown screens redirect to the index, which mounts a new one.
func (h *Handler) handleScreen(w http.ResponseWriter, r *http.Request) {
	id, ok := internal.ScreenID(r)
	if !ok {
		http.Redirect(w, r, h.url("/"), http.StatusSeeOther)
		return
	}
	scr, err := h.screens.Get(id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("[WARN] failed to get screen %s: %v", id, err)
		}
		http.Redirect(w, r, h.url("/"), http.StatusSeeOther)
		return
	}
	h.render(w, "base.html", h.screenData(scr))
}

// handleThemeToggle flips the theme of a mounted screen.
// htmx requests get the re-rendered screen fragment, plain form posts are redirected back to the screen.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	id, ok := internal.ScreenID(r)
	if !ok {
		http.Error(w, "invalid screen id", http.StatusBadRequest)
		return
	}

	scr, err := h.screens.Get(id)
	if err != nil {
		log.Printf("[DEBUG] toggle for unknown screen %s: %v", id, err)
		if internal.IsHTMX(r) {
			// screen expired, start over with a fresh mount
			w.Header().Set("HX-Redirect", h.url("/"))
			w.WriteHeader(http.StatusOK)
			return
		}
		http.Error(w, "screen not found", http.StatusNotFound)
		return
	}

	theme := scr.ToggleTheme()
	log.Printf("[DEBUG] screen %s theme is now %s", id, theme)

	if !internal.IsHTMX(r) {
		http.Redirect(w, r, h.url("/screens/"+id), http.StatusSeeOther)
		return
	}
	h.render(w, "screen", h.screenData(scr))
}

// render executes the named template, logging failures after headers are sent.
func (h *Handler) render(w http.ResponseWriter, name string, data templateData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[ERROR] failed to execute template %s: %v", name, err)
	}
}
