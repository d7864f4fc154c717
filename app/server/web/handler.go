// Package web provides HTTP handlers for the portfolio screen.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"time"

	"github.com/go-pkgz/routegroup"

	"github.com/shanavlnc/folio/app/portfolio"
)

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// ScreenStore defines the interface for mounting and looking up screens.
type ScreenStore interface {
	Mount() (*portfolio.Screen, error)
	Get(id string) (*portfolio.Screen, error)
}

// Config holds web handler configuration.
type Config struct {
	BaseURL string
}

// Handler handles web UI requests.
type Handler struct {
	screens ScreenStore
	tmpl    *template.Template
	baseURL string
	now     func() time.Time
}

// New creates a new web handler.
func New(screens ScreenStore, cfg Config) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Handler{
		screens: screens,
		tmpl:    tmpl,
		baseURL: cfg.BaseURL,
		now:     time.Now,
	}, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("GET /screens/{id}", h.handleScreen)
	r.HandleFunc("POST /web/screens/{id}/theme", h.handleThemeToggle)
}

// icons maps content icon keys to Font Awesome classes.
var icons = map[string]string{
	"paint-brush": "fa-solid fa-paintbrush",
	"video":       "fa-solid fa-video",
	"react":       "fa-brands fa-react",
	"node-js":     "fa-brands fa-node-js",
	"palette":     "fa-solid fa-palette",
	"email":       "fa-solid fa-envelope",
	"github":      "fa-brands fa-github",
	"linkedin":    "fa-brands fa-linkedin",
}

// iconClass returns the Font Awesome class for an icon key, or a neutral dot.
func iconClass(key string) string {
	if c, ok := icons[key]; ok {
		return c
	}
	return "fa-solid fa-circle"
}

// templateFuncs returns custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"icon": iconClass,
		"ms": func(d time.Duration) string {
			return fmt.Sprintf("%dms", d.Milliseconds())
		},
		"fadeKeyframes": func() template.CSS { return fadeKeyframes(portfolio.EaseInOut, keyframeSteps) },
	}
}

// keyframeSteps is the number of linear segments approximating the easing curve in css.
const keyframeSteps = 20

// fadeKeyframes renders the fade-in keyframes sampled from the easing curve,
// the browser interpolates linearly between stops and so paints the same
// opacity the animator reports.
func fadeKeyframes(easing portfolio.Easing, steps int) template.CSS {
	var b strings.Builder
	b.WriteString("@keyframes fade-in {")
	for i := 0; i <= steps; i++ {
		fmt.Fprintf(&b, " %d%% { opacity: %.3f; }", i*100/steps, easing(float64(i)/float64(steps)))
	}
	b.WriteString(" }")
	return template.CSS(b.String()) //nolint:gosec // built from numbers only
}

// parseTemplates parses all templates from embedded filesystem.
func parseTemplates() (*template.Template, error) {
	tmpl := template.New("").Funcs(templateFuncs())

	baseContent, err := templatesFS.ReadFile("templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("read base.html: %w", err)
	}
	tmpl, err = tmpl.Parse(string(baseContent))
	if err != nil {
		return nil, fmt.Errorf("parse base.html: %w", err)
	}

	partials := []string{"screen", "node"}
	for _, name := range partials {
		content, readErr := templatesFS.ReadFile("templates/partials/" + name + ".html")
		if readErr != nil {
			return nil, fmt.Errorf("read partial %s: %w", name, readErr)
		}
		_, parseErr := tmpl.New(name).Parse(string(content))
		if parseErr != nil {
			return nil, fmt.Errorf("parse partial %s: %w", name, parseErr)
		}
	}

	return tmpl, nil
}

// templateData holds data passed to templates.
type templateData struct {
	ScreenID string
	Tree     portfolio.Tree
	BaseURL  string

	// fade-in, rendered as a CSS animation continuing from Elapsed
	Animate  bool
	Duration time.Duration
	Elapsed  time.Duration
}

// screenData builds template data for the screen at the current time.
func (h *Handler) screenData(scr *portfolio.Screen) templateData {
	now := h.now()
	st := scr.Snapshot(now)
	return templateData{
		ScreenID: scr.ID(),
		Tree:     scr.Tree(now),
		BaseURL:  h.baseURL,
		Animate:  !st.Phase.Terminal(),
		Duration: st.Elapsed + st.Remaining,
		Elapsed:  st.Elapsed,
	}
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.baseURL + path
}
