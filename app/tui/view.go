package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/shanavlnc/folio/app/portfolio"
)

// DefaultWidth is the screen width used when the terminal size is unknown.
const DefaultWidth = 60

const maxContentWidth = 56

// glyphs maps content icon keys to single-cell terminal symbols.
var glyphs = map[string]string{
	"paint-brush": "✎",
	"video":       "▶",
	"react":       "⚛",
	"node-js":     "⬢",
	"palette":     "◐",
	"email":       "✉",
	"github":      "◆",
	"linkedin":    "▣",
}

// glyph returns the terminal symbol for an icon key.
func glyph(key string) string {
	if g, ok := glyphs[key]; ok {
		return g
	}
	return "•"
}

// Painter renders a portfolio render tree as styled terminal text.
type Painter struct {
	r *lipgloss.Renderer
}

// NewPainter makes a painter for the given lipgloss renderer, nil means the default one.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{r: r}
}

// Render draws the tree at the given terminal width. Every color is blended
// toward the page background by the tree opacity, so an opacity of 0 paints
// nothing visible and 1 paints the plain theme colors.
func (p *Painter) Render(tree portfolio.Tree, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	inner := min(width, maxContentWidth+4) - 4
	page := tree.Style.Page
	fade := func(c string) lipgloss.Color {
		return lipgloss.Color(blend(page, c, tree.Opacity))
	}

	var blocks []string
	for _, n := range tree.Root.Children {
		switch {
		case n.Kind == portfolio.KindImage:
			blocks = append(blocks, p.r.NewStyle().
				Border(lipgloss.RoundedBorder()).BorderForeground(fade(n.Border)).
				Padding(1, 3).Foreground(fade(n.Border)).Bold(true).
				Render(initials(tree)))
		case n.Kind == portfolio.KindText:
			st := p.r.NewStyle().Foreground(fade(n.Color)).Width(inner).Align(lipgloss.Center)
			if n.Role == portfolio.RoleName {
				st = st.Bold(true)
			}
			blocks = append(blocks, st.Render(n.Text))
		case n.Kind == portfolio.KindCard:
			blocks = append(blocks, p.card(n, inner, fade))
		case n.Role == portfolio.RoleToggle:
			blocks = append(blocks, p.toggle(n, fade))
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Center, blocks...)
	return p.r.NewStyle().Background(lipgloss.Color(page)).Width(width).
		Align(lipgloss.Center).Padding(1, 0).Render(body)
}

func (p *Painter) card(n portfolio.Node, width int, fade func(string) lipgloss.Color) string {
	lines := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		switch c.Kind {
		case portfolio.KindText:
			st := p.r.NewStyle().Foreground(fade(c.Color)).Background(fade(n.Background))
			if c.Role == portfolio.RoleSectionTitle {
				st = st.Bold(true).MarginBottom(1)
			}
			lines = append(lines, st.Render(c.Text))
		case portfolio.KindRow:
			icon := p.r.NewStyle().Foreground(fade(c.Color)).Background(fade(n.Background)).Render(glyph(c.Icon))
			var label string
			for _, t := range c.Children {
				label = p.r.NewStyle().Foreground(fade(t.Color)).Background(fade(n.Background)).
					PaddingLeft(2).Render(t.Text)
			}
			lines = append(lines, icon+label)
		}
	}
	return p.r.NewStyle().
		Border(lipgloss.RoundedBorder()).BorderForeground(fade(n.Border)).
		Background(fade(n.Background)).Width(width).Padding(0, 1).MarginTop(1).
		Render(strings.Join(lines, "\n"))
}

func (p *Painter) toggle(n portfolio.Node, fade func(string) lipgloss.Color) string {
	var parts []string
	for _, c := range n.Children {
		switch c.Kind {
		case portfolio.KindText:
			parts = append(parts, p.r.NewStyle().Foreground(fade(c.Color)).Render(c.Text))
		case portfolio.KindSwitch:
			parts = append(parts, p.r.NewStyle().Foreground(fade(c.Color)).Render(switchGlyph(c.Checked)))
		}
	}
	return p.r.NewStyle().MarginTop(1).Render(strings.Join(parts, "  "))
}

// switchGlyph draws the switch track with the knob on the right when on.
func switchGlyph(on bool) string {
	if on {
		return "[━━●]"
	}
	return "[●━━]"
}

// initials returns the initials of the first and last word of the name.
func initials(tree portfolio.Tree) string {
	for _, n := range tree.Root.Children {
		if n.Role != portfolio.RoleName {
			continue
		}
		words := strings.Fields(n.Text)
		if len(words) == 0 {
			return ""
		}
		first, last := []rune(words[0]), []rune(words[len(words)-1])
		return strings.ToUpper(string(first[0]) + string(last[0]))
	}
	return ""
}

// blend mixes color c over background bg, alpha 0 gives bg and 1 gives c.
// Unparsable colors are returned unchanged.
func blend(bg, c string, alpha float64) string {
	from, err := colorful.Hex(bg)
	if err != nil {
		return c
	}
	to, err := colorful.Hex(c)
	if err != nil {
		return c
	}
	return from.BlendRgb(to, alpha).Clamped().Hex()
}
