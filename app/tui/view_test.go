package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shanavlnc/folio/app/enum"
	"github.com/shanavlnc/folio/app/portfolio"
)

func plainPainter() *Painter {
	return NewPainter(lipgloss.NewRenderer(io.Discard))
}

func TestPainter_RenderOrder(t *testing.T) {
	tree := portfolio.BuildTree(enum.ThemeLight, 1, portfolio.DefaultContent())
	out := plainPainter().Render(tree, 80)

	ordered := []string{
		"SV",
		"Shana Faith Valencia",
		"Skills", "Adobe Photoshop", "Adobe After Effects", "React", "Node.js", "UI/UX",
		"Projects", "Campus Chronicles", "Inventory Management System", "Todo App", "Flappy Bird Game", "Healthy Buddy App",
		"Contact", "shanafaithv@gmail.com", "github.com/shanavlnc", "linkedin.com/in/shanafaithdvalencia",
		"Dark Mode",
	}
	pos := 0
	for _, s := range ordered {
		idx := strings.Index(out[pos:], s)
		require.GreaterOrEqual(t, idx, 0, "%q not found after position %d", s, pos)
		pos += idx + len(s)
	}
}

func TestPainter_Switch(t *testing.T) {
	p := plainPainter()
	light := p.Render(portfolio.BuildTree(enum.ThemeLight, 1, portfolio.DefaultContent()), 80)
	dark := p.Render(portfolio.BuildTree(enum.ThemeDark, 1, portfolio.DefaultContent()), 80)

	assert.Contains(t, light, switchGlyph(false))
	assert.NotContains(t, light, switchGlyph(true))
	assert.Contains(t, dark, switchGlyph(true))
}

func TestPainter_Glyphs(t *testing.T) {
	out := plainPainter().Render(portfolio.BuildTree(enum.ThemeDark, 1, portfolio.DefaultContent()), 80)
	for _, g := range []string{"✎", "▶", "⚛", "⬢", "◐", "✉", "◆", "▣"} {
		assert.Contains(t, out, g)
	}
	assert.Equal(t, "•", glyph("unknown"))
}

func TestPainter_DefaultWidth(t *testing.T) {
	tree := portfolio.BuildTree(enum.ThemeLight, 1, portfolio.DefaultContent())
	out := plainPainter().Render(tree, 0)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), DefaultWidth)
	}
}

func TestBlend(t *testing.T) {
	tests := []struct {
		name  string
		bg, c string
		alpha float64
		want  string
	}{
		{"transparent gives background", "#222222", "#ffffff", 0, "#222222"},
		{"opaque gives color", "#222222", "#ffffff", 1, "#ffffff"},
		{"half way", "#000000", "#ffffff", 0.5, "#808080"},
		{"bad background", "nope", "#ffffff", 0.5, "#ffffff"},
		{"bad color", "#000000", "nope", 0.5, "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, blend(tt.bg, tt.c, tt.alpha))
		})
	}
}

func TestInitials(t *testing.T) {
	tree := portfolio.BuildTree(enum.ThemeLight, 1, portfolio.DefaultContent())
	assert.Equal(t, "SV", initials(tree))
	assert.Empty(t, initials(portfolio.Tree{}))
}
