package portfolio

import "github.com/shanavlnc/folio/app/enum"

// colors shared by both themes
const (
	colorWhite     = "#FFFFFF"
	colorBlack     = "#000000"
	colorGold      = "#FFD700"
	colorBlue      = "#2D9CDB"
	colorLightPage = "#F5F5F5"
	colorDarkPage  = "#222222"
	colorDarkCard  = "#333333"
)

// StyleSet is the complete set of theme-dependent colors used by the render tree.
type StyleSet struct {
	Page       string `json:"page"`        // screen and container background
	Text       string `json:"text"`        // every text element
	Card       string `json:"card"`        // card background
	CardShadow string `json:"card_shadow"` // card shadow/outline
	Accent     string `json:"accent"`      // icons and profile image border
}

// StyleFor maps a theme to its style set. The mapping is total: every theme
// yields a fully populated set.
func StyleFor(t enum.Theme) StyleSet {
	if t.IsDark() {
		return StyleSet{
			Page:       colorDarkPage,
			Text:       colorWhite,
			Card:       colorDarkCard,
			CardShadow: colorWhite,
			Accent:     colorGold,
		}
	}
	return StyleSet{
		Page:       colorLightPage,
		Text:       colorBlack,
		Card:       colorWhite,
		CardShadow: colorBlack,
		Accent:     colorBlue,
	}
}

// ToggleTheme is the theme state transition. It never fails.
func ToggleTheme(t enum.Theme) enum.Theme {
	return t.Toggle()
}
